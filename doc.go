// Package stencil is the code-generation backend of a schema-driven source
// generator. Given a resolved tree of composite type definitions it renders
// one output artifact per type through a template and pushes the rendered
// text through an ordered chain of post-processing steps before committing
// it to disk.
//
// The root package holds the error taxonomy shared by the subpackages:
//
//   - [lang]: language descriptors, identifier stropping, target selection
//   - [schema]: the read-only resolved type graph and its boundary loader
//   - [namespace]: the output namespace tree builder
//   - [postproc]: file- and line-level post-processors
//   - [gen]: the generation pipeline and template filter namespace
package stencil
