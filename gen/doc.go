// Package gen drives the generation pipeline: for every leaf of the
// namespace tree it renders the node's template, threads the result through
// the configured post-processor chain, and commits the file under the
// overwrite and permission policy.
//
// Generation is single-threaded and deterministic: nodes are processed in
// the sibling order established by the namespace tree, one node fully
// rendered, post-processed, and committed before the next begins. Template
// filters (identifier stropping, unique-name allocation, import-list
// computation) are pure functions of the node being rendered and live in
// the template's function namespace.
package gen
