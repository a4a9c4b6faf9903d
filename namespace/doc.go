// Package namespace builds the hierarchical output model of a generation
// run.
//
// [Build] converts the front end's flat type list into a tree that mirrors
// the output directory layout: one intermediate node per namespace prefix
// and one leaf per concrete type, each leaf mapped to exactly one output
// file path. Sibling order is lexicographic so traversal — and therefore
// every side effect an order-dependent post-processor observes — is
// reproducible across runs. The tree is built once per run and never
// mutated afterwards.
package namespace
