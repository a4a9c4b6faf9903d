// Package lang describes the target languages a generation run can produce
// output for.
//
// A [Language] is an immutable descriptor: the language's reserved-word set,
// its stropping configuration, and its output file extension. Descriptors are
// registered once at process start from generated tables (see reserved.go)
// and looked up by name; the registry is never mutated afterwards.
//
// A [Context] selects at most one descriptor as the target of a run while
// still exposing every other registered descriptor for cross-language
// template facts. The [Stropper] turns arbitrary raw tokens into valid,
// non-reserved identifiers for one language.
package lang
