// Package postproc defines the post-processing units a generation pipeline
// chains after rendering.
//
// A unit has exactly one of two capabilities: a [FilePostProcessor]
// transforms a whole file given its path and returns the path where the
// result now lives — the single source of truth for every subsequent stage —
// while a [LinePostProcessor] transforms one line at a time during a single
// sequential pass over the file. A chain element with neither capability is
// rejected by [Partition] before any rendering starts.
//
// Units may keep internal state across files; the pipeline does not reset
// them between nodes.
package postproc
