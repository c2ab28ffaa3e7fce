// Package ptmerkle reduces an ordered list of leaf digests
// to a single Merkle root.
//
// Digests are paired left to right at each level.
// A full pair is replaced by [ptsha256.Node] of the two digests,
// and with the default [OddNodeCarry] rule
// an unpaired trailing digest moves up to the next level unchanged.
// Reduction repeats level by level until one digest remains.
//
// For example, the digests h1, h2, h3 reduce as:
//
//	level 0: h1 h2 h3
//	level 1: N(h1,h2) h3
//	level 2: N(N(h1,h2),h3)
package ptmerkle
