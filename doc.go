/*
Package dlx solves the exact cover problem using Knuth's Algorithm X over
a Dancing Links matrix.

Given a universe of elements and a family of labeled subsets of that
universe, Solve finds a subfamily whose members partition the universe —
every element covered by exactly one member — or reports that no such
subfamily exists. Solutions lazily enumerates every such subfamily.

The matrix itself is a toroidal, doubly linked structure: one header node
per element of the universe, one data node per (row, element) membership,
all stitched into self-closing rings so that removing a column ("covering"
it) and later restoring it ("uncovering") are O(1) pointer operations with
no allocation. See cover.go for the cover/uncover pairing this relies on.
*/
package dlx
