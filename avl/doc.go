// Package avl implements a height-balanced binary search tree whose node
// storage, addressing, and key comparison are all supplied by the caller
// through the Abstractor contract.
//
// The tree itself owns nothing but a root handle. It never allocates,
// copies, or frees a node; it only reads and writes the three fields an
// AVL tree actually needs (the two child links and the balance factor)
// through the Abstractor, and leaves everything else — keys, values,
// memory layout — to whatever is backing the handles.
//
// Three algorithms make up the package: Tree's Insert/Remove/Subst/Search
// family (single descent-and-retrace, no parent pointers), Iterator's
// in-order walk (a bounded path stack plus a branch-direction bitset
// instead of parent pointers), and Build's linear-time bulk construction
// from a presorted sequence.
package avl
