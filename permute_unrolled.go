//go:build !purego

package xoodoo

// unrolled is set if four-lane states are permuted with the unrolled 384-bit implementation.
const unrolled = true
