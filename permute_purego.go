//go:build purego

package xoodoo

const unrolled = false
