//go:build !flowersdebug

package plant

// strict makes invariant violations panic instead of being clamped.
const strict = false
