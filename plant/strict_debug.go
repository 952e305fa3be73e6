//go:build flowersdebug

package plant

const strict = true
