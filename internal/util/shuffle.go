package util

import "math/rand"

// ShuffleStrings returns a uniformly shuffled copy of the input. The input
// slice is left untouched. Non-cryptographic randomness is sufficient; the
// shuffle only exists so answer options have no fixed position.
func ShuffleStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
