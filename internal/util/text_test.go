package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateWords(t *testing.T) {
	assert.Equal(t, "one two three", TruncateWords("one two three", 5))
	assert.Equal(t, "one two", TruncateWords("one two three", 2))
	assert.Equal(t, "", TruncateWords("one two three", 0))
	assert.Equal(t, "", TruncateWords("", 10))

	long := strings.Repeat("word ", 600)
	truncated := TruncateWords(long, 500)
	assert.Len(t, strings.Fields(truncated), 500)
}

func TestShuffleStrings(t *testing.T) {
	in := []string{"a", "b", "c", "d"}
	out := ShuffleStrings(in)

	assert.Len(t, out, 4)
	assert.ElementsMatch(t, in, out)
	// The input must not be modified.
	assert.Equal(t, []string{"a", "b", "c", "d"}, in)
}

func TestShuffleStrings_Empty(t *testing.T) {
	assert.Empty(t, ShuffleStrings(nil))
}
