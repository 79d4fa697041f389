package digest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/empower1labs/ledgersim/internal/digest"
)

func TestSumIsDeterministic(t *testing.T) {
	a := digest.SumString("Alice->Bob:10")
	b := digest.SumString("Alice->Bob:10")
	assert.Equal(t, a, b)
}

func TestSumHasFixedWidth(t *testing.T) {
	for _, in := range []string{"", "x", "a longer input string with several words in it"} {
		out := digest.SumString(in)
		assert.Len(t, out, digest.Size)
	}
}

func TestSumIsLowercaseHex(t *testing.T) {
	out := digest.SumString("some input")
	for _, r := range out {
		isDigit := r >= '0' && r <= '9'
		isLowerHex := r >= 'a' && r <= 'f'
		assert.True(t, isDigit || isLowerHex, "unexpected character %q in digest", r)
	}
}

func TestSumDiffers(t *testing.T) {
	assert.NotEqual(t, digest.SumString("Alice->Bob:10"), digest.SumString("Alice->Bob:11"))
}

func TestSumEmptyInput(t *testing.T) {
	out := digest.Sum(nil)
	assert.Len(t, out, digest.Size)
}
