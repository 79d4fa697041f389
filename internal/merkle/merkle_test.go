package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/empower1labs/ledgersim/internal/digest"
	"github.com/empower1labs/ledgersim/internal/merkle"
)

func TestRootSingleLeaf(t *testing.T) {
	leaf := digest.SumString("only-event")
	assert.Equal(t, leaf, merkle.Root([]string{leaf}))
}

func TestRootTwoLeaves(t *testing.T) {
	a := digest.SumString("a")
	b := digest.SumString("b")
	want := digest.SumString(a + b)
	assert.Equal(t, want, merkle.Root([]string{a, b}))
}

func TestRootThreeLeavesMidpointSplit(t *testing.T) {
	a := digest.SumString("a")
	b := digest.SumString("b")
	c := digest.SumString("c")
	// build(0,2): mid=1 -> left=build(0,1)=hash(a+b), right=build(2,2)=c
	left := digest.SumString(a + b)
	want := digest.SumString(left + c)
	assert.Equal(t, want, merkle.Root([]string{a, b, c}))
}

func TestEmptyRootIsZeroHash(t *testing.T) {
	assert.Equal(t, merkle.EmptyRoot, merkle.Root(nil))
	for _, r := range merkle.EmptyRoot {
		assert.Equal(t, byte('0'), byte(r))
	}
}

func TestRootIsDeterministic(t *testing.T) {
	leaves := []string{
		digest.SumString("1"), digest.SumString("2"), digest.SumString("3"),
		digest.SumString("4"), digest.SumString("5"),
	}
	assert.Equal(t, merkle.Root(leaves), merkle.Root(leaves))
}
