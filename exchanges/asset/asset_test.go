package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "spot", Spot.String())
	assert.Equal(t, "swap", Swap.String())
}

func TestContains(t *testing.T) {
	t.Parallel()
	a := Items{Spot}
	assert.True(t, a.Contains(Spot))
	assert.False(t, a.Contains(Swap))
	assert.False(t, a.Contains("SpOt"), "Contains should not normalise input")
}

func TestJoinToString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "spot,swap", Supported().JoinToString(","))
}

func TestIsValid(t *testing.T) {
	t.Parallel()
	assert.False(t, Item("rawr").IsValid())
	assert.True(t, Spot.IsValid())
	assert.True(t, Swap.IsValid())
}

func TestNew(t *testing.T) {
	t.Parallel()
	for in, expected := range map[string]Item{
		"Spot":          Spot,
		"SWAP":          Swap,
		"perpetualswap": Swap,
	} {
		a, err := New(in)
		require.NoErrorf(t, err, "New must not error for %s", in)
		assert.Equal(t, expected, a)
	}
	_, err := New("futures")
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestSupportedIsCopy(t *testing.T) {
	t.Parallel()
	s := Supported()
	s[0] = "meow"
	assert.Equal(t, Spot, Supported()[0])
}
