package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSignature(t *testing.T) {
	s, err := NewSignature("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, s.Names())
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Index("a"))
	assert.Equal(t, 2, s.Index("c"))
	assert.Equal(t, -1, s.Index("d"))
}

func TestNewSignatureRejectsDuplicates(t *testing.T) {
	_, err := NewSignature("a", "b", "a")
	require.ErrorIs(t, err, ErrSignature)
}

func TestNewSignatureRejectsEmptyName(t *testing.T) {
	_, err := NewSignature("a", "")
	require.ErrorIs(t, err, ErrSignature)
}

func TestUnionFirstOccurrenceOrder(t *testing.T) {
	u := Union([]string{"c"}, []string{"a"}, []string{"b", "a"})
	assert.Equal(t, []string{"c", "a", "b"}, u.Names())

	// later reuse of a name does not move it
	u = Union([]string{"a", "b"}, []string{"b", "c", "a"})
	assert.Equal(t, []string{"a", "b", "c"}, u.Names())
}

func TestSignatureNamesIsACopy(t *testing.T) {
	s, err := NewSignature("a", "b")
	require.NoError(t, err)
	names := s.Names()
	names[0] = "z"
	assert.Equal(t, []string{"a", "b"}, s.Names())
}
