package selection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddIsIdempotent(t *testing.T) {
	s := New()
	s.Add("25")
	s.Add("25")
	s.Add("1")
	require.Equal(t, []string{"25", "1"}, s.List())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := New()
	s.Add("25")
	s.Remove("99")
	require.Equal(t, []string{"25"}, s.List())
}

func TestToggleTwiceRestoresSet(t *testing.T) {
	s := New()
	s.Add("1")
	before := s.List()

	s.Toggle("25")
	require.Equal(t, []string{"1", "25"}, s.List())
	s.Toggle("25")
	require.Equal(t, before, s.List())
}

func TestClearEmptiesSelection(t *testing.T) {
	s := New()
	s.Add("1")
	s.Add("2")
	s.Clear()
	require.Empty(t, s.List())
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.Add("1")
	s.Add("2")

	got := s.List()
	got[0] = "mutated"
	require.Equal(t, []string{"1", "2"}, s.List())
}
