package cyclic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type season struct {
	index int
	name  string
}

func (s season) Index() int          { return s.index }
func (s season) DisplayName() string { return s.name }

func seasons() Registry[season] {
	return New(
		season{0, "spring"},
		season{1, "summer"},
		season{2, "autumn"},
		season{3, "winter"},
	)
}

func TestMod(t *testing.T) {
	tests := []struct {
		n, m, want int
	}{
		{0, 12, 0},
		{11, 12, 11},
		{12, 12, 0},
		{25, 12, 1},
		{-1, 12, 11},
		{-12, 12, 0},
		{-13, 12, 11},
		{-121, 10, 9},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Mod(tt.n, tt.m), "Mod(%d, %d)", tt.n, tt.m)
	}
}

func TestRegistry_ByIndexWraps(t *testing.T) {
	r := seasons()
	require.Equal(t, 4, r.Len())

	for n := -50; n <= 50; n++ {
		assert.Equal(t, r.ByIndex(n), r.ByIndex(n+r.Len()), "n=%d", n)
		assert.Equal(t, Mod(n, 4), r.ByIndex(n).Index(), "n=%d", n)
	}
}

func TestRegistry_ByName(t *testing.T) {
	r := seasons()

	got, ok := r.ByName("autumn")
	require.True(t, ok)
	assert.Equal(t, 2, got.Index())

	for _, name := range []string{"", "Autumn", "autumn ", "monsoon"} {
		got, ok := r.ByName(name)
		assert.False(t, ok, "ByName(%q)", name)
		assert.Equal(t, season{}, got)
	}
}

func TestRegistry_ShiftIsGroupAction(t *testing.T) {
	r := seasons()

	for _, e := range r.All() {
		assert.Equal(t, e, r.Shift(e, 0))
		for i := -9; i <= 9; i++ {
			for j := -9; j <= 9; j++ {
				assert.Equal(t, r.Shift(e, i+j), r.Shift(r.Shift(e, i), j))
			}
		}
	}
}

func TestRegistry_AllIsACopy(t *testing.T) {
	r := seasons()

	items := r.All()
	items[0] = season{0, "mud"}

	assert.Equal(t, "spring", r.ByIndex(0).DisplayName())
}

func TestNew_CopiesInput(t *testing.T) {
	items := []season{{0, "a"}, {1, "b"}}
	r := New(items...)
	items[1] = season{1, "z"}

	assert.Equal(t, "b", r.ByIndex(1).DisplayName())
}

func TestNew_PanicsOnBadTable(t *testing.T) {
	assert.Panics(t, func() { New[season]() })
	assert.Panics(t, func() { New(season{1, "a"}) })
}
