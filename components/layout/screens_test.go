package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandToAllScreensWidthTable(t *testing.T) {
	cases := []struct {
		xl             int
		lg, md, sm, xs int
	}{
		{0, 0, 0, 0, 0},
		{1, 1, 2, 6, 12},
		{2, 2, 4, 6, 12},
		{3, 3, 6, 12, 12},
		{7, 7, 6, 12, 12},
		{9, 9, 6, 12, 12},
		{10, 10, 12, 12, 12},
		{11, 11, 12, 12, 12},
		{12, 12, 12, 12, 12},
	}
	for _, tc := range cases {
		size := ExpandToAllScreens(LayoutSize{GridWidth: tc.xl, GridHeight: 4})
		assert.Equal(t, tc.xl, size.XL.GridWidth, "xl for %d", tc.xl)
		assert.Equal(t, tc.lg, size.LG.GridWidth, "lg for %d", tc.xl)
		assert.Equal(t, tc.md, size.MD.GridWidth, "md for %d", tc.xl)
		assert.Equal(t, tc.sm, size.SM.GridWidth, "sm for %d", tc.xl)
		assert.Equal(t, tc.xs, size.XS.GridWidth, "xs for %d", tc.xl)
	}
}

func TestExpandToAllScreensHeightPassThrough(t *testing.T) {
	byGrid := ExpandToAllScreens(LayoutSize{GridWidth: 6, GridHeight: 5, HeightAsRatio: 30})
	for _, screen := range AllScreens {
		size, ok := byGrid.For(screen)
		require.True(t, ok)
		assert.Equal(t, 5, size.GridHeight, screen)
		assert.Zero(t, size.HeightAsRatio, screen)
	}

	byRatio := ExpandToAllScreens(LayoutSize{GridWidth: 6, HeightAsRatio: 50})
	for _, screen := range AllScreens {
		size, ok := byRatio.For(screen)
		require.True(t, ok)
		assert.Zero(t, size.GridHeight, screen)
		assert.Equal(t, 50.0, size.HeightAsRatio, screen)
	}
}

func TestExpandToAllScreensZeroWidthKeepsHeight(t *testing.T) {
	size := ExpandToAllScreens(LayoutSize{GridWidth: 0, GridHeight: 7})
	for _, screen := range AllScreens {
		got, ok := size.For(screen)
		require.True(t, ok)
		assert.Equal(t, LayoutSize{GridHeight: 7}, got, screen)
	}
}

func TestExpandToAllScreensRejectsUnsupportedWidth(t *testing.T) {
	for _, width := range []int{-1, 13} {
		err := Recover(func() {
			ExpandToAllScreens(LayoutSize{GridWidth: width})
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvariant)

		var inv *InvariantError
		require.ErrorAs(t, err, &inv)
		assert.Equal(t, "expand", inv.Op)
	}
}

func TestRecoverRepanicsForeignValues(t *testing.T) {
	assert.Panics(t, func() {
		_ = Recover(func() { panic("boom") })
	})
	assert.NoError(t, Recover(func() {}))
}

func TestSizeForScreenPrecedence(t *testing.T) {
	explicit := SizeByScreen{
		XL: &LayoutSize{GridWidth: 7},
		MD: &LayoutSize{GridWidth: 9},
	}
	assert.Equal(t, 9, WidthForScreen(ScreenMD, &explicit))
	assert.Equal(t, 7, WidthForScreen(ScreenLG, &explicit))
	assert.Equal(t, 12, WidthForScreen(ScreenSM, &explicit))

	assert.Equal(t, GridColumnsCount, WidthForScreen(ScreenXS, nil))
	assert.Equal(t, GridColumnsCount, WidthForScreen(ScreenXL, &SizeByScreen{}))
}
