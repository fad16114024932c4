package reveal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var phone = Viewport{Width: 400, Height: 800}

func TestRevealsOncePastThreshold(t *testing.T) {
	o := New()
	o.Observe("hero", "pricing", "faq")

	// The excluded bottom band is 80px tall: root ends at y=720.
	got := o.Update(phone, map[string]Rect{
		"hero":    {Top: 0, Width: 400, Height: 400},
		"pricing": {Top: 640, Width: 400, Height: 400}, // 80/400 = 20%
		"faq":     {Top: 1600, Width: 400, Height: 300},
	})
	require.Equal(t, []string{"hero"}, got)
	require.Equal(t, 2, o.Pending())

	got = o.Update(phone, map[string]Rect{
		"hero":    {Top: 0, Width: 400, Height: 400},
		"pricing": {Top: 620, Width: 400, Height: 400}, // 100/400 = 25%
	})
	require.Equal(t, []string{"pricing"}, got)

	for i := 0; i < 3; i++ {
		got = o.Update(phone, map[string]Rect{
			"hero":    {Top: -2000, Width: 400, Height: 400},
			"pricing": {Top: 0, Width: 400, Height: 400},
		})
		require.Empty(t, got)
	}
	require.True(t, o.Revealed("hero"))
	require.True(t, o.Revealed("pricing"))
	require.False(t, o.Revealed("faq"))
}

func TestObserveIgnoresRevealedIDs(t *testing.T) {
	o := New()
	o.Observe("a", "a", "")
	require.Equal(t, 1, o.Pending())
	require.Equal(t, []string{"a"}, o.Update(phone, map[string]Rect{"a": {Width: 10, Height: 10}}))

	o.Observe("a")
	require.Zero(t, o.Pending())
	require.Empty(t, o.Update(phone, map[string]Rect{"a": {Width: 10, Height: 10}}))
}

func TestRatio(t *testing.T) {
	root := Rect{Width: 100, Height: 100}
	require.InDelta(t, 1.0, Ratio(Rect{Top: 10, Left: 10, Width: 20, Height: 20}, root), 1e-9)
	require.InDelta(t, 0.5, Ratio(Rect{Top: 50, Width: 100, Height: 100}, root), 1e-9)
	require.InDelta(t, 0.0, Ratio(Rect{Top: 200, Width: 10, Height: 10}, root), 1e-9)
	require.InDelta(t, 1.0, Ratio(Rect{Top: 10, Width: 0, Height: 0}, root), 1e-9)
}

func TestOptions(t *testing.T) {
	o := New(WithThreshold(0.5), WithBottomMargin(0), WithThreshold(2))
	o.Observe("x")
	require.Empty(t, o.Update(phone, map[string]Rect{"x": {Top: 700, Width: 400, Height: 400}}))
	require.Equal(t, []string{"x"}, o.Update(phone, map[string]Rect{"x": {Top: 400, Width: 400, Height: 400}}))
}
