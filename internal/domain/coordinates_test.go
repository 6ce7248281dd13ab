package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizedToDisplayed(t *testing.T) {
	r := NormalizedToDisplayed(NormalizedRect{X: 0.25, Y: 0.5, Width: 0.1, Height: 0.2}, DisplayedSize{Width: 400, Height: 800})
	assert.InDelta(t, 100, r.X, 1e-9)
	assert.InDelta(t, 400, r.Y, 1e-9)
	assert.InDelta(t, 40, r.Width, 1e-9)
	assert.InDelta(t, 160, r.Height, 1e-9)

	c := r.Center()
	assert.InDelta(t, 120, c.X, 1e-9)
	assert.InDelta(t, 480, c.Y, 1e-9)
}

func TestDisplayedToNatural(t *testing.T) {
	displayed := DisplayedSize{Width: 200, Height: 400}
	natural := NaturalSize{Width: 100, Height: 200}

	require.Equal(t, NaturalPoint{X: 50, Y: 50}, DisplayedToNatural(DisplayedPoint{X: 100, Y: 100}, displayed, natural))
	require.Equal(t, NaturalPoint{X: 50, Y: 50}, DisplayedToNatural(DisplayedPoint{X: 101.9, Y: 101.9}, displayed, natural))
	// 边界被截断到最后一个像素
	require.Equal(t, NaturalPoint{X: 99, Y: 199}, DisplayedToNatural(DisplayedPoint{X: 200, Y: 400}, displayed, natural))
	require.Equal(t, NaturalPoint{X: 0, Y: 0}, DisplayedToNatural(DisplayedPoint{X: -3, Y: -3}, displayed, natural))
	require.Equal(t, NaturalPoint{}, DisplayedToNatural(DisplayedPoint{X: 10, Y: 10}, DisplayedSize{}, natural))
}

func TestReferenceRoundTrip(t *testing.T) {
	p := DisplayedPoint{X: 85, Y: 170}
	ref := DisplayedToReference(p, 0.85)
	assert.InDelta(t, 100, ref.X, 1e-9)
	assert.InDelta(t, 200, ref.Y, 1e-9)

	back := ReferenceToDisplayed(ref, 0.85)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)

	// 非法缩放比例按 1 处理
	assert.Equal(t, ReferencePoint{X: 85, Y: 170}, DisplayedToReference(p, 0))
}

func TestReferenceToCanvas(t *testing.T) {
	frame := DisplayedSizeToReference(DisplayedSize{Width: 85, Height: 170}, 0.85)
	assert.InDelta(t, 100, frame.Width, 1e-9)
	assert.InDelta(t, 200, frame.Height, 1e-9)

	// 同一解剖位置在不同显示尺寸下映射到画布同一点
	canvas := NaturalSize{Width: 200, Height: 400}
	small := ReferenceToCanvas(ReferencePoint{X: 50, Y: 100}, ReferenceSize{Width: 100, Height: 200}, canvas)
	large := ReferenceToCanvas(ReferencePoint{X: 150, Y: 300}, ReferenceSize{Width: 300, Height: 600}, canvas)
	assert.InDelta(t, 100, small.X, 1e-9)
	assert.InDelta(t, 200, small.Y, 1e-9)
	assert.InDelta(t, small.X, large.X, 1e-9)
	assert.InDelta(t, small.Y, large.Y, 1e-9)

	p := ReferencePoint{X: 7, Y: 9}
	assert.Equal(t, p, ReferenceToCanvas(p, ReferenceSize{}, canvas))
	assert.Equal(t, p, ReferenceToCanvas(p, ReferenceSize{Width: 10, Height: 10}, NaturalSize{}))
}

func TestNormalizedRect_Within(t *testing.T) {
	assert.True(t, NormalizedRect{X: 0, Y: 0, Width: 1, Height: 1}.Within())
	assert.False(t, NormalizedRect{X: 0.9, Y: 0, Width: 0.2, Height: 0.1}.Within())
	assert.False(t, NormalizedRect{X: -0.01, Y: 0, Width: 0.2, Height: 0.1}.Within())
}
