package domain

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Three coordinate spaces are in play and must not be mixed:
//   - normalized: fractions of the displayed image, used by the hotspot catalog
//   - displayed: pixels of the image as currently laid out in the browser
//   - natural: integer pixels of the decoded raster
// Records additionally store reference points: displayed pixels divided by the
// display scale that was applied to the image container, together with the
// reference-space frame (image size) they were taken in.

// NormalizedRect 归一化矩形（[0,1] 区间内的分数坐标）
type NormalizedRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Within reports whether every edge of the rect lies inside [0,1].
func (r NormalizedRect) Within() bool {
	in := func(v float64) bool { return v >= 0 && v <= 1 }
	return in(r.X) && in(r.Y) && in(r.Width) && in(r.Height) &&
		in(r.X+r.Width) && in(r.Y+r.Height)
}

// DisplayedSize 图片当前显示尺寸（像素）
type DisplayedSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DisplayedPoint 显示坐标系中的点（像素）
type DisplayedPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec converts the point for vector arithmetic.
func (p DisplayedPoint) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

// DisplayedRect 显示坐标系中的矩形
type DisplayedRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Center 矩形中心点
func (r DisplayedRect) Center() DisplayedPoint {
	return DisplayedPoint{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// NaturalSize 原始图片分辨率
type NaturalSize struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NaturalPoint 原始分辨率下的像素坐标
type NaturalPoint struct {
	X int
	Y int
}

// ReferencePoint 参考缩放比例下的像素坐标（保存在 PainArea 上，用于重新绘制标记）
type ReferencePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ReferenceSize 参考坐标系下的图片尺寸（记录点击时的显示尺寸 / 显示缩放）
type ReferenceSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether both dimensions are positive.
func (s ReferenceSize) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// NormalizedToDisplayed scales a catalog rect onto the displayed image.
func NormalizedToDisplayed(r NormalizedRect, size DisplayedSize) DisplayedRect {
	return DisplayedRect{
		X:      r.X * size.Width,
		Y:      r.Y * size.Height,
		Width:  r.Width * size.Width,
		Height: r.Height * size.Height,
	}
}

// DisplayedToNatural maps a displayed point onto the raster by linear scaling,
// clamped to the raster bounds. Callers bounds-check the displayed point first.
func DisplayedToNatural(p DisplayedPoint, displayed DisplayedSize, natural NaturalSize) NaturalPoint {
	return NaturalPoint{
		X: scaleAxis(p.X, displayed.Width, natural.Width),
		Y: scaleAxis(p.Y, displayed.Height, natural.Height),
	}
}

func scaleAxis(v, displayedDim float64, naturalDim int) int {
	if displayedDim <= 0 || naturalDim <= 0 {
		return 0
	}
	n := int(math.Floor(v / displayedDim * float64(naturalDim)))
	if n < 0 {
		return 0
	}
	if n > naturalDim-1 {
		return naturalDim - 1
	}
	return n
}

// DisplayedToReference removes the container's display scale from a click.
// A non-positive scale is treated as 1.
func DisplayedToReference(p DisplayedPoint, displayScale float64) ReferencePoint {
	if displayScale <= 0 {
		displayScale = 1
	}
	return ReferencePoint{X: p.X / displayScale, Y: p.Y / displayScale}
}

// ReferenceToDisplayed is the inverse of DisplayedToReference.
func ReferenceToDisplayed(p ReferencePoint, displayScale float64) DisplayedPoint {
	if displayScale <= 0 {
		displayScale = 1
	}
	return DisplayedPoint{X: p.X * displayScale, Y: p.Y * displayScale}
}

// DisplayedSizeToReference removes the display scale from the displayed image size.
// A non-positive scale is treated as 1.
func DisplayedSizeToReference(size DisplayedSize, displayScale float64) ReferenceSize {
	if displayScale <= 0 {
		displayScale = 1
	}
	return ReferenceSize{Width: size.Width / displayScale, Height: size.Height / displayScale}
}

// ReferenceToCanvas maps a stored point taken in frame onto a canvas of the
// given pixel size. An invalid frame leaves the point unchanged.
func ReferenceToCanvas(p ReferencePoint, frame ReferenceSize, canvas NaturalSize) ReferencePoint {
	if !frame.Valid() || canvas.Width <= 0 || canvas.Height <= 0 {
		return p
	}
	return ReferencePoint{
		X: p.X / frame.Width * float64(canvas.Width),
		Y: p.Y / frame.Height * float64(canvas.Height),
	}
}
