// Package overlay draws pain markers over a body-view image.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"spine-intake/internal/domain"

	"golang.org/x/image/draw"
)

const (
	DefaultRadius = 8
	outlineWidth  = 2
)

var (
	neutralColor = color.NRGBA{R: 158, G: 158, B: 158, A: 230}
	outlineColor = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
)

// Options 渲染参数；Width/Height 为输出像素尺寸，标记按各自 Frame 映射到画布
type Options struct {
	Width  int
	Height int
	Radius int
}

// IntensityColor maps 0 to neutral grey and 1..10 from green through yellow to red.
// Values outside [0,10] are clamped for display only.
func IntensityColor(intensity int) color.NRGBA {
	if intensity <= domain.MinIntensity {
		return neutralColor
	}
	if intensity > domain.MaxIntensity {
		intensity = domain.MaxIntensity
	}
	t := float64(intensity-1) / float64(domain.MaxIntensity-1)
	var r, g float64
	if t < 0.5 {
		r, g = 255*t*2, 255
	} else {
		r, g = 255, 255*(1-t)*2
	}
	return color.NRGBA{R: uint8(math.Round(r)), G: uint8(math.Round(g)), B: 0, A: 230}
}

// Render composites base (scaled to the reference size) and one disc per mark.
// A nil base yields markers on a transparent canvas.
func Render(base image.Image, marks []domain.PainArea, opts Options) (*image.NRGBA, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		if base == nil {
			return nil, fmt.Errorf("overlay size %dx%d is invalid", opts.Width, opts.Height)
		}
		b := base.Bounds()
		opts.Width, opts.Height = b.Dx(), b.Dy()
	}
	if opts.Radius <= 0 {
		opts.Radius = DefaultRadius
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	if base != nil {
		draw.CatmullRom.Scale(canvas, canvas.Bounds(), base, base.Bounds(), draw.Over, nil)
	}
	size := domain.NaturalSize{Width: opts.Width, Height: opts.Height}
	for _, m := range marks {
		disc(canvas, markCenter(m, size), opts.Radius, IntensityColor(m.Intensity))
	}
	return canvas, nil
}

// markCenter places a mark on the canvas. Records without a frame predate it
// and are drawn at their stored coordinates.
func markCenter(m domain.PainArea, canvas domain.NaturalSize) domain.ReferencePoint {
	if m.Frame == nil {
		return m.Coordinates
	}
	return domain.ReferenceToCanvas(m.Coordinates, *m.Frame, canvas)
}

// WritePNG renders and encodes in one step.
func WritePNG(w io.Writer, base image.Image, marks []domain.PainArea, opts Options) error {
	img, err := Render(base, marks, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode overlay: %w", err)
	}
	return nil
}

func disc(dst *image.NRGBA, c domain.ReferencePoint, radius int, fill color.NRGBA) {
	r := float64(radius)
	inner := r - outlineWidth
	area := image.Rect(
		int(math.Floor(c.X-r)), int(math.Floor(c.Y-r)),
		int(math.Ceil(c.X+r))+1, int(math.Ceil(c.Y+r))+1,
	).Intersect(dst.Bounds())

	src := image.NewUniform(fill)
	edge := image.NewUniform(outlineColor)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			d := math.Hypot(float64(x)+0.5-c.X, float64(y)+0.5-c.Y)
			if d > r {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if d > inner {
				draw.Draw(dst, px, edge, image.Point{}, draw.Over)
			} else {
				draw.Draw(dst, px, src, image.Point{}, draw.Over)
			}
		}
	}
}
