// Package raster keeps an offscreen copy of each body-view image so clicks can
// be tested against the silhouette's alpha channel.
package raster

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sync"

	"spine-intake/internal/domain"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Buffer is the raster copy of one view image at natural resolution.
// Until a decode succeeds the buffer is not ready and every sample misses.
type Buffer struct {
	mu     sync.RWMutex
	img    *image.NRGBA
	source string
}

// NewBuffer returns an empty, not-ready buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// FromImage 直接用已解码图片构建（测试及渲染使用）
func FromImage(img image.Image) *Buffer {
	b := &Buffer{}
	b.set(toNRGBA(img), "memory")
	return b
}

// Load decodes r and replaces the buffer contents. On error the previous
// contents (or the not-ready state) are kept.
func (b *Buffer) Load(r io.Reader, source string) error {
	img, format, err := image.Decode(r)
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", source, err)
	}
	if img.Bounds().Empty() {
		return fmt.Errorf("image %s (%s) has no pixels", source, format)
	}
	b.set(toNRGBA(img), source)
	return nil
}

// LoadFile 从磁盘加载图片
func (b *Buffer) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	return b.Load(f, path)
}

func (b *Buffer) set(img *image.NRGBA, source string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.img = img
	b.source = source
}

// Ready reports whether an image has been decoded into the buffer.
func (b *Buffer) Ready() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.img != nil
}

// Source 返回图片来源（文件路径），未加载时为空
func (b *Buffer) Source() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.source
}

// Size returns the natural resolution, zero when not ready.
func (b *Buffer) Size() domain.NaturalSize {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.img == nil {
		return domain.NaturalSize{}
	}
	r := b.img.Bounds()
	return domain.NaturalSize{Width: r.Dx(), Height: r.Dy()}
}

// AlphaAt samples the alpha channel of one pixel. ok is false when the buffer
// is not ready or p lies outside the raster.
func (b *Buffer) AlphaAt(p domain.NaturalPoint) (alpha uint8, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.img == nil {
		return 0, false
	}
	r := b.img.Bounds()
	x, y := r.Min.X+p.X, r.Min.Y+p.Y
	if !(image.Point{X: x, Y: y}).In(r) {
		return 0, false
	}
	return b.img.NRGBAAt(x, y).A, true
}

// Image returns the decoded raster, nil when not ready. Callers must not modify it.
func (b *Buffer) Image() image.Image {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.img == nil {
		return nil
	}
	return b.img
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Copy(dst, image.Point{}, img, bounds, draw.Src, nil)
	return dst
}
