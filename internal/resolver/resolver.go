// Package resolver turns a click on a body-view image into a catalog hotspot.
package resolver

import (
	"math"

	"spine-intake/internal/domain"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultAlphaThreshold: pixels with alpha below this are background.
const DefaultAlphaThreshold uint8 = 10

// AlphaSampler is the raster view the resolver needs (raster.Buffer satisfies it).
type AlphaSampler interface {
	Ready() bool
	Size() domain.NaturalSize
	AlphaAt(p domain.NaturalPoint) (uint8, bool)
}

// Outcome 解析结果分类；除 Matched 外都表示"无操作"
type Outcome int

const (
	Matched Outcome = iota
	OutOfBounds
	RasterNotReady
	Transparent
	EmptyCatalog
)

func (o Outcome) String() string {
	switch o {
	case Matched:
		return "matched"
	case OutOfBounds:
		return "out_of_bounds"
	case RasterNotReady:
		return "raster_not_ready"
	case Transparent:
		return "transparent"
	case EmptyCatalog:
		return "empty_catalog"
	default:
		return "unknown"
	}
}

// Request is one pointer event in displayed-image space.
type Request struct {
	View      domain.View
	Click     domain.DisplayedPoint
	Displayed domain.DisplayedSize
}

// Resolver is stateless apart from its threshold; it is safe to share.
type Resolver struct {
	alphaThreshold uint8
	logger         *zap.Logger
}

// New 创建解析器；threshold 为 0 时使用默认值
func New(alphaThreshold uint8, logger *zap.Logger) *Resolver {
	if alphaThreshold == 0 {
		alphaThreshold = DefaultAlphaThreshold
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{alphaThreshold: alphaThreshold, logger: logger}
}

// Resolve runs bounds check, transparency check and nearest-centroid search.
// It never fails: anything other than Matched is a silent no-op for the caller.
func (r *Resolver) Resolve(req Request, raster AlphaSampler, hotspots []domain.HotspotDefinition) (domain.Match, Outcome) {
	if !inBounds(req.Click, req.Displayed) {
		return r.miss(req, OutOfBounds)
	}

	if raster == nil || !raster.Ready() {
		return r.miss(req, RasterNotReady)
	}
	np := domain.DisplayedToNatural(req.Click, req.Displayed, raster.Size())
	alpha, ok := raster.AlphaAt(np)
	if !ok {
		return r.miss(req, RasterNotReady)
	}
	if alpha < r.alphaThreshold {
		return r.miss(req, Transparent)
	}

	idx, dist := Nearest(req.Click, req.Displayed, hotspots)
	if idx < 0 {
		return r.miss(req, EmptyCatalog)
	}
	h := hotspots[idx]
	return domain.Match{
		DisplayName:     h.DisplayName,
		GroupID:         h.GroupID,
		IsDetailVariant: h.IsDetailVariant,
		View:            req.View,
		Click:           req.Click,
		Displayed:       req.Displayed,
		Distance:        dist,
	}, Matched
}

func (r *Resolver) miss(req Request, o Outcome) (domain.Match, Outcome) {
	r.logger.Debug("Click not resolved",
		zap.String("view", string(req.View)),
		zap.Float64("x", req.Click.X),
		zap.Float64("y", req.Click.Y),
		zap.Stringer("outcome", o),
	)
	return domain.Match{}, o
}

// inBounds uses the half-open rectangle [0,w) x [0,h).
func inBounds(p domain.DisplayedPoint, size domain.DisplayedSize) bool {
	if size.Width <= 0 || size.Height <= 0 {
		return false
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return false
	}
	return p.X >= 0 && p.Y >= 0 && p.X < size.Width && p.Y < size.Height
}

// Nearest returns the index of the hotspot whose box centre is closest to click
// in displayed space, and that distance. Ties go to the earliest entry in
// catalog order (strict less-than). Returns -1 for an empty list.
func Nearest(click domain.DisplayedPoint, size domain.DisplayedSize, hotspots []domain.HotspotDefinition) (int, float64) {
	best, bestDist := -1, math.Inf(1)
	c := click.Vec()
	for i, h := range hotspots {
		center := domain.NormalizedToDisplayed(h.BoundingBox, size).Center()
		d := r2.Norm(r2.Sub(c, center.Vec()))
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
