package painarea

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"spine-intake/internal/catalog"
	"spine-intake/internal/domain"
	"spine-intake/internal/raster"
	"spine-intake/internal/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func match(view domain.View, name string, group int) domain.Match {
	return domain.Match{
		DisplayName: name,
		GroupID:     group,
		View:        view,
		Click:       domain.DisplayedPoint{X: 85, Y: 170},
	}
}

func TestNewFromMatch(t *testing.T) {
	m := match(domain.ViewBack, "L4 Vertebra", 104)
	m.IsDetailVariant = true
	m.Displayed = domain.DisplayedSize{Width: 170, Height: 340}
	a := NewFromMatch(m, 0.85, "  worse when sitting ")

	_, err := domain.ParseView(string(a.OriginView))
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "L4 Vertebra", a.Region)
	assert.Equal(t, domain.DefaultIntensity, a.Intensity)
	assert.InDelta(t, 100.0, a.Coordinates.X, 1e-9)
	assert.InDelta(t, 200.0, a.Coordinates.Y, 1e-9)
	require.NotNil(t, a.Frame)
	assert.InDelta(t, 200.0, a.Frame.Width, 1e-9)
	assert.InDelta(t, 400.0, a.Frame.Height, 1e-9)
	assert.Equal(t, domain.ViewBack, a.OriginView)
	assert.Equal(t, 104, a.SourceGroupID)
	assert.True(t, a.DetailVariant)
	assert.Equal(t, "worse when sitting", a.FreeText)
	assert.False(t, a.CreatedAt.IsZero())

	b := NewFromMatch(m, 0.85, "")
	assert.NotEqual(t, a.ID, b.ID)

	// 无显示尺寸时不记录 frame
	c := NewFromMatch(match(domain.ViewFront, "Neck", 2), 1, "")
	assert.Nil(t, c.Frame)
}

func TestStore_AddRejectsDuplicateAndInvalid(t *testing.T) {
	s := NewStore(nil)
	a := NewFromMatch(match(domain.ViewFront, "Chest", 5), 1, "")
	require.NoError(t, s.Add(a))

	err := s.Add(a)
	assert.True(t, errors.Is(err, domain.ErrDuplicateID))

	bad := NewFromMatch(match(domain.ViewFront, "Chest", 5), 1, "")
	bad.Intensity = 11
	var oor *domain.OutOfRangeError
	assert.True(t, errors.As(s.Add(bad), &oor))

	assert.Error(t, s.Add(domain.PainArea{}))
	assert.Equal(t, 1, s.Len())
}

func TestStore_SetIntensityRoundTrip(t *testing.T) {
	s := NewStore(nil)
	a := NewFromMatch(match(domain.ViewFront, "Left Knee", 14), 1, "")
	require.NoError(t, s.Add(a))

	for v := domain.MinIntensity; v <= domain.MaxIntensity; v++ {
		require.NoError(t, s.SetIntensity(a.ID, v))
		got, ok := s.Get(a.ID)
		require.True(t, ok)
		assert.Equal(t, v, got.Intensity)
		assert.Equal(t, a.ID, got.ID)
		assert.Equal(t, a.Region, got.Region)
	}
}

func TestStore_SetIntensityBounds(t *testing.T) {
	s := NewStore(nil)
	a := NewFromMatch(match(domain.ViewFront, "Left Knee", 14), 1, "")
	require.NoError(t, s.Add(a))

	for _, v := range []int{-1, 11} {
		err := s.SetIntensity(a.ID, v)
		var oor *domain.OutOfRangeError
		require.True(t, errors.As(err, &oor), "value %d", v)
		assert.Equal(t, v, oor.Value)
	}
	got, _ := s.Get(a.ID)
	assert.Equal(t, domain.DefaultIntensity, got.Intensity)

	assert.NoError(t, s.SetIntensity(a.ID, 0))
	assert.NoError(t, s.SetIntensity(a.ID, 10))

	assert.True(t, errors.Is(s.SetIntensity("missing", 3), domain.ErrNotFound))
}

func TestStore_RemoveIdempotent(t *testing.T) {
	s := NewStore(nil)
	a := NewFromMatch(match(domain.ViewFront, "Neck", 2), 1, "")
	b := NewFromMatch(match(domain.ViewFront, "Chest", 5), 1, "")
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	assert.True(t, s.Remove(a.ID))
	once := s.List()
	assert.False(t, s.Remove(a.ID))
	assert.Equal(t, once, s.List())
	assert.Equal(t, 1, s.Len())
}

func TestStore_TwoMarksSameRegion(t *testing.T) {
	s := NewStore(nil)
	m := match(domain.ViewBack, "L5 Vertebra", 104)
	first := NewFromMatch(m, 1, "")
	second := NewFromMatch(m, 1, "")
	require.NoError(t, s.Add(first))
	require.NoError(t, s.Add(second))

	require.NoError(t, s.SetIntensity(first.ID, 5))
	require.NoError(t, s.SetIntensity(second.ID, 8))

	list := s.List()
	require.Len(t, list, 2)
	assert.NotEqual(t, list[0].ID, list[1].ID)
	assert.Equal(t, list[0].Region, list[1].Region)
	assert.Equal(t, 5, list[0].Intensity)
	assert.Equal(t, 8, list[1].Intensity)

	assert.True(t, s.Remove(first.ID))
	left, ok := s.Get(second.ID)
	require.True(t, ok)
	assert.Equal(t, 8, left.Intensity)
	assert.Equal(t, "L5 Vertebra", left.Region)
}

func TestStore_FilterByView(t *testing.T) {
	s := NewStore(nil)
	front := NewFromMatch(match(domain.ViewFront, "Chest", 5), 1, "")
	back := NewFromMatch(match(domain.ViewBack, "L3 Vertebra", 104), 1, "front of my mind")
	require.NoError(t, s.Add(front))
	require.NoError(t, s.Add(back))

	got := s.FilterByView(domain.ViewFront)
	require.Len(t, got, 1)
	assert.Equal(t, front.ID, got[0].ID)

	got = s.FilterByView(domain.ViewBack)
	require.Len(t, got, 1)
	assert.Equal(t, back.ID, got[0].ID)
}

func TestStore_UpdateNote(t *testing.T) {
	s := NewStore(nil)
	a := NewFromMatch(match(domain.ViewBack, "T8 Vertebra", 103), 1, "")
	require.NoError(t, s.Add(a))

	require.NoError(t, s.UpdateNote(a.ID, "burning"))
	got, _ := s.Get(a.ID)
	assert.Equal(t, "Back view, group 103: burning", got.Notes())

	assert.True(t, errors.Is(s.UpdateNote("missing", "x"), domain.ErrNotFound))
}

func TestStore_ListIsCopy(t *testing.T) {
	a := NewFromMatch(match(domain.ViewFront, "Chest", 5), 1, "")
	initial := []domain.PainArea{a}
	s := NewStore(initial)
	initial[0].Region = "changed"

	list := s.List()
	list[0].Intensity = 9
	got, _ := s.Get(a.ID)
	assert.Equal(t, "Chest", got.Region)
	assert.Equal(t, domain.DefaultIntensity, got.Intensity)
}

func TestStore_TransparentClickAddsNothing(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 1, A: 255})
		}
	}
	img.SetNRGBA(50, 50, color.NRGBA{})

	s := NewStore(nil)
	r := resolver.New(0, nil)
	m, o := r.Resolve(resolver.Request{
		View:      domain.ViewFront,
		Click:     domain.DisplayedPoint{X: 50, Y: 50},
		Displayed: domain.DisplayedSize{Width: 100, Height: 100},
	}, raster.FromImage(img), catalog.ListHotspots(domain.ViewFront))
	if o == resolver.Matched {
		require.NoError(t, s.Add(NewFromMatch(m, 1, "")))
	}
	assert.Equal(t, resolver.Transparent, o)
	assert.Equal(t, 0, s.Len())
}
