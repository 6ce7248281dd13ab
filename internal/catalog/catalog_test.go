package catalog

import (
	"testing"

	"spine-intake/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHotspots_Invariants(t *testing.T) {
	for _, view := range domain.Views() {
		hs := ListHotspots(view)
		require.NotEmpty(t, hs, "view %s", view)

		names := make(map[string]bool, len(hs))
		for _, h := range hs {
			assert.True(t, h.BoundingBox.Within(), "%s/%s box out of [0,1]: %+v", view, h.DisplayName, h.BoundingBox)
			assert.Greater(t, h.BoundingBox.Width, 0.0, h.DisplayName)
			assert.Greater(t, h.BoundingBox.Height, 0.0, h.DisplayName)
			assert.False(t, names[h.DisplayName], "duplicate name %q in %s", h.DisplayName, view)
			names[h.DisplayName] = true
			assert.NotEmpty(t, GroupName(view, h.GroupID), "group %d has no name in %s", h.GroupID, view)
		}
	}
}

func TestListHotspots_ReturnsCopy(t *testing.T) {
	hs := ListHotspots(domain.ViewFront)
	original := hs[0].DisplayName
	hs[0].DisplayName = "mutated"

	again := ListHotspots(domain.ViewFront)
	assert.Equal(t, original, again[0].DisplayName)
}

func TestListHotspots_DeterministicOrder(t *testing.T) {
	a := ListHotspots(domain.ViewBack)
	b := ListHotspots(domain.ViewBack)
	require.Equal(t, a, b)
}

func TestListHotspots_UnknownViewPanics(t *testing.T) {
	assert.Panics(t, func() { ListHotspots(domain.View("side")) })
}

func TestLookup_SpineLevels(t *testing.T) {
	for _, name := range []string{"C1 Vertebra", "T12 Vertebra", "L4 Vertebra", "Sacrum S1", "Coccyx", "Left Paraspinal L5"} {
		_, ok := Lookup(domain.ViewBack, name)
		assert.True(t, ok, name)
	}
	_, ok := Lookup(domain.ViewFront, "L4 Vertebra")
	assert.False(t, ok)
}

func TestDetailVariants(t *testing.T) {
	h, ok := Lookup(domain.ViewBack, "Left Sole - Arch (Outer)")
	require.True(t, ok)
	assert.True(t, h.IsDetailVariant)

	h, ok = Lookup(domain.ViewBack, "L4 Vertebra")
	require.True(t, ok)
	assert.False(t, h.IsDetailVariant)
}

func TestGroups(t *testing.T) {
	groups := Groups(domain.ViewBack)
	require.NotEmpty(t, groups)
	assert.Equal(t, 101, groups[0].ID)
	assert.Equal(t, "Back of Head", groups[0].Name)

	seen := map[int]bool{}
	for _, g := range groups {
		assert.False(t, seen[g.ID])
		seen[g.ID] = true
	}
}
