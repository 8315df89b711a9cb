package layer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsMapping(t *testing.T) {
	want := map[Kind]SettingsKind{
		KindIcon:       SettingsIconsAdjustment,
		KindShape:      SettingsShapesMaskAdjustment,
		KindText:       SettingsTextAdjustment,
		KindBackground: SettingsTextAdjustment,
		KindSticker:    SettingsTextAdjustment,
	}
	require.Len(t, want, len(Kinds))
	for _, k := range Kinds {
		assert.Equal(t, want[k], k.Settings(), k.String())
	}
	assert.Equal(t, SettingsTextAdjustment, Kind(42).Settings())
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := ParseKind(" Shapes ")
	require.NoError(t, err)
	assert.Equal(t, KindShape, got)

	_, err = ParseKind("video")
	assert.Error(t, err)
}

func TestTintOpacity(t *testing.T) {
	for i := 0; i <= 100; i++ {
		tint := NewTint(color.RGBA{R: 10, G: 20, B: 30, A: 255}, float64(i))
		assert.Equal(t, float64(i)/100, tint.Opacity())
	}
	assert.Equal(t, 100.0, NewTint(color.White, 250).Intensity)
	assert.Equal(t, 0.0, NewTint(color.White, -3).Intensity)
}

func TestNewTintStoresOpaqueColour(t *testing.T) {
	tint := NewTint(color.NRGBA{R: 200, G: 100, B: 0, A: 128}, 50)
	assert.Equal(t, uint8(0xff), tint.Color.A)
	assert.InDelta(t, 200, int(tint.Color.R), 2)
	assert.InDelta(t, 100, int(tint.Color.G), 2)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, DefaultTint().Color)
}
