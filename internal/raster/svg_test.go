package raster

import (
	"image"
	"testing"
	"testing/fstest"

	"github.com/example/posterlayer/assets"
	"github.com/example/posterlayer/internal/geom"
	"github.com/example/posterlayer/internal/layer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterizeEmbeddedAsset(t *testing.T) {
	r := NewSVG(nil)
	img, err := r.Rasterize("square.svg", layer.ImageBaseSize, 2)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 100), img.Bounds().Size())
	assert.Equal(t, uint8(0xff), img.RGBAAt(50, 50).A)
	assert.Zero(t, img.RGBAAt(0, 0).A)
}

func TestRasterizeDeterministic(t *testing.T) {
	r := NewSVG(nil)
	a, err := r.Rasterize("star.svg", layer.ImageBaseSize, 1.3)
	require.NoError(t, err)
	b, err := r.Rasterize("star.svg", layer.ImageBaseSize, 1.3)
	require.NoError(t, err)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestRasterizeErrors(t *testing.T) {
	r := NewSVG(nil)
	_, err := r.Rasterize("missing.svg", layer.ImageBaseSize, 1)
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)

	_, err = r.Rasterize("star.svg", layer.ImageBaseSize, 0)
	assert.ErrorIs(t, err, ErrInvalidScale)

	_, err = r.Rasterize("star.svg", geom.Sz(5000, 5000), 2)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestRasterizeCustomSource(t *testing.T) {
	src := assets.NewCatalog(fstest.MapFS{
		"shapes/full.svg": {Data: []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`)},
	})
	img, err := NewSVG(src).Rasterize("full.svg", geom.Sz(10, 10), 1)
	require.NoError(t, err)
	c := img.RGBAAt(5, 5)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0xff), c.A)
}

func TestLayerWithSVGRasterizer(t *testing.T) {
	l, err := layer.New("circle", layer.KindShape, 3, NewSVG(nil))
	require.NoError(t, err)
	assert.Equal(t, layer.SettingsShapesMaskAdjustment, l.Settings())
	assert.Equal(t, image.Pt(100, 100), l.View().Bitmap.Bounds().Size())

	_, err = layer.New("unicorn", layer.KindIcon, 4, NewSVG(nil))
	assert.ErrorIs(t, err, assets.ErrUnknownAsset)
}
