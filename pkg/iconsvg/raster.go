package iconsvg

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Rasterize draws a rendered SVG document on a size x size image. Paint
// still set to ColorToken is drawn with fallback.
func Rasterize(svg []byte, size int, fallback string) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid raster size %d", size)
	}
	icon, err := oksvg.ReadReplacingCurrentColor(bytes.NewReader(svg), fallback, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}

	icon.SetTarget(0, 0, float64(size), float64(size))
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	dasher := rasterx.NewDasher(size, size, rasterx.NewScannerGV(size, size, img, img.Bounds()))
	icon.Draw(dasher, 1.0)
	return img, nil
}
