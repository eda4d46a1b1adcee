// Package texture provides image decoding and GL texture upload.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	_ "golang.org/x/image/bmp" // BMP decoder registration
)

// Decode decodes PNG, JPEG or BMP data into RGBA with the first row at
// the bottom, matching GL texture coordinates.
func Decode(data []byte) (*image.RGBA, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s image: empty bounds", format)
	}
	rgba := ToRGBA(img)
	FlipVertical(rgba)
	return rgba, nil
}

// ToRGBA converts any image.Image to *image.RGBA anchored at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical mirrors img top to bottom in place.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	row := make([]byte, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bottom := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// Stripes renders vertical stripes of the given period, alternating
// light and dark. Used when no texture file can be read.
func Stripes(w, h, period int) *image.RGBA {
	if period < 1 {
		period = 1
	}
	light := color.RGBA{R: 235, G: 235, B: 235, A: 255}
	dark := color.RGBA{R: 40, G: 40, B: 40, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := light
			if (x/period)%2 == 1 {
				c = dark
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
