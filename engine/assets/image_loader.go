package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Image is a decoded RGBA8 bitmap, tightly packed, bottom row first so it can
// be handed to glTexImage2D as is.
type Image struct {
	Width, Height int
	Pixels        []byte
}

// BytesPerPixel of Pixels.
const BytesPerPixel = 4

// LoadPNG decodes the PNG at path and flips it to OpenGL's bottom-left origin.
func LoadPNG(path string) (Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return Image{}, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return Image{}, fmt.Errorf("decode png %q: %w", path, err)
	}
	return FromImage(img), nil
}

// FromImage converts any image to a flipped, tightly packed RGBA8 Image.
func FromImage(img image.Image) Image {
	rgba := imageToRGBA(img)
	w, h := rgba.Bounds().Dx(), rgba.Bounds().Dy()
	row := w * BytesPerPixel

	out := make([]byte, row*h)
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+row]
		dstY := h - 1 - y
		copy(out[dstY*row:(dstY+1)*row], src)
	}
	return Image{Width: w, Height: h, Pixels: out}
}

func imageToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok && m.Rect.Min == (image.Point{}) {
		return m
	}
	dst := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}
