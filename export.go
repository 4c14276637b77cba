package main

import (
	"fmt"
	"image"
	"image/png"
	"os"

	xdraw "golang.org/x/image/draw"
)

// reencodePNG decodes src and writes it back out to dst as a fresh
// PNG. If the decoded dimensions differ from size, the image is
// rescaled with CatmullRom resampling so the file always matches its
// size-tagged name.
func reencodePNG(src, dst string, size int) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}

	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		scaled := image.NewNRGBA(image.Rect(0, 0, size, size))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, b, xdraw.Over, nil)
		img = scaled
	}

	data, err := encodePNG(img)
	if err != nil {
		return fmt.Errorf("encode %s: %w", dst, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
