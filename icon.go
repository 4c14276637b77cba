package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/fogleman/gg"
)

// layout holds the proportional drawing metrics for one icon size.
type layout struct {
	padding      float64
	cornerRadius float64
	margin       float64
	strokeWidth  float64
}

// layoutFor computes the metrics for the given size. Integer division
// keeps everything on whole pixels; the stroke never drops below 2 so
// the glyph stays visible at 16px.
func layoutFor(size int) layout {
	stroke := size / 12
	if stroke < 2 {
		stroke = 2
	}
	return layout{
		padding:      float64(size / 8),
		cornerRadius: float64(size / 6),
		margin:       float64(size / 4),
		strokeWidth:  float64(stroke),
	}
}

// renderIcon draws the placeholder icon on a transparent background:
// a rounded rectangle in the primary brand color with a stylized "F"
// built from three strokes.
func renderIcon(size int) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetColor(color.RGBA{0, 0, 0, 0})
	dc.Clear()

	l := layoutFor(size)
	s := float64(size)

	dc.SetColor(palette["primary"])
	dc.DrawRoundedRectangle(l.padding, l.padding, s-2*l.padding, s-2*l.padding, l.cornerRadius)
	dc.Fill()

	dc.SetColor(palette["text_light"])
	dc.SetLineWidth(l.strokeWidth)

	xLeft := l.margin + l.strokeWidth
	yTop := l.margin + l.strokeWidth
	xRight := s - l.margin - l.strokeWidth
	yBottom := s - l.margin - l.strokeWidth

	// Vertical stem of the F
	dc.DrawLine(xLeft, yTop, xLeft, yBottom)
	dc.Stroke()

	// Top bar, full glyph width
	dc.DrawLine(xLeft, yTop, xRight, yTop)
	dc.Stroke()

	// Middle bar at the vertical midpoint, two thirds of the width
	yMid := (yTop + yBottom) / 2
	xMidRight := xLeft + (xRight-xLeft)*2/3
	dc.DrawLine(xLeft, yMid, xMidRight, yMid)
	dc.Stroke()

	return dc.Image()
}

// writeIcon renders one icon and writes it to path as PNG,
// overwriting any existing file.
func writeIcon(size int, path string) error {
	data, err := encodePNG(renderIcon(size))
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// encodePNG encodes an image as PNG bytes.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
