package main

import "image/color"

// Ferrite brand colors, keyed by semantic name. The placeholder icon
// only draws "primary" and "text_light"; the rest are kept so the
// palette stays the single source of truth for branding.
var palette = map[string]color.RGBA{
	"primary":          {0x2D, 0x5A, 0x27, 0xFF}, // forest green, main brand color
	"secondary":        {0x4A, 0x7C, 0x43, 0xFF}, // lighter green, accents
	"accent":           {0x8B, 0xC3, 0x4A, 0xFF}, // bright green, highlights
	"background_light": {0xFF, 0xFF, 0xFF, 0xFF},
	"background_dark":  {0x1E, 0x1E, 0x1E, 0xFF},
	"text_light":       {0xFF, 0xFF, 0xFF, 0xFF},
	"text_dark":        {0x2D, 0x5A, 0x27, 0xFF},
}
