package render

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"os"
)

// WritePNG encodes pixels as an 8-bit-per-channel sRGB PNG at path, sized
// to the camera's canvas dimensions.
func WritePNG(path string, pixels *Pixels) error {
	img := image.NewRGBA(image.Rect(0, 0, pixels.Width, pixels.Height))
	for y := 0; y < pixels.Height; y++ {
		for x := 0; x < pixels.Width; x++ {
			c := pixels.at(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: to8(c.R),
				G: to8(c.G),
				B: to8(c.B),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		return err
	}
	return w.Flush()
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// DefaultAsciiRamp is a monotonically increasing brightness-to-glyph
// ramp: dark to bright left to right.
const DefaultAsciiRamp = " .:-=+*#%@"

// ASCIIRows renders pixels to one string per canvas row by mapping each
// pixel's luminance onto ramp, which must be non-empty and ordered dark
// to bright. An empty ramp falls back to DefaultAsciiRamp.
func ASCIIRows(pixels *Pixels, ramp string) []string {
	if ramp == "" {
		ramp = DefaultAsciiRamp
	}
	rows := make([]string, pixels.Height)
	glyphs := []rune(ramp)
	last := len(glyphs) - 1
	for y := 0; y < pixels.Height; y++ {
		row := make([]rune, pixels.Width)
		for x := 0; x < pixels.Width; x++ {
			lum := pixels.at(x, y).Luminance()
			idx := int(lum * float64(last))
			if idx < 0 {
				idx = 0
			}
			if idx > last {
				idx = last
			}
			row[x] = glyphs[idx]
		}
		rows[y] = string(row)
	}
	return rows
}

// WriteASCII writes rows to path, one row per line with a trailing
// newline, matching the plain-UTF-8 output contract.
func WriteASCII(path string, rows []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, row := range rows {
		if _, err := w.WriteString(row); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
