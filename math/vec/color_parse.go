package vec

import (
	"fmt"
	"image/color"
	"strconv"

	"golang.org/x/image/colornames"
)

// BadLiteral is returned when a color, number, or angle literal in the
// scene language cannot be parsed.
type BadLiteral struct {
	Kind, Text string
}

func (e BadLiteral) Error() string {
	return fmt.Sprintf("bad %s literal %q", e.Kind, e.Text)
}

// ParseColor accepts the "#rrggbb" hex form, and, as an enrichment
// grounded on gazed-vu's golang.org/x/image dependency (load/ttf.go
// already pulls in the x/image module for font atlases), any name
// recognized by golang.org/x/image/colornames ("forestgreen",
// "cornflowerblue", ...). Hex takes precedence; name lookup is tried only
// when the text doesn't start with '#'.
func ParseColor(text string) (Color, error) {
	if len(text) > 0 && text[0] == '#' {
		return parseHex(text)
	}
	if c, ok := colornames.Map[text]; ok {
		return fromNRGBA(c), nil
	}
	return Color{}, BadLiteral{Kind: "color", Text: text}
}

func parseHex(text string) (Color, error) {
	if len(text) != 7 {
		return Color{}, BadLiteral{Kind: "color", Text: text}
	}
	v, err := strconv.ParseUint(text[1:], 16, 32)
	if err != nil {
		return Color{}, BadLiteral{Kind: "color", Text: text}
	}
	r := float64((v>>16)&0xff) / 255
	g := float64((v>>8)&0xff) / 255
	b := float64(v&0xff) / 255
	return Color{r, g, b}, nil
}

func fromNRGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
