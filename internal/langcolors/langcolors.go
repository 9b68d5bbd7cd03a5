// Package langcolors maps language names to display colors. Well-known
// languages come from an embedded catalog; anything else gets a stable color
// derived from the name so the same unknown language always renders the same.
package langcolors

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/qusai-Kagalwala/repo-vista/pkg/logger"
)

// Fallback is the generic token for the "other" slice of a language bar.
const Fallback = "#ededed"

//go:embed colors.yaml
var catalogYAML []byte

var (
	once    sync.Once
	catalog map[string]string
)

func load() {
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		// embedded catalog, only reachable by editing colors.yaml badly
		logger.Error("langcolors: embedded catalog unreadable", logger.WithError(err))
		catalog = map[string]string{}
	}
}

// Lookup returns the display color for a language name. Unknown names get a
// deterministic hue hashed from the name rather than the flat Fallback token,
// so two unknown languages on one card stay distinguishable.
func Lookup(name string) string {
	once.Do(load)
	if hex, ok := catalog[name]; ok {
		return hex
	}
	if name == "" {
		return Fallback
	}
	return hashedColor(name)
}

// hashedColor derives a readable color from a name: hash to a hue, fixed
// saturation and lightness.
func hashedColor(name string) string {
	h := 0
	for _, c := range name {
		h = 31*h + int(c)
	}
	if h < 0 {
		h = -h
	}
	r, g, b := hslToRGB(float64(h%360), 0.4, 0.65)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func hslToRGB(h, s, l float64) (uint8, uint8, uint8) {
	h /= 360.0

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		r = hueToRGB(p, q, h+1.0/3.0)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3.0)
	}
	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
