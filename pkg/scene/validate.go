// validate.go - Overflow checks and a human-readable scene catalog.
package scene

import (
	"fmt"
	"strings"

	"github.com/xob0t/storeshots/pkg/palette"
)

// overflower is implemented by regions that place a variable number of rows.
type overflower interface {
	Overflow(height int) int
}

// Validate checks that every list region fits the canvas.
// Returns warnings (never fatal errors): overflowing rows are still drawn.
func Validate(s Scene) []string {
	var warnings []string
	if s.Width <= 0 || s.Height <= 0 {
		warnings = append(warnings, fmt.Sprintf("scene %q has empty size %dx%d", s.Name, s.Width, s.Height))
	}
	if s.File == "" {
		warnings = append(warnings, fmt.Sprintf("scene %q has no output file", s.Name))
	}
	for i, r := range s.Regions {
		o, ok := r.(overflower)
		if !ok {
			continue
		}
		if n := o.Overflow(s.Height); n > 0 {
			warnings = append(warnings, fmt.Sprintf("scene %q: region %d (%s) has %d row(s) past the bottom edge", s.Name, i, r.Kind(), n))
		}
	}
	return warnings
}

// Describe returns a human-readable listing of scenes.
func Describe(scenes []Scene) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d scene(s):\n", len(scenes))
	for _, s := range scenes {
		fmt.Fprintf(&b, "\n  %-10s %4dx%-4d  %s\n", s.Name, s.Width, s.Height, s.File)
		kinds := make([]string, 0, len(s.Regions)+1)
		if s.Phone {
			kinds = append(kinds, StatusBar{}.Kind())
		}
		for _, r := range s.Regions {
			kinds = append(kinds, r.Kind())
		}
		if len(kinds) > 0 {
			fmt.Fprintf(&b, "    regions: %s\n", strings.Join(kinds, ", "))
		}
	}
	return b.String()
}

// DescribePalette lists every colour name of p with its hex value.
func DescribePalette(p palette.Palette) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d colour(s):\n", len(p))
	for _, n := range p.Names() {
		fmt.Fprintf(&b, "  %-18s %s\n", n, palette.Hex(p.Color(n)))
	}
	return b.String()
}
