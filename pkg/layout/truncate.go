package layout

import "github.com/rivo/uniseg"

// Truncate keeps the first budget user-perceived characters (grapheme
// clusters) of s. There is no ellipsis. Truncating an already truncated
// string with the same budget returns it unchanged.
func Truncate(s string, budget int) string {
	if budget <= 0 {
		return ""
	}
	end := 0
	g := uniseg.NewGraphemes(s)
	for n := 0; n < budget && g.Next(); n++ {
		_, end = g.Positions()
	}
	return s[:end]
}
