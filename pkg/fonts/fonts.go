// Package fonts resolves a family hint, weight and pixel size to a font.Face.
//
// Resolution never fails. A family is looked up as an OpenType/TrueType file
// in the configured directories; when it is missing or does not parse, the
// Go font of the same weight (golang.org/x/image/font/gofont) is used, and if
// even that fails, basicfont.Face7x13.
package fonts

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects the face variant.
type Weight int

const (
	Regular Weight = iota
	Bold
	Italic
)

func (w Weight) String() string {
	switch w {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	default:
		return "regular"
	}
}

// Spec names a font: family hint, weight and size in pixels.
type Spec struct {
	Family string
	Weight Weight
	Size   float64
}

// DefaultSize is used when a Spec has no positive size.
const DefaultSize = 12

// Resolver turns a Spec into a face. Implementations never fail; callers
// get a usable face even when the requested family is unavailable.
type Resolver interface {
	Resolve(s Spec) font.Face
}

// SystemDirs are searched after the directories given to NewDefault.
var SystemDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/dejavu",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
}

var errNotFound = errors.New("font file not found")

type fontKey struct {
	family string
	weight Weight
}

// Default is the built-in Resolver. Parsed fonts are shared and it is safe
// for concurrent use; each Resolve call returns a fresh face, which is not.
type Default struct {
	dirs []string

	mu     sync.Mutex
	parsed map[fontKey]*opentype.Font
}

// NewDefault returns a resolver searching dirs, then SystemDirs.
func NewDefault(dirs ...string) *Default {
	all := append(append([]string(nil), dirs...), SystemDirs...)
	return &Default{dirs: all, parsed: make(map[fontKey]*opentype.Font)}
}

// NewEmbedded returns a resolver that always uses the embedded Go fonts.
// Output does not depend on what is installed on the machine.
func NewEmbedded() *Default {
	return &Default{parsed: make(map[fontKey]*opentype.Font)}
}

// Resolve implements Resolver.
func (d *Default) Resolve(s Spec) font.Face {
	size := s.Size
	if size <= 0 {
		size = DefaultSize
	}
	opts := &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull}

	if f := d.font(s.Family, s.Weight); f != nil {
		face, err := opentype.NewFace(f, opts)
		if err == nil {
			return face
		}
		slog.Debug("font face failed, using embedded font", "family", s.Family, "weight", s.Weight, "err", err)
	}

	if f, err := embedded(s.Weight); err == nil {
		if face, err := opentype.NewFace(f, opts); err == nil {
			return face
		}
	}
	return basicfont.Face7x13
}

// font returns the parsed font for family, or nil to use the embedded one.
// Lookups are cached, including misses.
func (d *Default) font(family string, w Weight) *opentype.Font {
	if family == "" || len(d.dirs) == 0 {
		return nil
	}
	k := fontKey{family, w}

	d.mu.Lock()
	defer d.mu.Unlock()
	if f, ok := d.parsed[k]; ok {
		return f
	}
	f, err := d.load(family, w)
	if err != nil {
		slog.Debug("font not resolved, using embedded font", "family", family, "weight", w, "err", err)
	}
	d.parsed[k] = f
	return f
}

func (d *Default) load(family string, w Weight) (*opentype.Font, error) {
	for _, dir := range d.dirs {
		for _, name := range fileNames(family, w) {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				continue
			}
			f, err := opentype.Parse(data)
			if err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			return f, nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", family, w, errNotFound)
}

// fileNames lists candidate file names, e.g. DejaVuSans-Bold.ttf.
func fileNames(family string, w Weight) []string {
	var suffixes []string
	switch w {
	case Bold:
		suffixes = []string{"-Bold"}
	case Italic:
		suffixes = []string{"-Italic", "-Oblique"}
	default:
		suffixes = []string{"", "-Regular"}
	}
	var out []string
	for _, s := range suffixes {
		out = append(out, family+s+".ttf", family+s+".otf")
	}
	return out
}

var (
	embeddedOnce  sync.Once
	embeddedFonts map[Weight]*opentype.Font
	embeddedErr   error
)

func embedded(w Weight) (*opentype.Font, error) {
	embeddedOnce.Do(func() {
		embeddedFonts = make(map[Weight]*opentype.Font, 3)
		for weight, ttf := range map[Weight][]byte{
			Regular: goregular.TTF,
			Bold:    gobold.TTF,
			Italic:  goitalic.TTF,
		} {
			f, err := opentype.Parse(ttf)
			if err != nil {
				embeddedErr = fmt.Errorf("parse embedded %s font: %w", weight, err)
				return
			}
			embeddedFonts[weight] = f
		}
	})
	if embeddedErr != nil {
		return nil, embeddedErr
	}
	if f, ok := embeddedFonts[w]; ok {
		return f, nil
	}
	return embeddedFonts[Regular], nil
}

// Cache memoizes faces for one render pass. Faces are not safe for
// concurrent use, so a Cache must stay on one goroutine.
type Cache struct {
	r     Resolver
	faces map[Spec]font.Face
}

// NewCache wraps r. A nil r uses the embedded fonts.
func NewCache(r Resolver) *Cache {
	if r == nil {
		r = NewEmbedded()
	}
	return &Cache{r: r, faces: make(map[Spec]font.Face)}
}

// Face returns the face for s, resolving it on first use.
func (c *Cache) Face(s Spec) font.Face {
	if f, ok := c.faces[s]; ok {
		return f
	}
	f := c.r.Resolve(s)
	c.faces[s] = f
	return f
}

// Close releases every cached face.
func (c *Cache) Close() error {
	var errs []error
	for s, f := range c.faces {
		errs = append(errs, f.Close())
		delete(c.faces, s)
	}
	return errors.Join(errs...)
}
