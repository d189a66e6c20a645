// config.go - TOML run configuration and its resolution into a Config.
package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/xob0t/storeshots/pkg/fonts"
	"github.com/xob0t/storeshots/pkg/scene"
)

// DefaultOutputRoot is where images go when nothing else is configured.
const DefaultOutputRoot = "assets"

// FileConfig is the on-disk form of a run configuration.
type FileConfig struct {
	OutputRoot string     `toml:"output_root" comment:"directory the images are written to"`
	Parallel   int        `toml:"parallel" comment:"scenes rendered at once (1 = sequential)"`
	Scenes     []string   `toml:"scenes" comment:"scene names to render; empty renders the whole catalog"`
	Fonts      FontConfig `toml:"fonts"`
}

// FontConfig selects where fonts are looked up before the system directories.
type FontConfig struct {
	Dir    string `toml:"dir" comment:"extra directory searched for <family>[-Bold|-Italic].ttf"`
	Family string `toml:"family" comment:"font family requested by every scene"`
}

// Default returns the configuration used when no file is given.
func Default() FileConfig {
	return FileConfig{
		OutputRoot: DefaultOutputRoot,
		Parallel:   1,
		Scenes:     []string{},
		Fonts:      FontConfig{Family: scene.DefaultFamily},
	}
}

// LoadFile reads a TOML configuration. Fields missing from the file keep
// their Default values; unknown fields are an error.
func LoadFile(path string) (FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses a TOML configuration from r on top of Default.
func Decode(r io.Reader) (FileConfig, error) {
	cfg := Default()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return FileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Encode renders cfg as TOML with field comments.
func (c FileConfig) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Resolve turns the file form into a runnable Config. Scene names are looked
// up in the catalog and keep the order they are listed in; an unknown name
// fails with ErrUnknownScene.
func (c FileConfig) Resolve() (Config, error) {
	cfg := Config{
		OutputRoot: c.OutputRoot,
		Parallel:   c.Parallel,
		Family:     c.Fonts.Family,
	}
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = DefaultOutputRoot
	}

	if len(c.Scenes) == 0 {
		cfg.Scenes = scene.Catalog()
	} else {
		seen := make(map[string]bool, len(c.Scenes))
		for _, name := range c.Scenes {
			if seen[name] {
				continue
			}
			seen[name] = true
			s, ok := scene.Find(name)
			if !ok {
				return Config{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownScene, name, scene.Names())
			}
			cfg.Scenes = append(cfg.Scenes, s)
		}
	}

	var dirs []string
	if c.Fonts.Dir != "" {
		dirs = append(dirs, c.Fonts.Dir)
	}
	cfg.Fonts = fonts.NewDefault(dirs...)
	return cfg, nil
}
