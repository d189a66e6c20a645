// storeshots - Store listing image generation.
//
// Usage:
//
//	storeshots [-config <file>] [-o <dir>] [-parallel n] [-v]
//	storeshots init [-config <file>]
//	storeshots list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/xob0t/storeshots/pkg/palette"
	"github.com/xob0t/storeshots/pkg/pipeline"
	"github.com/xob0t/storeshots/pkg/scene"
)

func main() {
	args := os.Args[1:]
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}

	var err error
	switch cmd {
	case "init":
		err = runInit(args[1:])
	case "list":
		fmt.Print(scene.Describe(scene.Catalog()))
		fmt.Println()
		fmt.Print(scene.DescribePalette(palette.Default))
	case "help", "-h", "--help":
		printUsage()
	default:
		// Default: render mode (all flags on root).
		err = run(args)
	}
	if err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("storeshots", flag.ExitOnError)

	var (
		configPath string
		output     string
		parallel   int
		only       string
		verbose    bool
	)

	fs.StringVar(&configPath, "config", "", "TOML configuration file (optional)")
	fs.StringVar(&output, "o", "", "Output directory (overrides output_root)")
	fs.StringVar(&output, "output", "", "Output directory (overrides output_root)")
	fs.IntVar(&parallel, "parallel", 0, "Scenes rendered at once (overrides parallel)")
	fs.StringVar(&only, "scenes", "", "Comma-separated scene names (overrides scenes)")
	fs.BoolVar(&verbose, "v", false, "Verbose logging")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	fc := pipeline.Default()
	if configPath != "" {
		var err error
		if fc, err = pipeline.LoadFile(configPath); err != nil {
			return err
		}
	}
	if output != "" {
		fc.OutputRoot = output
	}
	if parallel > 0 {
		fc.Parallel = parallel
	}
	if only != "" {
		fc.Scenes = fc.Scenes[:0]
		for _, name := range strings.Split(only, ",") {
			if name = strings.TrimSpace(name); name != "" {
				fc.Scenes = append(fc.Scenes, name)
			}
		}
	}

	cfg, err := fc.Resolve()
	if err != nil {
		return err
	}
	cfg.Logger = log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Rendering %d scene(s) into %s\n", len(cfg.Scenes), cfg.OutputRoot)
	rep, err := pipeline.Run(ctx, cfg)
	if err != nil {
		return err
	}
	rep.Print(os.Stdout)

	if n := len(rep.Failed()); n > 0 {
		return errors.Join(fmt.Errorf("%d scene(s) failed", n), rep.Err())
	}
	return nil
}

func runInit(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	var out string
	fs.StringVar(&out, "config", "storeshots.toml", "Output path for the sample configuration")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := pipeline.Default().Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Printf("Created: %s\n", out)
	fmt.Printf("Run: storeshots -config %s\n", out)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`storeshots - Store Listing Image Generation (Pure Go)

USAGE:
    storeshots [options]
    storeshots init [-config <file>]
    storeshots list

RENDER:
    -config <file>         TOML configuration (see 'storeshots init')
    -o, -output <dir>      Output directory (default: assets)
    -parallel <n>          Scenes rendered at once (default: 1)
    -scenes <a,b,...>      Render only these scenes
    -v                     Verbose logging

INIT:
    storeshots init [-config storeshots.toml]   Write a sample configuration

LIST:
    storeshots list                             Print the scene catalog and palette

EXAMPLES:
    storeshots
    storeshots -o build/assets -parallel 4
    storeshots -scenes icon,feature
    storeshots init && storeshots -config storeshots.toml
`)
}
