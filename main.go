package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Icon sizes to generate.
var iconSizes = []int{16, 32, 48, 64, 128, 256, 512}

// Sizes duplicated into the Linux icon set.
var linuxSizes = []int{16, 32, 48, 64, 128, 256}

// Config holds the generator configuration.
type Config struct {
	SourcePath string // reserved for vector rasterization, currently unused
	OutputDir  string
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmsgprefix)
	log.SetPrefix("[ferrite-icons] ")

	source := flag.String("source", "", "source vector file (reserved; the placeholder glyph is always drawn)")
	output := flag.String("output", "", "output directory (default: the executable's directory)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Generate Ferrite application icons.\n\nUsage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := Config{SourcePath: *source, OutputDir: *output}
	if cfg.OutputDir == "" {
		cfg.OutputDir = defaultOutputDir()
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Icon generation failed: %v", err)
	}
}

// defaultOutputDir returns the directory of the running executable,
// or "." if it cannot be resolved.
func defaultOutputDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// run executes the full generation sequence: platform subdirectories,
// one PNG per size, the Windows ICO bundle, the Linux copies, and the
// closing summary. Reruns overwrite every output.
func run(cfg Config) error {
	if cfg.SourcePath != "" {
		log.Printf("Vector rasterization is not implemented, ignoring -source %s", cfg.SourcePath)
	}

	for _, sub := range []string{"windows", "macos", "linux"} {
		dir := filepath.Join(cfg.OutputDir, sub)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}

	var pngPaths []string
	for _, size := range iconSizes {
		path := filepath.Join(cfg.OutputDir, fmt.Sprintf("icon_%d.png", size))
		if err := writeIcon(size, path); err != nil {
			return err
		}
		fmt.Printf("Created: %s\n", path)
		pngPaths = append(pngPaths, path)
	}

	icoPath := filepath.Join(cfg.OutputDir, "windows", "app.ico")
	bundleWritten := true
	if err := writeBundle(pngPaths, icoPath); err != nil {
		if !errors.Is(err, errBundleNoInput) {
			return err
		}
		log.Printf("No PNG files found to create ICO, skipping %s", icoPath)
		bundleWritten = false
	} else {
		fmt.Printf("Created: %s\n", icoPath)
	}

	for _, size := range linuxSizes {
		src := filepath.Join(cfg.OutputDir, fmt.Sprintf("icon_%d.png", size))
		if _, err := os.Stat(src); err != nil {
			continue
		}
		dst := filepath.Join(cfg.OutputDir, "linux", fmt.Sprintf("ferrite_%d.png", size))
		if err := reencodePNG(src, dst, size); err != nil {
			return err
		}
		fmt.Printf("Created: %s\n", dst)
	}

	printSummary(cfg.OutputDir, icoPath, bundleWritten)
	return nil
}

// printSummary prints what was produced and the manual iconutil steps
// for macOS packaging, which this tool does not automate.
func printSummary(outputDir, icoPath string, bundleWritten bool) {
	fmt.Println()
	fmt.Println("=== Icon Generation Complete ===")
	fmt.Printf("PNG icons: %s\n", filepath.Join(outputDir, "icon_*.png"))
	if bundleWritten {
		fmt.Printf("Windows ICO: %s\n", icoPath)
	}
	fmt.Printf("Linux icons: %s\n", filepath.Join(outputDir, "linux", "ferrite_*.png"))
	fmt.Println()
	fmt.Println("For macOS .icns, use iconutil:")
	fmt.Println("  mkdir -p AppIcon.iconset")
	fmt.Println("  cp icon_16.png AppIcon.iconset/icon_16x16.png")
	fmt.Println("  cp icon_32.png AppIcon.iconset/icon_16x16@2x.png")
	fmt.Println("  # ... (see docs/branding.md for the full size table)")
	fmt.Println("  iconutil -c icns AppIcon.iconset")
}
