// Command rasterdemo drives the rasterizer core against an OBJ scene and
// writes the result as PNG or WebP. With -batch it renders every .obj
// under a directory concurrently and writes a manifest alongside the
// output.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/drsaluml/gorasterizer/internal/batch"
	"github.com/drsaluml/gorasterizer/internal/config"
	"github.com/drsaluml/gorasterizer/internal/texture"
)

func main() {
	var (
		configPath = flag.String("config", "", "JSON config file")
		model      = flag.String("model", "", "path to an OBJ scene")
		texDir     = flag.String("textures", "", "directory to resolve texture names against (default: model's directory)")
		output     = flag.String("out", "", "output image path (.png or .webp)")
		batchDir   = flag.String("batch", "", "directory of .obj scenes to render concurrently")
		width      = flag.Int("width", 0, "output width")
		height     = flag.Int("height", 0, "output height")
		workers    = flag.Int("workers", 0, "worker count for -batch")
		wireframe  = flag.Bool("wireframe", false, "draw triangle edges instead of shaded faces")
		backend    = flag.String("backend", "", "rasterization back-end: scanline or aabb")
		quality    = flag.Int("quality", 0, "WebP quality, 1-100 (not applied: .webp output is encoded with the encoder's default options)")
	)
	flag.Parse()

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rasterdemo: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	cfg.Resolve(config.Flags{
		ModelPath:  *model,
		TextureDir: *texDir,
		OutputPath: *output,
		BatchDir:   *batchDir,
		Width:      *width,
		Height:     *height,
		Workers:    *workers,
		Wireframe:  *wireframe,
		Backend:    *backend,
		Quality:    *quality,
	})

	if cfg.BatchDir != "" {
		runBatch(cfg)
		return
	}

	if cfg.ModelPath == "" {
		fmt.Fprintln(os.Stderr, "rasterdemo: -model or -batch is required")
		flag.Usage()
		os.Exit(2)
	}

	cache := texture.NewCache(texture.NewDirResolver(cfg.TextureDir))
	if err := batch.RenderScene(cfg, cfg.ModelPath, cfg.OutputPath, cache); err != nil {
		fmt.Fprintf(os.Stderr, "rasterdemo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", cfg.OutputPath)
}

func runBatch(cfg config.Config) {
	outDir := cfg.OutputPath
	if outDir == "" || outDir == "out.png" {
		outDir = "out"
	}

	jobs, err := batch.DiscoverJobs(cfg.BatchDir, outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rasterdemo: discover jobs: %v\n", err)
		os.Exit(1)
	}
	if len(jobs) == 0 {
		fmt.Fprintf(os.Stderr, "rasterdemo: no .obj scenes found under %s\n", cfg.BatchDir)
		os.Exit(1)
	}

	fmt.Printf("rendering %d scene(s) with %d worker(s)\n", len(jobs), cfg.Workers)
	results := batch.Run(cfg, jobs)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
			fmt.Fprintf(os.Stderr, "rasterdemo: %s: %s\n", r.Name, r.Error)
		}
	}
	fmt.Printf("done: %d ok, %d failed\n", len(results)-failed, failed)

	if err := batch.WriteManifest(filepath.Join(outDir, "manifest.json"), jobs); err != nil {
		fmt.Fprintf(os.Stderr, "rasterdemo: write manifest: %v\n", err)
	}
}
