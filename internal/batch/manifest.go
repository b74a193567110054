package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Job is one independent unit of batch work: render modelPath's scene
// and write the result to outputPath.
type Job struct {
	Name       string
	ModelPath  string
	OutputPath string
}

// DiscoverJobs walks dir for .obj files and builds one Job per file,
// writing its output under outDir mirroring the relative path with a
// .webp extension.
func DiscoverJobs(dir, outDir string) ([]Job, error) {
	var jobs []Job
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.ToLower(filepath.Ext(path)) != ".obj" {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(rel, filepath.Ext(rel))
		jobs = append(jobs, Job{
			Name:       name,
			ModelPath:  path,
			OutputPath: filepath.Join(outDir, name+".webp"),
		})
		return nil
	})
	return jobs, err
}

// ManifestEntry is one row of the batch output manifest.
type ManifestEntry struct {
	Name   string `json:"name"`
	Model  string `json:"model"`
	Output string `json:"output"`
}

// WriteManifest writes manifest.json listing every job's source and
// output path, grounded on the teacher's WriteManifest.
func WriteManifest(path string, jobs []Job) error {
	entries := make([]ManifestEntry, len(jobs))
	for i, j := range jobs {
		entries[i] = ManifestEntry{Name: j.Name, Model: j.ModelPath, Output: j.OutputPath}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
