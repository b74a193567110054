package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/drsaluml/gorasterizer/internal/config"
	"github.com/drsaluml/gorasterizer/internal/texture"
)

// Result holds the outcome of rendering one Job.
type Result struct {
	Name    string
	Success bool
	Error   string
}

// Run renders every job through a worker pool sized cfg.Workers. Each job
// gets its own texture Cache, since batch jobs commonly live in separate
// scene directories and a cache's Resolver is bound to one directory.
// Grounded on the teacher's channel+WaitGroup+atomic-counter pool with a
// ticker-based progress line.
func Run(cfg config.Config, jobs []Job) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, float64(p)/elapsed)
				}
			}
		}
	}()

	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup
	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = renderJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func renderJob(cfg config.Config, job Job) Result {
	jobCfg := cfg
	if jobCfg.TextureDir == "" {
		jobCfg.TextureDir = filepath.Dir(job.ModelPath)
	}
	cache := texture.NewCache(texture.NewDirResolver(jobCfg.TextureDir))
	if err := RenderScene(jobCfg, job.ModelPath, job.OutputPath, cache); err != nil {
		return Result{Name: job.Name, Error: err.Error()}
	}
	return Result{Name: job.Name, Success: true}
}
