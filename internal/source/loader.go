package source

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/mrxiaozhuox/karaty/internal/config"
)

// GlobalData aggregates the process configuration with the page contents
// loaded from the remote source. It is built once per load cycle.
type GlobalData struct {
	Config *config.Config
	Pages  map[string]string
}

// ProgressFunc reports loading progress: done pages out of total, and the
// name of the page just finished. It is invoked from the fetch goroutines,
// so implementations must be safe for concurrent use (or wrap a
// progress.Reporter with progress.Callback, which serializes calls).
type ProgressFunc func(done, total int, name string)

// matchesAny checks if a page name matches any of the given glob patterns.
func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.PathMatch(filepath.ToSlash(pattern), name); err == nil && matched {
			return true
		}
	}
	return false
}

// wanted applies the config's include/exclude patterns to a listed page
// name. Empty include means everything; exclude wins over include.
func wanted(cfg *config.Config, name string) bool {
	if len(cfg.Include) > 0 && !matchesAny(name, cfg.Include) {
		return false
	}
	return !matchesAny(name, cfg.Exclude)
}

// LoadPages enumerates the files under the "pages" sub-path of the content
// source and fetches each one's content concurrently. Pages whose fetch
// fails are dropped from the result; a partial mapping is an expected
// outcome, never an error. The Config is only read, so sharing it across
// the fan-out is safe; the result map is the single written structure and
// is guarded by a mutex.
func (f *Fetcher) LoadPages(ctx context.Context, cfg *config.Config, onProgress ProgressFunc) map[string]string {
	pages := make(map[string]string)

	var names []string
	for _, name := range f.ListFiles(ctx, cfg, "pages") {
		if wanted(cfg, name) {
			names = append(names, name)
		}
	}

	total := len(names)
	if total == 0 {
		return pages
	}

	concurrency := cfg.MaxConcurrency
	if concurrency < 1 {
		concurrency = 1
	}

	sem := make(chan struct{}, concurrency)
	var mu sync.Mutex
	var done int64

	var wg sync.WaitGroup
	for _, name := range names {
		sem <- struct{}{}
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			defer func() { <-sem }()

			content, err := f.FetchText(ctx, cfg, "/pages/"+name)
			if err == nil {
				mu.Lock()
				pages[name] = content
				mu.Unlock()
			}

			count := atomic.AddInt64(&done, 1)
			if onProgress != nil {
				onProgress(int(count), total, name)
			}
		}(name)
	}
	wg.Wait()

	return pages
}

// Load runs a full load cycle and wraps the result with the Config.
func (f *Fetcher) Load(ctx context.Context, cfg *config.Config) *GlobalData {
	return &GlobalData{
		Config: cfg,
		Pages:  f.LoadPages(ctx, cfg, nil),
	}
}
