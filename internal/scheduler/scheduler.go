// Package scheduler removes stale upload files left behind when a request
// could not clean up after itself.
package scheduler

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler wraps robfig/cron and runs the upload sweep.
type Scheduler struct {
	cron      *cron.Cron
	spec      string
	dirs      []string
	retention time.Duration
}

func New(spec string, retention time.Duration, dirs ...string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cron.DefaultLogger)),
		spec:      spec,
		dirs:      dirs,
		retention: retention,
	}
}

// Start registers the sweep and starts the cron loop.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.run)
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}
	s.cron.Start()
	log.Printf("[scheduler] Cron started, spec: %s", s.spec)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("[scheduler] Cron stopped")
}

func (s *Scheduler) run() {
	removed := 0
	for _, dir := range s.dirs {
		n, err := Sweep(dir, s.retention, time.Now())
		if err != nil {
			log.Printf("[scheduler] sweep %s: %v", dir, err)
		}
		removed += n
	}
	if removed > 0 {
		log.Printf("[scheduler] removed %d stale upload(s)", removed)
	}
}

// Sweep deletes regular files directly inside dir whose modification time is
// older than retention. Subdirectories are left alone.
func Sweep(dir string, retention time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-retention)
	removed := 0
	var errs []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
