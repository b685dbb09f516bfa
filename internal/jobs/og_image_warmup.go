package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/faraday-ai/faraday-web/internal/ogimage"
	"github.com/faraday-ai/faraday-web/storage"
)

const (
	// MaxConcurrentOGRenders limits how many cards render simultaneously
	MaxConcurrentOGRenders = 5

	// OGFreshness is how long an existing card stays valid before re-render
	OGFreshness = 7 * 24 * time.Hour
)

// OGImageWarmup pre-renders the social sharing cards for every page so the
// first crawler hit never waits on image generation.
type OGImageWarmup struct {
	storage  *storage.Storage
	siteName string
	outDir   string
}

func NewOGImageWarmup(storage *storage.Storage, siteName, outDir string) *OGImageWarmup {
	return &OGImageWarmup{
		storage:  storage,
		siteName: siteName,
		outDir:   outDir,
	}
}

// Start begins the warmup in a background goroutine
func (j *OGImageWarmup) Start(ctx context.Context) {
	go j.Run(ctx)
}

type ogCard struct {
	filename string
	info     ogimage.PageInfo
}

// Run generates cards for the static pages and every service, returning when
// every render has finished. The CLI calls it directly; the server runs it
// through Start.
func (j *OGImageWarmup) Run(ctx context.Context) {
	slog.Info("starting OG image warmup")
	startTime := time.Now()

	cards := j.staticCards()

	services, err := j.storage.Queries.ListServices(ctx)
	if err != nil {
		slog.Error("failed to list services for OG warmup", "error", err)
	}
	for _, svc := range services {
		cards = append(cards, ogCard{
			filename: fmt.Sprintf("service-%s.png", svc.Slug),
			info: ogimage.PageInfo{
				Title:    svc.Name,
				Tagline:  svc.Tagline,
				SiteName: j.siteName,
			},
		})
	}

	if err := os.MkdirAll(j.outDir, 0755); err != nil {
		slog.Error("failed to create OG images directory", "error", err, "dir", j.outDir)
		return
	}

	sem := semaphore.NewWeighted(MaxConcurrentOGRenders)
	var wg sync.WaitGroup

	var renderedCount, skippedCount, errorCount int
	var mu sync.Mutex

	for _, card := range cards {
		wg.Add(1)

		go func(card ogCard) {
			defer wg.Done()

			if err := sem.Acquire(ctx, 1); err != nil {
				slog.Debug("context cancelled while waiting for render slot", "error", err)
				return
			}
			defer sem.Release(1)

			if ctx.Err() != nil {
				return
			}

			outPath := filepath.Join(j.outDir, card.filename)

			// Skip cards rendered recently
			if info, err := os.Stat(outPath); err == nil && time.Since(info.ModTime()) < OGFreshness {
				mu.Lock()
				skippedCount++
				mu.Unlock()
				return
			}

			if err := ogimage.GenerateOGImage(card.info, outPath); err != nil {
				slog.Debug("failed to render OG card", "error", err, "file", card.filename)
				mu.Lock()
				errorCount++
				mu.Unlock()
				return
			}

			mu.Lock()
			renderedCount++
			mu.Unlock()
		}(card)
	}

	wg.Wait()

	slog.Info("OG image warmup completed",
		"total_cards", len(cards),
		"rendered", renderedCount,
		"skipped", skippedCount,
		"errors", errorCount,
		"duration", time.Since(startTime),
	)
}

func (j *OGImageWarmup) staticCards() []ogCard {
	return []ogCard{
		{
			filename: "home.png",
			info: ogimage.PageInfo{
				Title:    "AI assistants for every classroom",
				Tagline:  "Teaching support, assessment help, and school operations in one place",
				SiteName: j.siteName,
			},
		},
		{
			filename: "pricing.png",
			info: ogimage.PageInfo{
				Title:    "Pricing",
				Tagline:  "Plans for teachers, schools, and districts",
				SiteName: j.siteName,
			},
		},
		{
			filename: "about.png",
			info: ogimage.PageInfo{
				Title:    "About Faraday AI",
				Tagline:  "Built by educators for educators",
				SiteName: j.siteName,
			},
		},
		{
			filename: "contact.png",
			info: ogimage.PageInfo{
				Title:    "Contact",
				Tagline:  "Talk to the Faraday AI team",
				SiteName: j.siteName,
			},
		},
	}
}
