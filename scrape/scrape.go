// Package scrape orchestrates the extraction pipeline: fetching product
// pages, running the extraction engine, and persisting the resulting
// records.
package scrape

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/emontes/prodex"
	"golang.org/x/sync/errgroup"
)

// Scraper runs the fetch → extract → persist pipeline over product URLs.
// Products and Writer are both optional; a Scraper with neither only
// extracts.
type Scraper struct {
	Fetcher     prodex.Fetcher
	Extractor   prodex.Extractor
	Products    prodex.ProductService
	Writer      prodex.RecordWriter
	Concurrency int
	RetryDelays []time.Duration
}

// Result holds the outcome of a scrape operation.
type Result struct {
	Saved  int
	Failed int
}

// ProgressEvent reports progress during a scrape operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// scrapeResult holds the outcome of processing a single URL.
type scrapeResult struct {
	position int
	url      string
	record   *prodex.Record
	err      error
}

// ScrapeAll processes every URL and persists the extracted records.
// Pages are independent: each URL is fetched and extracted on its own
// worker, and a failure on one URL never aborts the rest. The progress
// callback, if provided, receives events as scraping proceeds.
func (s *Scraper) ScrapeAll(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if len(urls) == 0 {
		return &Result{}, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	resultCh := make(chan scrapeResult, len(urls))

	var completed atomic.Int64
	total := len(urls)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, url := range urls {
			i, url := i, url
			g.Go(func() error {
				result := s.processURL(gctx, i, url)
				resultCh <- result
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order
	results := make([]scrapeResult, len(urls))
	var failedCount int
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if result.err != nil {
			failedCount++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					URL:       result.url,
					Error:     result.err,
				})
			}
		} else if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
			})
		}
	}

	// Persist records sequentially; SQLite allows one writer at a time.
	var savedCount int
	for _, result := range results {
		if result.err != nil {
			continue
		}
		if err := s.persist(ctx, result.record); err != nil {
			failedCount++
			continue
		}
		savedCount++
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return &Result{
		Saved:  savedCount,
		Failed: failedCount,
	}, nil
}

// ScrapeOne runs the pipeline for a single URL and returns the record.
func (s *Scraper) ScrapeOne(ctx context.Context, url string) (*prodex.Record, error) {
	result := s.processURL(ctx, 0, url)
	if result.err != nil {
		return nil, result.err
	}
	if err := s.persist(ctx, result.record); err != nil {
		return nil, err
	}
	return result.record, nil
}

// processURL fetches and extracts a single URL.
func (s *Scraper) processURL(ctx context.Context, position int, url string) scrapeResult {
	result := scrapeResult{
		position: position,
		url:      url,
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return s.Fetcher.Fetch(ctx, url)
	}
	html, err := FetchWithRetryDelays(ctx, url, fetchFn, nil, delays)
	if err != nil {
		result.err = err
		return result
	}

	record, err := s.Extractor.Extract(html, url)
	if err != nil {
		result.err = err
		return result
	}

	result.record = record
	return result
}

// persist stores a record via the configured sinks.
func (s *Scraper) persist(ctx context.Context, rec *prodex.Record) error {
	if s.Products != nil {
		if err := s.Products.CreateProduct(ctx, rec); err != nil {
			return err
		}
	}
	if s.Writer != nil {
		if _, err := s.Writer.WriteRecord(ctx, rec, ""); err != nil {
			return err
		}
	}
	return nil
}
