package download

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/handiism/ostep-downloader/internal/config"
	"github.com/handiism/ostep-downloader/internal/http"
	"github.com/handiism/ostep-downloader/internal/index"
	ioutils "github.com/handiism/ostep-downloader/internal/io"
	"github.com/handiism/ostep-downloader/internal/model"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a download progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Document is set for per-item events.
	Document *model.Document

	// Err is set for failure events.
	Err error
}

// Result summarizes a finished run.
type Result struct {
	Total     int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
}

// String returns the summary line printed at the end of a run.
func (r Result) String() string {
	return fmt.Sprintf("Finished downloading %d objects in %s, %d success, %d failed",
		r.Total, r.Elapsed, r.Succeeded, r.Failed)
}

// Manager coordinates a run: directory setup, index fetch, extraction and
// the concurrent document downloads.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client

	documents []model.Document
	started   time.Time

	totalFiles    atomic.Int32
	succeeded     atomic.Int32
	failed        atomic.Int32
	receivedBytes atomic.Int64

	// onProgress is called from worker goroutines and must be safe for
	// concurrent use.
	onProgress func(ProgressEvent)
}

// NewManager creates a new download Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	return &Manager{
		settings: settings,
		httpClient: http.NewClient(
			http.WithTimeout(settings.RequestTimeout),
			http.WithUserAgent(settings.UserAgent),
		),
		onProgress: onProgress,
	}
}

// Initialize runs the sequential stages of a run: it resets the destination
// directory, fetches the index page into it and extracts the documents.
//
// Any error returned here is fatal for the run; no document has been
// attempted yet.
func (m *Manager) Initialize(ctx context.Context) error {
	if err := m.settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	extractor, err := index.NewExtractorWithPatterns(m.settings.LinkPattern, m.settings.LabelPattern)
	if err != nil {
		return err
	}

	if err := ioutils.ResetDir(m.settings.DestDir); err != nil {
		return fmt.Errorf("init failed: %w", err)
	}

	m.started = time.Now()

	indexPath := m.settings.IndexPath()
	m.progress(ProgressEvent{Message: "Begin to download index", Level: LevelInfo})
	if err := m.httpClient.Fetch(ctx, m.settings.BaseURL, indexPath, nil); err != nil {
		return fmt.Errorf("download index failed: %w", err)
	}
	m.progress(ProgressEvent{Message: "Finish downloading index", Level: LevelInfo})

	docs, err := extractor.ExtractFile(indexPath)
	if err != nil {
		return fmt.Errorf("extract documents failed: %w", err)
	}

	m.documents = docs
	m.totalFiles.Store(int32(len(docs)))
	m.progress(ProgressEvent{Message: fmt.Sprintf("Found %d documents", len(docs)), Level: LevelInfo})

	return nil
}

// StartDownloads downloads every document found by Initialize.
//
// Elapsed in the returned Result is measured from Initialize, so it includes
// the index fetch.
func (m *Manager) StartDownloads(ctx context.Context) Result {
	started := m.started
	if started.IsZero() {
		started = time.Now()
	}
	return m.download(ctx, m.documents, started)
}

// Run performs Initialize followed by StartDownloads.
func (m *Manager) Run(ctx context.Context) (Result, error) {
	if err := m.Initialize(ctx); err != nil {
		return Result{}, err
	}
	return m.StartDownloads(ctx), nil
}

// Download fetches every document into the destination directory using a
// fixed-size worker pool.
//
// Each document is attempted exactly once. A failed document is reported and
// counted, and never stops the others, so the returned Result always has
// Succeeded+Failed == Total. Counters and Elapsed cover this call only.
func (m *Manager) Download(ctx context.Context, docs []model.Document) Result {
	return m.download(ctx, docs, time.Now())
}

func (m *Manager) download(ctx context.Context, docs []model.Document, started time.Time) Result {
	m.totalFiles.Store(int32(len(docs)))
	m.succeeded.Store(0)
	m.failed.Store(0)
	m.receivedBytes.Store(0)

	var g errgroup.Group
	g.SetLimit(m.settings.Workers())

	for _, doc := range docs {
		g.Go(func() error {
			if err := m.downloadDocument(ctx, doc); err != nil {
				m.failed.Add(1)
				return nil // Continue with other documents
			}
			m.succeeded.Add(1)
			return nil
		})
	}

	g.Wait()

	return Result{
		Total:     len(docs),
		Succeeded: int(m.succeeded.Load()),
		Failed:    int(m.failed.Load()),
		Elapsed:   time.Since(started),
	}
}

// Documents returns a copy of the documents found by Initialize.
func (m *Manager) Documents() []model.Document {
	docs := make([]model.Document, len(m.documents))
	copy(docs, m.documents)
	return docs
}

// GetProgress returns current download progress.
func (m *Manager) GetProgress() (succeeded, failed, total int32, receivedBytes int64) {
	return m.succeeded.Load(), m.failed.Load(), m.totalFiles.Load(), m.receivedBytes.Load()
}

func (m *Manager) downloadDocument(ctx context.Context, doc model.Document) error {
	name := doc.DisplayName()
	dest := filepath.Join(m.settings.DestDir, name)

	m.progress(ProgressEvent{Message: fmt.Sprintf("Begin to download %s", name), Level: LevelInfo, Document: &doc})

	url := doc.SourceURL(m.settings.BaseURL)
	m.progress(ProgressEvent{Message: fmt.Sprintf("Fetching %s to %s", url, dest), Level: LevelVerbose, Document: &doc})

	var prev int64
	err := m.httpClient.Fetch(ctx, url, dest, func(written, total int64) {
		m.receivedBytes.Add(written - prev)
		prev = written
	})
	if err != nil {
		m.progress(ProgressEvent{
			Message:  fmt.Sprintf("Download %s failed, reason: %v", name, err),
			Level:    LevelError,
			Document: &doc,
			Err:      err,
		})
		return err
	}

	m.progress(ProgressEvent{Message: fmt.Sprintf("Download %s success", name), Level: LevelSuccess, Document: &doc})
	return nil
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
