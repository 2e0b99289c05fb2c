package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/handiism/ostep-downloader/internal/model"
)

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "ostep-downloader"

// Client wraps HTTP operations used by the downloader.
//
// Client provides:
//   - A configured User-Agent header
//   - Optional timeout handling (none by default)
//   - Fetching a URL verbatim into a file, with classified failures
//
// Example usage:
//
//	client := NewClient()
//
//	// Save the index page
//	err := client.Fetch(ctx, "http://pages.cs.wisc.edu/~remzi/OSTEP/", "pdf/data.html", nil)
//	if errors.Is(err, model.ErrNetwork) {
//	    // remote side failed
//	}
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets a per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new HTTP client.
//
// Without options the client has no timeout, follows the default redirect
// policy and sends the DefaultUserAgent header.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{},
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProgressWriter wraps a writer to track download progress.
//
// Use this to monitor large downloads by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
//
// Example:
//
//	pw := &ProgressWriter{
//	    Writer: file,
//	    Total:  contentLength,
//	    OnUpdate: func(written, total int64) {
//	        fmt.Printf("%d / %d bytes\n", written, total)
//	    },
//	}
//	io.Copy(pw, response.Body)
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Fetch retrieves url and writes the full response body to destPath.
//
// The destination is created (or truncated) before the request is sent, so
// every call produces exactly one file even when the request fails. Nothing is
// cleaned up on failure: a transfer that breaks mid-way leaves the partial
// file on disk.
//
// Returned errors are *model.Failure values:
//   - LocalIOFailure when the file cannot be created or written
//   - NetworkFailure for request errors, non-200 statuses and body read errors
//
// onProgress may be nil.
func (c *Client) Fetch(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error {
	file, err := os.Create(destPath)
	if err != nil {
		return model.NewLocalIOFailure("create", destPath, err)
	}
	defer file.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.NewNetworkFailure("request", url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.NewNetworkFailure("get", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.NewNetworkFailure("get", url, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status))
	}

	dst := &writeTracker{w: file}
	var writer io.Writer = dst
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   dst,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		if dst.err != nil {
			return model.NewLocalIOFailure("write", destPath, err)
		}
		return model.NewNetworkFailure("read", url, err)
	}

	if err := file.Close(); err != nil {
		return model.NewLocalIOFailure("close", destPath, err)
	}
	return nil
}

// writeTracker remembers the first write error so a failed copy can be
// attributed to the local side or the remote side.
type writeTracker struct {
	w   io.Writer
	err error
}

func (t *writeTracker) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if err != nil && t.err == nil {
		t.err = err
	}
	return n, err
}
