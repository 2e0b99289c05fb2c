// Package http provides the HTTP client used to fetch the index page and
// every listed document.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Streaming a response body verbatim into a local file
//   - Classifying failures as network or local I/O (see model.Failure)
//   - Optional timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Save a document, no progress callback
//	err := client.Fetch(ctx, "http://pages.cs.wisc.edu/~remzi/OSTEP/intro.pdf", "pdf/1.intro.pdf", nil)
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
