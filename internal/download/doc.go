// Package download provides the orchestration logic for fetching every
// document listed on an index page.
//
// # Manager
//
// The Manager coordinates the entire run:
//
//  1. Reset the destination directory
//  2. Fetch the index page into it
//  3. Extract document descriptors from the index
//  4. Download documents concurrently
//  5. Report the totals
//
// Steps 1-3 run sequentially and any failure there is fatal. Step 4 isolates
// failures per document.
//
// # Basic Usage
//
//	manager := download.NewManager(settings, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	result := manager.StartDownloads(ctx)
//	fmt.Println(result) // Finished downloading 50 objects in 3.2s, 49 success, 1 failed
//
// # Concurrency
//
// Documents are processed by a fixed-size pool of settings.Workers()
// goroutines. The only shared state is a set of atomic counters. No retries
// are attempted.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message  string
//	    Level    ProgressLevel // Info, Verbose, Warning, Error, Success
//	    Document *model.Document
//	    Err      error
//	}
//
// The callback is invoked from worker goroutines.
package download
