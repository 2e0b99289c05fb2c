// Package model defines the core data structures used throughout
// the ostep-downloader application.
//
// # Document
//
// Document is the descriptor of one downloadable item found on the index page:
//
//	doc := model.NewDocument("3", "intro.pdf")
//	fmt.Println(doc.DisplayName())        // "3.intro.pdf"
//	fmt.Println(doc.SourceURL(baseURL))   // baseURL + "intro.pdf"
//
// # Failures
//
// Fetch and extraction errors are reported as *Failure values carrying a
// FailureKind: NetworkFailure or LocalIOFailure. Both kinds can be matched
// with errors.Is against ErrNetwork and ErrLocalIO.
package model
