// Package index extracts document descriptors from a fetched index page.
//
// # Line-Oriented Matching
//
// The OSTEP index puts one candidate link per line, so the Extractor matches
// patterns line by line instead of parsing HTML. This only holds for that
// known layout; it is not a general markup parser.
//
// # Basic Usage
//
//	ex := index.NewExtractor()
//	docs, err := ex.ExtractFile("pdf/data.html")
//
// A line such as
//
//	<td><small>3</small> <a href=os/intro.pdf>Dialogue</a></td>
//
// yields Document{Label: "3", Name: "os/intro.pdf"}.
//
// # Custom Patterns
//
//	ex, err := index.NewExtractorWithPatterns(`href="(.+\.epub)"`, `<b>(\d+)</b>`)
package index
