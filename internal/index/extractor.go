package index

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/handiism/ostep-downloader/internal/model"
)

// Default patterns for the OSTEP index page.
const (
	// DefaultLinkPattern captures a link target ending in "pdf".
	DefaultLinkPattern = `href=(.+pdf)`

	// DefaultLabelPattern captures a chapter number like <small>3</small>.
	DefaultLabelPattern = `<small>(\d+)</small>`
)

// ErrInvalidText is returned for an index line that is not valid UTF-8.
var ErrInvalidText = errors.New("line is not valid UTF-8 text")

// Extractor finds document descriptors in a fetched index page.
//
// The index is scanned one line at a time; it is not parsed as markup. Each
// line is matched against two independent patterns:
//
//  1. the link pattern, whose first capture group becomes Document.Name
//  2. the label pattern, whose first capture group becomes Document.Label
//
// A Document is emitted only for lines where the link pattern matches. The
// label is attached when the label pattern matches the same line.
//
// Example usage:
//
//	ex := NewExtractor()
//
//	docs, err := ex.ExtractFile("pdf/data.html")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, doc := range docs {
//	    fmt.Println(doc.DisplayName())
//	}
type Extractor struct {
	link  *regexp.Regexp
	label *regexp.Regexp
}

// NewExtractor creates an Extractor with the default OSTEP patterns.
func NewExtractor() *Extractor {
	return &Extractor{
		link:  regexp.MustCompile(DefaultLinkPattern),
		label: regexp.MustCompile(DefaultLabelPattern),
	}
}

// NewExtractorWithPatterns creates an Extractor from custom patterns.
//
// Both patterns must contain at least one capture group; the first group is
// used.
func NewExtractorWithPatterns(linkPattern, labelPattern string) (*Extractor, error) {
	link, err := compileWithGroup(linkPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid link pattern: %w", err)
	}
	label, err := compileWithGroup(labelPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid label pattern: %w", err)
	}
	return &Extractor{link: link, label: label}, nil
}

func compileWithGroup(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("pattern %q has no capture group", pattern)
	}
	return re, nil
}

// ExtractFile opens the index file at path and extracts its documents.
//
// Every error is a *model.Failure of kind LocalIOFailure.
func (e *Extractor) ExtractFile(path string) ([]model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, model.NewLocalIOFailure("open", path, err)
	}
	defer f.Close()

	docs, err := e.Extract(f)
	if err != nil {
		return nil, model.NewLocalIOFailure("read", path, err)
	}
	return docs, nil
}

// Extract scans r line by line and returns the documents in line order.
//
// Lines may be of any length. Trailing "\n" and "\r\n" are stripped, and a
// final line without a newline is still matched. It fails on a read error or
// when a line is not valid UTF-8.
func (e *Extractor) Extract(r io.Reader) ([]model.Document, error) {
	reader := bufio.NewReader(r)

	var docs []model.Document
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("after line %d: %w", lineNo, err)
		}
		if line == "" && err == io.EOF {
			break
		}

		lineNo++
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrInvalidText)
		}
		if doc, ok := e.ExtractLine(line); ok {
			docs = append(docs, doc)
		}

		if err == io.EOF {
			break
		}
	}

	return docs, nil
}

// ExtractLine matches a single line. ok is false when the line has no link.
func (e *Extractor) ExtractLine(line string) (doc model.Document, ok bool) {
	m := e.link.FindStringSubmatch(line)
	if m == nil {
		return model.Document{}, false
	}

	var label string
	if lm := e.label.FindStringSubmatch(line); lm != nil {
		label = lm[1]
	}
	return model.NewDocument(label, m[1]), true
}
