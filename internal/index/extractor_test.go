package index

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/ostep-downloader/internal/model"
)

func TestExtractor_ExtractLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantOK  bool
		wantDoc model.Document
	}{
		{
			name:    "link with label",
			line:    `<td><small>3</small> <a href=os/intro.pdf>Dialogue</a></td>`,
			wantOK:  true,
			wantDoc: model.Document{Label: "3", Name: "os/intro.pdf"},
		},
		{
			name:    "link without label",
			line:    `<a href=os/intro.pdf>Dialogue</a>`,
			wantOK:  true,
			wantDoc: model.Document{Name: "os/intro.pdf"},
		},
		{
			name:    "label tag malformed",
			line:    `<small>x3</small> href=cpu-intro.pdf`,
			wantOK:  true,
			wantDoc: model.Document{Name: "cpu-intro.pdf"},
		},
		{
			name:   "label without link",
			line:   `<small>7</small> Virtualization`,
			wantOK: false,
		},
		{
			name:   "link to other extension",
			line:   `<a href=book.html>Book</a>`,
			wantOK: false,
		},
		{
			name:   "empty line",
			line:   ``,
			wantOK: false,
		},
	}

	ex := NewExtractor()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, ok := ex.ExtractLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ExtractLine() ok = %v, want %v", ok, tt.wantOK)
			}
			if doc != tt.wantDoc {
				t.Errorf("ExtractLine() = %+v, want %+v", doc, tt.wantDoc)
			}
		})
	}
}

func TestExtractor_Extract_PreservesLineOrder(t *testing.T) {
	page := strings.Join([]string{
		`<html><body><table>`,
		`<tr><td><small>1</small> <a href=dialogue-threedays.pdf>Dialogue</a></td></tr>`,
		`<tr><td>Virtualization</td></tr>`,
		`<tr><td><small>2</small> <a href=intro.pdf>Introduction</a></td></tr>`,
		`<tr><td><a href=preface.pdf>Preface</a></td></tr>`,
		`<tr><td><small>4</small> <a href=cpu-intro.pdf>Processes</a></td></tr>`,
		`</table></body></html>`,
	}, "\n")

	docs, err := NewExtractor().Extract(strings.NewReader(page))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []model.Document{
		{Label: "1", Name: "dialogue-threedays.pdf"},
		{Label: "2", Name: "intro.pdf"},
		{Name: "preface.pdf"},
		{Label: "4", Name: "cpu-intro.pdf"},
	}
	if len(docs) != len(want) {
		t.Fatalf("Extract() returned %d documents, want %d: %+v", len(docs), len(want), docs)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("docs[%d] = %+v, want %+v", i, docs[i], want[i])
		}
	}
}

func TestExtractor_Extract_NoLinks(t *testing.T) {
	docs, err := NewExtractor().Extract(strings.NewReader("<html>\n<p>nothing here</p>\n</html>\n"))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("expected no documents, got %+v", docs)
	}
}

func TestExtractor_Extract_InvalidUTF8(t *testing.T) {
	input := "href=ok.pdf\n\xff\xfe href=bad.pdf\n"

	_, err := NewExtractor().Extract(strings.NewReader(input))
	if !errors.Is(err, ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}
}

func TestExtractor_Extract_LongLine(t *testing.T) {
	input := "<small>1</small> href=a.pdf\n" +
		strings.Repeat("x", 2<<20) + "\n" +
		"<small>2</small> href=b.pdf\n"

	docs, err := NewExtractor().Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []model.Document{
		{Label: "1", Name: "a.pdf"},
		{Label: "2", Name: "b.pdf"},
	}
	if len(docs) != len(want) {
		t.Fatalf("Extract() returned %d documents, want %d: %+v", len(docs), len(want), docs)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("docs[%d] = %+v, want %+v", i, docs[i], want[i])
		}
	}
}

func TestExtractor_Extract_LongLineWithLink(t *testing.T) {
	input := "<small>7</small> " + strings.Repeat("y", 2<<20) + " href=big.pdf"

	docs, err := NewExtractor().Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(docs) != 1 || docs[0].Label != "7" {
		t.Fatalf("Extract() = %+v, want one document labelled 7", docs)
	}
	if !strings.HasSuffix(docs[0].Name, "big.pdf") {
		t.Errorf("Name = %q, want suffix big.pdf", docs[0].Name)
	}
}

func TestExtractor_Extract_LineEndings(t *testing.T) {
	input := "<small>1</small> href=a.pdf\r\nhref=b.pdf"

	docs, err := NewExtractor().Extract(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	want := []model.Document{
		{Label: "1", Name: "a.pdf"},
		{Name: "b.pdf"},
	}
	if len(docs) != len(want) {
		t.Fatalf("Extract() = %+v, want %+v", docs, want)
	}
	for i := range want {
		if docs[i] != want[i] {
			t.Errorf("docs[%d] = %+v, want %+v", i, docs[i], want[i])
		}
	}
}

func TestExtractor_ExtractFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.html")
	if err := os.WriteFile(path, []byte("<small>3</small> ... href=os/intro.pdf\n"), 0644); err != nil {
		t.Fatal(err)
	}

	docs, err := NewExtractor().ExtractFile(path)
	if err != nil {
		t.Fatalf("ExtractFile() error = %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if got := docs[0].DisplayName(); got != "3.os/intro.pdf" {
		t.Errorf("DisplayName() = %q, want %q", got, "3.os/intro.pdf")
	}
}

func TestExtractor_ExtractFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewExtractor().ExtractFile(filepath.Join(dir, "missing.html"))
	if !errors.Is(err, model.ErrLocalIO) {
		t.Errorf("missing file: expected local I/O failure, got %v", err)
	}

	bad := filepath.Join(dir, "bad.html")
	if err := os.WriteFile(bad, []byte("\xff\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = NewExtractor().ExtractFile(bad)
	if !errors.Is(err, model.ErrLocalIO) || !errors.Is(err, ErrInvalidText) {
		t.Errorf("invalid text: expected local I/O failure wrapping ErrInvalidText, got %v", err)
	}
}

func TestNewExtractorWithPatterns(t *testing.T) {
	ex, err := NewExtractorWithPatterns(`href="(.+\.epub)"`, `<b>(\d+)</b>`)
	if err != nil {
		t.Fatalf("NewExtractorWithPatterns() error = %v", err)
	}

	doc, ok := ex.ExtractLine(`<b>12</b> <a href="book/ch12.epub">`)
	if !ok {
		t.Fatal("expected a match")
	}
	if doc.Label != "12" || doc.Name != "book/ch12.epub" {
		t.Errorf("ExtractLine() = %+v", doc)
	}

	if _, err := NewExtractorWithPatterns(`href=(`, `<b>(\d+)</b>`); err == nil {
		t.Error("expected error for invalid link pattern")
	}
	if _, err := NewExtractorWithPatterns(`href=.+pdf`, `<b>(\d+)</b>`); err == nil {
		t.Error("expected error for link pattern without capture group")
	}
	if _, err := NewExtractorWithPatterns(`href=(.+pdf)`, `<b>\d+</b>`); err == nil {
		t.Error("expected error for label pattern without capture group")
	}
}
