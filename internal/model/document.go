package model

// Document represents one downloadable document referenced by the index page.
//
// A Document is created only when a link was found on an index line. The
// Label is best-effort: it is taken from the same line when present and is
// empty otherwise.
//
// Example:
//
//	doc := Document{Label: "3", Name: "intro.pdf"}
//	doc.DisplayName()                          // "3.intro.pdf"
//	doc.SourceURL("http://example.com/book/")  // "http://example.com/book/intro.pdf"
type Document struct {
	// Label is the optional sequence label (e.g. a chapter number).
	// Empty string means no label was found on the line.
	Label string

	// Name is the link target relative to the base URL.
	Name string
}

// NewDocument creates a Document from the captured name and optional label.
func NewDocument(label, name string) Document {
	return Document{Label: label, Name: name}
}

// HasLabel returns true if a sequence label was found for this document.
func (d Document) HasLabel() bool {
	return d.Label != ""
}

// DisplayName returns the local file name for this document.
//
// The name is "<label>.<name>" when a label is present, and just the name
// otherwise.
func (d Document) DisplayName() string {
	if d.HasLabel() {
		return d.Label + "." + d.Name
	}
	return d.Name
}

// SourceURL returns the URL the document is downloaded from.
//
// The base URL and the relative name are concatenated as-is, so the base
// should end with a slash.
func (d Document) SourceURL(baseURL string) string {
	return baseURL + d.Name
}

// String implements fmt.Stringer.
func (d Document) String() string {
	return d.DisplayName()
}
