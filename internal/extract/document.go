// Package extract turns raw resume documents into plain text. Extraction is
// a chain of progressively more expensive strategies: structured layout
// parsing, a lenient re-parse, then optical recognition. The first strategy
// that yields non-empty text wins; total failure is reported as an empty
// string, never an error.
package extract

import "os"

// Document is a raw input addressed either as an in-memory buffer or a
// filesystem path. The variant matters: optical recognition needs to
// rasterize pages from disk and is only reachable for path input.
type Document struct {
	data []byte
	path string
}

// FromBytes wraps an in-memory document.
func FromBytes(data []byte) Document {
	return Document{data: data}
}

// FromPath wraps a document on disk.
func FromPath(path string) Document {
	return Document{path: path}
}

// IsPath reports whether the document is addressed by filesystem path.
func (d Document) IsPath() bool { return d.path != "" }

// Path returns the filesystem path, or "" for buffer input.
func (d Document) Path() string { return d.path }

// Bytes returns the raw payload, reading from disk for path input.
func (d Document) Bytes() ([]byte, error) {
	if d.path != "" {
		return os.ReadFile(d.path)
	}
	return d.data, nil
}
