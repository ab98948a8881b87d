// Package display writes item titles and paginated item bodies into the
// caller's fixed-size, NUL terminated buffers.
package display

import (
	"bytes"

	"github.com/zeebo/errs"
)

// Error is the class of rendering failures.
var Error = errs.Class("render")

var (
	// ErrNoData is returned for an item or page past the end. Callers stop
	// iterating when they see it.
	ErrNoData = Error.New("no data")

	// ErrUnknown is returned when an item exists but its value cannot be
	// produced.
	ErrUnknown = Error.New("unknown")
)

// Item is anything the display can step through one item and one page at a
// time.
type Item interface {
	NumItems() int
	RenderItem(item int, title, message []byte, page int) (pages int, err error)
}

// Title clears dst and writes label, truncated so that a terminating NUL
// always fits.
func Title(dst []byte, label string) {
	clear(dst)

	if len(dst) == 0 {
		return
	}

	copy(dst[:len(dst)-1], label)
}

// Message clears dst and writes page number page of content into it. Each
// page holds len(dst)-1 bytes. It returns the number of pages content needs;
// empty content still has one (empty) page.
func Message(dst []byte, content string, page int) (pages int, err error) {
	clear(dst)

	if len(dst) < 2 {
		return 0, ErrUnknown
	}

	chunk := len(dst) - 1

	pages = (len(content) + chunk - 1) / chunk
	if pages == 0 {
		pages = 1
	}

	if page < 0 || page >= pages {
		return pages, ErrNoData
	}

	start := page * chunk
	end := start + chunk
	if end > len(content) {
		end = len(content)
	}

	copy(dst, content[start:end])

	return pages, nil
}

// Text returns the NUL terminated string held in buf.
func Text(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}

	return string(buf)
}
