package dump

import (
	"encoding/xml"
	"errors"
	"io"

	"github.com/fwojciec/filmoscope"
)

// Compile-time interface verification.
var _ filmoscope.PageSource = (*Reader)(nil)

// Reader streams pages out of a decompressed dump using a pull XML decoder.
// It yields every page exactly once, in document order, and never buffers
// more than one page.
type Reader struct {
	dec  *xml.Decoder
	page *filmoscope.Page
	err  error
}

// NewReader creates a Reader over a decompressed dump stream.
func NewReader(r io.Reader) *Reader {
	return &Reader{dec: xml.NewDecoder(r)}
}

// Scan advances to the next page. It returns false at end of stream or on
// the first decode error; Err distinguishes the two.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	page, err := r.next()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			r.err = err
		}
		r.page = nil
		return false
	}
	r.page = page
	return true
}

// Page returns the page read by the last successful Scan.
func (r *Reader) Page() *filmoscope.Page { return r.page }

// Err returns the first error encountered while decoding, if any.
func (r *Reader) Err() error { return r.err }

// next reads tokens until one complete <page> has been consumed. Within a
// page, the first <title> and the first <text> (the current revision) win;
// any others are skipped.
func (r *Reader) next() (*filmoscope.Page, error) {
	var page *filmoscope.Page
	for {
		tok, err := r.dec.Token()
		if err != nil {
			return nil, err
		}
		switch el := tok.(type) {
		case xml.StartElement:
			switch el.Name.Local {
			case "page":
				page = &filmoscope.Page{}
			case "title":
				if page != nil && page.Title == "" {
					var s string
					if err := r.dec.DecodeElement(&s, &el); err != nil {
						return nil, err
					}
					page.Title = s
				}
			case "text":
				if page != nil && page.Text == "" {
					var s string
					if err := r.dec.DecodeElement(&s, &el); err != nil {
						return nil, err
					}
					page.Text = s
				}
			}
		case xml.EndElement:
			if el.Name.Local == "page" && page != nil {
				return page, nil
			}
		}
	}
}
