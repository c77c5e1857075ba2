package mock

import "github.com/fwojciec/filmoscope"

var _ filmoscope.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of filmoscope.PageSource backed by a
// slice of pages.
type PageSource struct {
	Pages   []*filmoscope.Page
	ScanErr error

	pos int
}

func (s *PageSource) Scan() bool {
	if s.pos >= len(s.Pages) {
		return false
	}
	s.pos++
	return true
}

func (s *PageSource) Page() *filmoscope.Page {
	return s.Pages[s.pos-1]
}

func (s *PageSource) Err() error {
	if s.pos >= len(s.Pages) {
		return s.ScanErr
	}
	return nil
}
