package filmoscope

// Page is one raw article from the dump: the page title and the wikitext
// body of its current revision.
type Page struct {
	Title string
	Text  string
}

// PageSource yields pages from a dump in document order, exactly once,
// following the bufio.Scanner idiom: Scan advances to the next page and
// reports whether one is available; Page returns it; Err reports the first
// error encountered, if any, after Scan returns false.
type PageSource interface {
	Scan() bool
	Page() *Page
	Err() error
}
