// Package dump reads French Wikipedia XML dumps: it selects a compressed
// source file on disk and streams (title, text) pages out of it one at a
// time, in document order, without loading the document into memory.
package dump

import (
	"compress/bzip2"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

// DefaultStem is the dump file name published by dumps.wikimedia.org for the
// French Wikipedia, without its compression extension.
const DefaultStem = "frwiki-latest-pages-articles.xml"

// OpenSource opens the compressed dump for the given stem, preferring zstd
// (stem.zst or stem.zstd) over bzip2 (stem.bz2). A missing source file is a
// fatal configuration error surfaced before any processing begins.
func OpenSource(stem string) (io.ReadCloser, error) {
	for _, ext := range []string{".zst", ".zstd"} {
		if _, err := os.Stat(stem + ext); err == nil {
			return openZstd(stem + ext)
		}
	}
	if _, err := os.Stat(stem + ".bz2"); err == nil {
		return openBzip2(stem + ".bz2")
	}
	return nil, fmt.Errorf("dump file not found for %q (tried .zst, .zstd, .bz2); download from https://dumps.wikimedia.org/frwiki/latest/", stem)
}

func openZstd(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to open zstd stream: %w", err)
	}
	return &zstdSource{dec: dec, file: f}, nil
}

func openBzip2(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	return &bzip2Source{r: bzip2.NewReader(f), file: f}, nil
}

type zstdSource struct {
	dec  *zstd.Decoder
	file *os.File
}

func (s *zstdSource) Read(p []byte) (int, error) { return s.dec.Read(p) }

func (s *zstdSource) Close() error {
	s.dec.Close()
	return s.file.Close()
}

type bzip2Source struct {
	r    io.Reader
	file *os.File
}

func (s *bzip2Source) Read(p []byte) (int, error) { return s.r.Read(p) }

func (s *bzip2Source) Close() error { return s.file.Close() }
