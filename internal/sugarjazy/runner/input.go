package runner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

var gzipMagic = []byte{0x1f, 0x8b}

// inputFile is an opened log file, transparently decompressed when gzipped.
type inputFile struct {
	io.Reader
	f  *os.File
	gz *gzip.Reader
}

func (i *inputFile) Close() error {
	if i.gz != nil {
		_ = i.gz.Close()
	}
	return i.f.Close()
}

// openInput opens path for reading. Gzip content is detected by its magic
// bytes, not by the file extension.
func openInput(path string) (*inputFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	br := bufio.NewReader(f)
	head, err := br.Peek(len(gzipMagic))
	if err != nil || !bytes.Equal(head, gzipMagic) {
		// short files are plain text; Peek errors surface on the first read
		return &inputFile{Reader: br, f: f}, nil
	}
	gz, err := gzip.NewReader(br)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open gzip input %s: %w", path, err)
	}
	return &inputFile{Reader: gz, f: f, gz: gz}, nil
}
