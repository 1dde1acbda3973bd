package utils

import (
	"bufio"
	"io"

	"github.com/dsnet/compress/bzip2"
)

// readCloser ties a Reader to a Closer (composite).
type readCloser struct {
	io.Reader
	io.Closer
}

// MaybeBunzip2 returns a reader that yields the decompressed stream if 'src' is
// bzip2, else returns src as-is. It preserves the ability to Close().
func MaybeBunzip2(src io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(src)
	// Peek 3 bytes for the bzip2 magic
	hdr, err := br.Peek(3)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if len(hdr) >= 3 && hdr[0] == 'B' && hdr[1] == 'Z' && hdr[2] == 'h' {
		zr, err := bzip2.NewReader(br, nil)
		if err != nil {
			return nil, err
		}
		return readCloser{Reader: zr, Closer: src}, nil
	}
	// not bzip2
	return readCloser{Reader: br, Closer: src}, nil
}
