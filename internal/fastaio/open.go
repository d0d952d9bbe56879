// internal/fastaio/open.go
//
// Line-source opening for the core parser. The core consumes an already
// decoded stream; this package is where paths, stdin, and compression live.
package fastaio

import (
	"io"

	"github.com/shenwei356/xopen"
)

// Open returns a decoded read stream for path. "-" reads stdin; gzip (and
// friends) are detected and decompressed transparently by xopen.
func Open(path string) (io.ReadCloser, error) {
	r, err := xopen.Ropen(path)
	if err != nil {
		return nil, err
	}
	return r, nil
}
