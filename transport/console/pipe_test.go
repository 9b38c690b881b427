package console

import (
	"io"
	"testing"
)

// newBlockingPipe - a reader that blocks until the writer is closed.
func newBlockingPipe(t *testing.T) (*io.PipeReader, *io.PipeWriter) {
	t.Helper()

	reader, writer := io.Pipe()
	t.Cleanup(func() {
		_ = reader.Close()
	})

	return reader, writer
}
