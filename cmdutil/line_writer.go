// Copyright (c) The a0 Authors. All rights reserved.
// Licensed under the MIT License.

package cmdutil

import (
	"bytes"
	"sync"
)

// lineWriter wraps an OutputLineHandler as an io.Writer.
// It buffers partial lines and calls the handler for each complete line.
type lineWriter struct {
	handler OutputLineHandler
	buf     []byte
	mu      sync.Mutex
}

func newLineWriter(handler OutputLineHandler) *lineWriter {
	return &lineWriter{handler: handler}
}

func (lw *lineWriter) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	lw.buf = append(lw.buf, p...)
	for {
		idx := bytes.IndexByte(lw.buf, '\n')
		if idx < 0 {
			break
		}
		line := string(bytes.TrimRight(lw.buf[:idx], "\r"))
		lw.buf = lw.buf[idx+1:]
		if lw.handler != nil {
			lw.handler(line)
		}
	}

	return len(p), nil
}

// Flush processes any remaining buffered data as a final line.
func (lw *lineWriter) Flush() {
	lw.mu.Lock()
	defer lw.mu.Unlock()

	if len(lw.buf) > 0 && lw.handler != nil {
		lw.handler(string(lw.buf))
	}
	lw.buf = nil
}
