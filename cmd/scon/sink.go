// ABOUTME: logSink buffers log output so it can be emitted above the canvas
// ABOUTME: Writers may be any goroutine; only the console owner drains it

package main

import (
	"bytes"
	"strings"
	"sync"

	"github.com/mauromedda/superconsole/pkg/superconsole/content"
)

type logSink struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (s *logSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Write(p)
}

// drain returns every complete line written so far. A trailing partial
// line stays buffered.
func (s *logSink) drain() content.Lines {
	s.mu.Lock()
	defer s.mu.Unlock()

	data := s.buf.Bytes()
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return nil
	}
	text := string(data[:end])
	s.buf.Next(end + 1)

	var lines content.Lines
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, content.Line{content.Styled(l, logStyle)})
	}
	return lines
}
