package mylog

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// RollingFileSink writes to basename-derived files, opening a fresh one
// whenever the current file is absent or has reached maxSize. A single
// record larger than maxSize is written in full to the freshly opened
// file; the next Write then rotates before writing.
type RollingFileSink struct {
	mu       sync.Mutex
	basename string
	maxSize  int64
	policy   FlushPolicy
	counter  int

	file    *os.File
	curSize int64
	clock   *clock
}

// NewRollingFileSink creates a rotation sink. The first file is opened
// lazily, on the first Write, exactly like every subsequent rotation.
func NewRollingFileSink(basename string, maxSize int64, policy FlushPolicy) *RollingFileSink {
	return &RollingFileSink{
		basename: basename,
		maxSize:  maxSize,
		policy:   policy,
		clock:    newClock(),
	}
}

func (s *RollingFileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil || s.curSize >= s.maxSize {
		if err := s.rotate(); err != nil {
			ioErr := &SinkIOError{Path: s.basename, Op: "rotate", Err: err}
			fmt.Fprintln(os.Stderr, ioErr.Error())
			return 0, ioErr
		}
	}

	n, err := s.file.Write(p)
	if err != nil {
		ioErr := &SinkIOError{Path: s.file.Name(), Op: "write", Err: err}
		fmt.Fprintln(os.Stderr, ioErr.Error())
		return n, ioErr
	}
	s.curSize += int64(n)
	applyFlushPolicy(s.file, s.policy)
	return n, nil
}

// rotate closes the current file, if any, and opens a new one named from
// the basename, the current time, and a monotonic counter.
func (s *RollingFileSink) rotate() error {
	if s.file != nil {
		syncFile(s.file)
		s.file.Close()
	}
	s.counter++
	name := s.rotatedName()
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	s.file = f
	s.curSize = 0
	return nil
}

// rotatedName builds "<basename><YYYY><M><D><H+1><Min+1><S+1>-<counter>.log".
// The +1 on hour/minute/second and the lack of zero-padding are preserved
// verbatim from the system this module is descended from rather than
// "fixed" — see DESIGN.md for the reasoning.
func (s *RollingFileSink) rotatedName() string {
	t := s.clock.now()
	var b []byte
	b = append(b, s.basename...)
	b = strconv.AppendInt(b, int64(t.Year()), 10)
	b = strconv.AppendInt(b, int64(t.Month()), 10)
	b = strconv.AppendInt(b, int64(t.Day()), 10)
	b = strconv.AppendInt(b, int64(t.Hour()+1), 10)
	b = strconv.AppendInt(b, int64(t.Minute()+1), 10)
	b = strconv.AppendInt(b, int64(t.Second()+1), 10)
	b = append(b, '-')
	b = strconv.AppendInt(b, int64(s.counter), 10)
	b = append(b, ".log"...)
	return string(b)
}

// Close flushes and closes the currently open file, if any.
func (s *RollingFileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.stop()
	if s.file == nil {
		return nil
	}
	syncFile(s.file)
	if err := s.file.Close(); err != nil {
		return &SinkIOError{Path: s.file.Name(), Op: "close", Err: err}
	}
	return nil
}
