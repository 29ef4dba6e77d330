package mylog

import (
	"fmt"
	"os"
)

// FlushPolicy controls how aggressively a disk-backed Sink pushes bytes out
// of any OS-level buffering after a write.
type FlushPolicy int

const (
	// FlushNone relies entirely on OS buffering.
	FlushNone FlushPolicy = iota
	// FlushLibrary flushes any library-level buffering after each write.
	// *os.File has none of its own, so this is a no-op in this
	// implementation; it exists to keep the policy's three-valued shape
	// intact for configs shared with the wire format in SPEC_FULL.md §6.
	FlushLibrary
	// FlushSync flushes and additionally fsyncs the file to durable storage
	// after each write.
	FlushSync
)

// Sink is a terminal destination for formatted log bytes. The set of
// variants — StdoutSink, FileSink, RollingFileSink — is closed; there is no
// registration mechanism for new kinds, matching the spec's description of
// sinks as a small capability contract rather than a rich subsystem.
type Sink interface {
	Write(p []byte) (int, error)
}

// Closer is implemented by sinks that hold an OS resource.
type Closer interface {
	Close() error
}

// StdoutSink writes every record to the process's standard output. It has
// no flush policy of its own — stdout is line-buffered by the host the way
// any other process's stdout is.
type StdoutSink struct{}

// NewStdoutSink returns a Sink that writes to os.Stdout.
func NewStdoutSink() *StdoutSink { return &StdoutSink{} }

func (s *StdoutSink) Write(p []byte) (int, error) {
	return os.Stdout.Write(p)
}

// FileSink appends every record to a single file, applying the configured
// FlushPolicy after each write.
type FileSink struct {
	path   string
	policy FlushPolicy
	file   *os.File
}

// NewFileSink opens path in append mode, creating it if necessary. An open
// failure is reported to stderr as a SinkIOError and the sink is returned
// anyway, silently discarding writes thereafter — a logging sink must never
// be the reason a caller's own error path fails.
func NewFileSink(path string, policy FlushPolicy) *FileSink {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		ioErr := &SinkIOError{Path: path, Op: "open", Err: err}
		fmt.Fprintln(os.Stderr, ioErr.Error())
	}
	return &FileSink{path: path, policy: policy, file: f}
}

func (s *FileSink) Write(p []byte) (int, error) {
	if s.file == nil {
		return 0, nil
	}
	n, err := s.file.Write(p)
	if err != nil {
		ioErr := &SinkIOError{Path: s.path, Op: "write", Err: err}
		fmt.Fprintln(os.Stderr, ioErr.Error())
		return n, ioErr
	}
	applyFlushPolicy(s.file, s.policy)
	return n, nil
}

// Close flushes and closes the underlying file.
func (s *FileSink) Close() error {
	if s.file == nil {
		return nil
	}
	syncFile(s.file)
	if err := s.file.Close(); err != nil {
		return &SinkIOError{Path: s.path, Op: "close", Err: err}
	}
	return nil
}

// applyFlushPolicy honors the flush_log config. *os.File has no userspace
// write buffer of its own — every Write is already a syscall — so level 1
// ("library-level flush") has nothing left to do in Go and is a deliberate
// no-op; level 2 additionally fsyncs to durable storage, which is the only
// flush step this implementation can meaningfully perform.
func applyFlushPolicy(f *os.File, policy FlushPolicy) {
	if policy == FlushSync {
		syncFile(f)
	}
}

func syncFile(f *os.File) {
	if err := fsync(f); err != nil {
		ioErr := &SinkIOError{Path: f.Name(), Op: "sync", Err: err}
		fmt.Fprintln(os.Stderr, ioErr.Error())
	}
}
