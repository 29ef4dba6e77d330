package mylog

import "errors"

// ErrPoolClosed is returned by the Wait of any Future whose task could not
// run because the pool was shut down first, including every Future that
// WorkerPool.Submit hands out after Shutdown.
var ErrPoolClosed = errors.New("mylog: worker pool closed")

// ConfigLoadError wraps a failure to read or parse a JSON config file.
// LoadConfig reports it to stderr and still returns usable defaults, so a
// caller that ignores the error is not left without a working Config.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return "mylog: load config " + e.Path + ": " + e.Err.Error()
}

func (e *ConfigLoadError) Unwrap() error { return e.Err }

// SinkIOError wraps a failure performing Op (one of "open", "write", "sync",
// "close", "rotate") against a disk-backed sink's file at Path. Sinks report
// these to stderr and, where their call site has a return path for it,
// surface the same value so a caller can errors.As for it instead of only
// ever seeing stderr output.
type SinkIOError struct {
	Path string
	Op   string
	Err  error
}

func (e *SinkIOError) Error() string {
	return "mylog: sink " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *SinkIOError) Unwrap() error { return e.Err }

// RemoteSendError wraps a failure dialing or writing to a RemoteBackup's
// target address.
type RemoteSendError struct {
	Addr string
	Err  error
}

func (e *RemoteSendError) Error() string {
	return "mylog: remote backup send to " + e.Addr + ": " + e.Err.Error()
}

func (e *RemoteSendError) Unwrap() error { return e.Err }
