package mylog

import (
	"fmt"
	"net"
	"os"
	"time"
)

// maxDialRetries bounds RemoteBackup's connection attempts, matching the
// retry count in the system this module is descended from.
const maxDialRetries = 5

const dialTimeout = 2 * time.Second

// RemoteBackup ships ERROR/FATAL records to a best-effort TCP backup
// listener. It is deliberately not a Sink: it is invoked only from
// Logger.Log's severity-triggered dispatch, never registered on a Logger's
// sink list.
type RemoteBackup struct {
	addr string
}

// NewRemoteBackup targets host:port for subsequent Send calls.
func NewRemoteBackup(host string, port int) *RemoteBackup {
	return &RemoteBackup{addr: fmt.Sprintf("%s:%d", host, port)}
}

// Send dials the backup address, retrying up to maxDialRetries times with
// no backoff, writes p once, and closes the connection. Every failure is
// reported to stderr and returned as a *RemoteSendError — the caller already
// has the record delivered locally regardless of what happens here.
func (r *RemoteBackup) Send(p []byte) error {
	var conn net.Conn
	var err error
	for attempt := 0; attempt < maxDialRetries; attempt++ {
		conn, err = net.DialTimeout("tcp", r.addr, dialTimeout)
		if err == nil {
			break
		}
	}
	if err != nil {
		sendErr := &RemoteSendError{Addr: r.addr, Err: fmt.Errorf("dial failed after %d attempts: %w", maxDialRetries, err)}
		fmt.Fprintln(os.Stderr, sendErr.Error())
		return sendErr
	}
	defer conn.Close()

	if _, err := conn.Write(p); err != nil {
		sendErr := &RemoteSendError{Addr: r.addr, Err: err}
		fmt.Fprintln(os.Stderr, sendErr.Error())
		return sendErr
	}
	return nil
}
