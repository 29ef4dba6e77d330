//go:build !linux

package mylog

import "os"

// fsync durably syncs f to disk using the portable os.File.Sync path on
// platforms where golang.org/x/sys/unix's Fsync is not wired up.
func fsync(f *os.File) error {
	return f.Sync()
}
