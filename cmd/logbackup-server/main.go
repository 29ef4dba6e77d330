// Command logbackup-server is a minimal TCP listener that appends every
// connection's payload to a file, standing in for the remote backup
// listener a mylog.RemoteBackup target talks to.
package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"sync"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var listen, out string

	cmd := &cobra.Command{
		Use:   "logbackup-server",
		Short: "Accept mylog remote-backup connections and append them to a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(listen, out)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", ":9999", "address to listen on")
	cmd.Flags().StringVar(&out, "out", "backup.log", "file to append received records to")
	return cmd
}

func run(listen, out string) error {
	f, err := os.OpenFile(out, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listen, err)
	}
	defer ln.Close()

	fmt.Fprintf(os.Stdout, "logbackup-server: listening on %s, appending to %s\n", listen, out)

	var mu sync.Mutex
	for {
		conn, err := ln.Accept()
		if err != nil {
			return fmt.Errorf("accept: %w", err)
		}
		go handleConn(conn, f, &mu)
	}
}

func handleConn(conn net.Conn, f *os.File, mu *sync.Mutex) {
	defer conn.Close()

	data, err := io.ReadAll(conn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logbackup-server: read from %s: %v\n", conn.RemoteAddr(), err)
		return
	}
	if len(data) == 0 {
		return
	}

	mu.Lock()
	defer mu.Unlock()
	if _, err := f.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "logbackup-server: write: %v\n", err)
	}
}
