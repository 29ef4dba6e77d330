// Command logbackup-client sends a single record to a mylog remote-backup
// listener, for probing that a backup target is reachable without spinning
// up a full Logger.
package main

import (
	"fmt"
	"os"

	"github.com/cyclone-mind/asynclog/mylog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var addr, message string
	var port int

	cmd := &cobra.Command{
		Use:   "logbackup-client",
		Short: "Send one record to a remote backup listener and report the outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			backup := mylog.NewRemoteBackup(addr, port)
			if err := backup.Send([]byte(message)); err != nil {
				return fmt.Errorf("send failed: %w", err)
			}
			fmt.Fprintf(os.Stdout, "logbackup-client: delivered %d bytes to %s:%d\n", len(message), addr, port)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1", "backup listener host")
	cmd.Flags().IntVar(&port, "port", 9999, "backup listener port")
	cmd.Flags().StringVar(&message, "message", "probe\n", "record bytes to send")
	return cmd
}
