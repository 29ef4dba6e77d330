// Command loadtest drives a real mylog.Logger with concurrent producers, for
// exercising the AsyncWorker's backpressure behavior under sustained load.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

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
	var producers, records int
	var configPath, outPath string
	var unsafeMode bool

	cmd := &cobra.Command{
		Use:   "loadtest",
		Short: "Generate concurrent log traffic against a mylog.Logger",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(configPath, outPath, producers, records, unsafeMode)
		},
	}

	cmd.Flags().IntVar(&producers, "producers", 8, "number of concurrent producer goroutines")
	cmd.Flags().IntVar(&records, "records", 1000, "records logged per producer")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a mylog JSON config file")
	cmd.Flags().StringVar(&outPath, "out", "loadtest.log", "file the test logger writes to")
	cmd.Flags().BoolVar(&unsafeMode, "unsafe", false, "use ModeUnsafe instead of ModeSafe")
	return cmd
}

func run(configPath, outPath string, producers, records int, unsafeMode bool) error {
	cfg, err := mylog.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stdout, "loadtest: %v (continuing with defaults)\n", err)
	}

	mode := mylog.ModeSafe
	if unsafeMode {
		mode = mylog.ModeUnsafe
	}

	logger, err := mylog.NewBuilder(cfg).
		Name("loadtest").
		WithMode(mode).
		AddFile(outPath, mylog.FlushNone).
		Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	start := time.Now()
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(producer int) {
			defer wg.Done()
			for i := 0; i < records; i++ {
				logger.Info("loadtest.go", i, "producer %d record %d", producer, i)
			}
		}(p)
	}
	wg.Wait()
	pushed := time.Since(start)

	if err := logger.Close(); err != nil {
		return fmt.Errorf("close logger: %w", err)
	}
	total := time.Since(start)

	fmt.Fprintf(os.Stdout, "loadtest: %d producers x %d records pushed in %s, drained in %s\n",
		producers, records, pushed, total)
	return nil
}
