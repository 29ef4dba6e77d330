package mylog

import (
	"encoding/json"
	"fmt"
	"os"
)

// defaultConfigPath is used by LoadConfig when the caller passes an empty
// path, preserving the "fixed relative path" default the system this
// module descends from reads on startup.
const defaultConfigPath = "./asynclog.conf.json"

// Config holds the process-wide tunables for every AsyncWorker and the
// remote backup channel. Its JSON field names are the wire keys a config
// file on disk must use.
type Config struct {
	BufferSize   int    `json:"buffer_size"`
	Threshold    int    `json:"threshold"`
	LinearGrowth int    `json:"linear_growth"`
	FlushLog     int    `json:"flush_log"`
	BackupAddr   string `json:"backup_addr"`
	BackupPort   int    `json:"backup_port"`
	ThreadCount  int    `json:"thread_count"`
}

// DefaultConfig returns a Config with baseline defaults, used both as the
// starting point for Validate and as the fallback LoadConfig returns
// alongside a ConfigLoadError.
func DefaultConfig() Config {
	return Config{
		BufferSize:   1 << 20, // 1MB
		Threshold:    1 << 23, // 8MB
		LinearGrowth: 1 << 20, // 1MB
		FlushLog:     0,
		BackupAddr:   "127.0.0.1",
		BackupPort:   9999,
		ThreadCount:  2,
	}
}

// LoadConfig reads and parses a JSON config file at path (defaultConfigPath
// if path is empty). A missing or malformed file is a ConfigLoadError:
// reported to stderr and returned alongside DefaultConfig() so callers that
// ignore the error still get a usable configuration. Fields absent from
// the JSON file keep Go's zero value and are defaulted by Validate.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		path = defaultConfigPath
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		loadErr := &ConfigLoadError{Path: path, Err: err}
		fmt.Fprintln(os.Stderr, loadErr.Error())
		return cfg, loadErr
	}

	var fromFile Config
	if err := json.Unmarshal(data, &fromFile); err != nil {
		loadErr := &ConfigLoadError{Path: path, Err: err}
		fmt.Fprintln(os.Stderr, loadErr.Error())
		return cfg, loadErr
	}

	fromFile.Validate()
	return fromFile, nil
}

// Validate fills in defaults for any zero-valued field in place. It never
// fails: an invalid or absent config is not a fatal condition for this
// library, only a reason to fall back to known-good numbers.
func (c *Config) Validate() {
	d := DefaultConfig()
	if c.BufferSize <= 0 {
		c.BufferSize = d.BufferSize
	}
	if c.Threshold <= 0 {
		c.Threshold = d.Threshold
	}
	if c.LinearGrowth <= 0 {
		c.LinearGrowth = d.LinearGrowth
	}
	if c.FlushLog < 0 || c.FlushLog > 2 {
		c.FlushLog = d.FlushLog
	}
	if c.BackupAddr == "" {
		c.BackupAddr = d.BackupAddr
	}
	if c.BackupPort <= 0 {
		c.BackupPort = d.BackupPort
	}
	if c.ThreadCount <= 0 {
		c.ThreadCount = d.ThreadCount
	}
}
