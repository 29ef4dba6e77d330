package mylog

import "sync"

// Process-wide singleton state: one WorkerPool and one RemoteBackup target,
// shared by every Logger in the process. The spec's "process-wide
// singleton" pattern is modeled here as explicit package-level state behind
// accessor functions rather than a hidden global constructor, so tests can
// call Init with a throwaway Config instead of depending on init-order.
var (
	processOnce   sync.Once
	processConfig Config
	processPool   *WorkerPool
	processBackup *RemoteBackup
)

// Init configures the process-wide WorkerPool and RemoteBackup target from
// cfg. It is a no-op after the first call (or after the first ERROR/FATAL
// record is logged without an explicit Init, which lazily initializes from
// DefaultConfig()) — matching the "documented init-once semantics" the spec
// calls for around its singletons.
func Init(cfg Config) {
	processOnce.Do(func() {
		initProcess(cfg)
	})
}

func initProcess(cfg Config) {
	processConfig = cfg
	processPool = NewWorkerPool(2, cfg.ThreadCount)
	processBackup = NewRemoteBackup(cfg.BackupAddr, cfg.BackupPort)
}

func pool() *WorkerPool {
	processOnce.Do(func() { initProcess(DefaultConfig()) })
	return processPool
}

func remoteBackup() *RemoteBackup {
	processOnce.Do(func() { initProcess(DefaultConfig()) })
	return processBackup
}

// Shutdown stops the process-wide WorkerPool. It is intended for graceful
// process exit and for tests that need a clean slate between cases; after
// Shutdown, any Logger still dispatching ERROR/FATAL records will see
// ErrPoolClosed from the pool and log that to stderr instead of blocking
// forever.
func Shutdown() {
	if processPool != nil {
		processPool.Shutdown()
	}
}
