// Package mylog provides an asynchronous, multi-sink logging core: a
// double-buffered producer/consumer pipeline that keeps disk and network
// I/O off the calling goroutine, with severity-triggered remote backup
// dispatched through a bounded worker pool.
package mylog
