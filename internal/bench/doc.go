// Package bench times races over a range of sequence lengths.
//
// For every length the Runner performs the configured warmups, then the timed samples,
// printing one progress line per run:
//
//	Warmup: n=5 48 µs
//	n=5 31.5 µs
//
// Every run is stored through the store, warmups included and flagged. Statistics are
// read back from the store once the sweep ends. With more than three samples the fastest
// and slowest are dropped before computing the average, min, max, population std-dev and
// median.
//
// Cancelling the context stops the sweep and discards the run in progress. The report holds the
// lengths measured so far and Report.Interrupted is set.
package bench
