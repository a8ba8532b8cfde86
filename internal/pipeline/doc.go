// Package pipeline scores many URLs concurrently.
//
// Scoring a single URL is synchronous and cheap. The batch processor exists
// for list files and HTTP batch requests, where it fans URLs out across a
// bounded number of goroutines and collects the results in input order.
//
// Design decision: We bound concurrency with errgroup.SetLimit rather than a
// hand-written worker pool. Per-URL failures are recorded on the result and
// never cancel the rest of the batch; only context cancellation stops it.
package pipeline
