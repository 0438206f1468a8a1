package kern

// Option configures a batch solve.
//
// Example:
//
//	m, err := kern.SolveBatch(ctx, pairs, src,
//	    kern.WithWorkers(4),
//	    kern.WithProgress(func(pct float64) { bar.Set(pct) }),
//	)
type Option func(*options)

// options holds optional configuration for SolveBatch.
type options struct {
	workers   int
	chunkSize int
	progress  func(percent float64)
}

// defaultOptions returns the default batch options: solve on the calling
// goroutine in chunks of 32 pairs with no progress reporting.
func defaultOptions() options {
	return options{
		workers:   1,
		chunkSize: 32,
	}
}

// WithWorkers sets the number of worker goroutines. 1 solves on the
// calling goroutine; 0 or negative uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithChunkSize sets how many pairs are solved between progress reports
// and cancellation checks. Values below 1 are ignored.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.chunkSize = n
		}
	}
}

// WithProgress sets a callback receiving completion percentages in
// [0, 100]. Reported values never decrease and the callback is never
// invoked concurrently with itself.
func WithProgress(fn func(percent float64)) Option {
	return func(o *options) {
		o.progress = fn
	}
}
