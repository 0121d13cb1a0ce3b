// Package ratelimit provides request pacing for the collector.
//
// The source site is a small public directory, so pacing here is not a
// quota-style rate limiter but a fixed inter-request delay: every page fetch
// within a prefix waits the page delay, and every prefix within a batch
// waits the prefix delay. No two requests are ever in flight at once.
//
// Usage:
//
//	pacer := ratelimit.NewFixedDelay(300 * time.Millisecond)
//
//	for page := 2; page <= lastPage; page++ {
//	    pacer.Wait()
//	    // fetch page
//	}
package ratelimit
