// Package myoji talks to the myoji.namedic.jp surname directory.
//
// It provides the HTTP client used for all page fetches and the URL
// construction for the per-reading listing pages:
//
//	https://myoji.namedic.jp/sei/yomi_list/<prefix>          page 1
//	https://myoji.namedic.jp/sei/yomi_list/<prefix>?page=<n> page n >= 2
//
// The prefix symbol is percent-encoded in the path. InferPrefix is the
// reverse mapping, used by the single-shot entry point that accepts a
// listing URL instead of a bare prefix.
package myoji
