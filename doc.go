// Package fuzzlane scores and ranks byte-string haystacks against a short
// byte-string needle by local-alignment score.
//
// The pipeline is caller -> prefilter -> bucketer -> scorer (-> optional
// reverse pass) -> match records, run single-threaded and synchronously.
// Sharding haystacks across goroutines and merging per-shard results is
// left to the caller.
package fuzzlane
