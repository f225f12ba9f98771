// Package makeable decides which cocktails can be mixed from the bottles
// currently on the shelf. It matches canonical ingredient requirements
// against an inventory snapshot and memoizes the full evaluation behind a
// fingerprint pair, so unchanged inputs never trigger a rescan.
package makeable
