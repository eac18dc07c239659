// Package buffer provides the text buffer the snippet engine operates on.
//
// The buffer is a single linear UTF-8 document addressed by byte offsets.
// It supports coordinate conversion between byte offsets and line/column
// points, single edits, and atomic multi-edit transactions where every
// edit's range refers to the buffer state before the transaction.
//
// Snapshots are cheap immutable copies used by the matcher so that no
// cursor's matching logic observes another cursor's edit.
package buffer
