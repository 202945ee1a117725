// Package backup copies every object in the local store to an S3-compatible
// bucket.
//
// A run lists the local keys, creates the target bucket if needed, then uploads
// each object under Prefix+key with a bounded number of concurrent uploads and
// an optional upload rate. Objects deleted between listing and reading are
// counted as skipped; any other failure aborts the run.
//
// Backups are one-shot exports triggered by an operator (see `filestorage
// backup`). Nothing is ever read back from the remote bucket.
package backup
