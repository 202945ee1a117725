// Package storage implements the filesystem-backed object store.
//
// Objects are opaque byte slices addressed by string keys. A key doubles as a
// slash-delimited path relative to the storage root, so the object "a/b/c.bin"
// lives at <root>/a/b/c.bin and its parent directories are created on demand.
//
// # Keys
//
// A key must be non-empty, relative, and made only of plain path segments.
// Keys containing ".", "..", empty segments (doubled or trailing separators)
// or volume prefixes are rejected before any filesystem call is made, which
// keeps every resolved path inside the root.
//
// # Errors
//
// Every operation fails with exactly one of three error kinds:
//   - *KeyError (matches ErrInvalidKey): the caller supplied a disallowed key.
//   - *NotFoundError (matches ErrNotFound): the key is valid but no object exists.
//   - *IOError (matches ErrIO): any other filesystem failure.
//
// # Concurrency
//
// An Engine holds nothing but its root path and may be shared freely across
// goroutines. Concurrent writes to the same key are not coordinated: the last
// write to reach the filesystem wins.
//
// # Usage
//
//	engine, err := storage.NewEngine("data")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := engine.Put("hello.txt", []byte("hello")); err != nil {
//	    log.Fatal(err)
//	}
//	data, err := engine.Get("hello.txt")
//	if errors.Is(err, storage.ErrNotFound) {
//	    // the object was deleted in the meantime
//	} else if err != nil {
//	    log.Fatal(err)
//	}
package storage
