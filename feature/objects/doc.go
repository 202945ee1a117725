// Package objects exposes the local object store over HTTP.
//
// # HTTP Endpoints
//
//   - PUT /objects/{key} : Stores the request body under key (201, empty body).
//   - GET /objects/{key} : Returns the object as application/octet-stream (200).
//   - DELETE /objects/{key} : Removes the object (204).
//   - GET /health : Reports object count and total stored bytes.
//
// Keys may span any number of path segments ("/objects/a/b/c.bin" addresses
// the key "a/b/c.bin") and are percent-decoded before reaching the store.
//
// # Errors
//
// Store errors are mapped to JSON bodies of the form {"error": "..."}:
// invalid keys to 400, missing objects to 404, filesystem failures to 500.
package objects
