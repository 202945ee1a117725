// Package remote wraps the MinIO Go client for talking to an S3-compatible
// object store (AWS S3, MinIO, Ceph, Garage).
//
// The local filesystem store never depends on this package. It is used only by
// the backup feature, which copies local objects to a remote bucket on demand.
//
// # Client Interface
//
// The Client interface exposes only the calls the backup job makes, so tests
// can swap in mocks.Client.
//
// # Usage
//
//	client, err := remote.NewClient(cfg.Remote)
//	exists, err := client.BucketExists(ctx, cfg.Remote.Bucket)
package remote
