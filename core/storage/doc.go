// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small set of operations the snapshot
// export needs. This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: used by EnsureBucket at startup.
//   - PutObject: uploads an exported snapshot.
//   - ListObjects: lists the exports of a guild by prefix.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
//	key := storage.ObjectKey(cfg.Storage.Prefix, guildID, "1700000000.json")
package storage
