// Package storage provides access to the object store holding slideshow images.
//
// It wraps the MinIO Go client to provide a narrow listing interface. The
// abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	objects := client.ListObjects(ctx, "slideshows", minio.ListObjectsOptions{Prefix: folder})
package storage
