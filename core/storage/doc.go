// Package storage provides access to object storage for event exports.
//
// It wraps the Minio S3-compatible client behind a small Client interface so
// that loaders can be tested with mocks (see the mocks sub-package).
//
// Event CSV exports are read-only inputs to the pipeline, so the interface
// only exposes the read side (BucketExists, GetObject). Objects are addressed
// by the source loader through s3://bucket/object URLs.
//
// # Timeouts
//
// The underlying HTTP transport is configured with strict connection, TLS
// handshake, and response-header timeouts so a misconfigured endpoint fails
// the run instead of hanging it.
package storage
