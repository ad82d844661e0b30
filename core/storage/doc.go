// Package storage provides keyed blob storage over an S3-compatible object store.
//
// It wraps the MinIO Go client behind the Client interface, so the same code talks to
// AWS S3 or a self-hosted MinIO and can be swapped for core/storage/mocks or
// core/storage/storagetest in unit tests.
//
// # Gateway
//
// Gateway owns one bucket in a flat namespace: "reports/q1.txt" is a plain key, not a
// path. NewGateway checks that the bucket exists and creates it if needed; that is the
// only step that returns an error. The per-object primitives never fail across the
// package boundary:
//
//   - Upload: returns an UploadResult with Success=false and the transport error text.
//   - Download, Stat, PresignedURL: return ok=false for missing objects and failures alike.
//   - Delete: returns false.
//   - List: returns a materialized key slice, or an error the caller turns into a response.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	gw, err := storage.NewGateway(ctx, client, cfg.Storage, logger)
//	res := gw.Upload(ctx, "notes.txt", []byte("hi"), "text/plain")
//	data, ok := gw.Download(ctx, "notes.txt")
package storage
