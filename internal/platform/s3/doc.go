// Package s3 fetches label templates from S3-compatible object storage.
//
// Templates are addressed as s3://bucket/key. Credentials come from the
// configured static key pair or, when none is set, from the default AWS
// credential chain. A custom endpoint switches the client to path-style
// addressing, which MinIO and most self-hosted stores require.
package s3
