package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Scheme is the URL scheme of object storage template locations.
const Scheme = "s3://"

// DefaultRegion is used when no region is configured.
const DefaultRegion = "us-east-1"

// Options configures the object storage client.
type Options struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// Client wraps the S3 client for template downloads.
type Client struct {
	s3 *s3.Client
}

// NewClient creates a new S3 client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	region := opts.Region
	if region == "" {
		region = DefaultRegion
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if opts.AccessKey != "" || opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Client{s3: client}, nil
}

// IsURL reports whether location addresses object storage.
func IsURL(location string) bool {
	return strings.HasPrefix(location, Scheme)
}

// ParseURL splits s3://bucket/key into bucket and key.
func ParseURL(location string) (bucket, key string, err error) {
	if !IsURL(location) {
		return "", "", fmt.Errorf("not an object storage location: %s", location)
	}

	bucket, key, _ = strings.Cut(strings.TrimPrefix(location, Scheme), "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid object storage location %s: expected s3://bucket/key", location)
	}
	return bucket, key, nil
}

// GetObject downloads an object from a bucket.
func (c *Client) GetObject(ctx context.Context, bucketName, key string) ([]byte, error) {
	result, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s from bucket %s: %w", key, bucketName, err)
	}
	defer result.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(result.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return buf.Bytes(), nil
}

// Fetch downloads the object addressed by an s3:// location.
func (c *Client) Fetch(ctx context.Context, location string) ([]byte, error) {
	bucket, key, err := ParseURL(location)
	if err != nil {
		return nil, err
	}
	return c.GetObject(ctx, bucket, key)
}

// IsNotFound checks if the error means the bucket or object does not exist.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}

	// Check for typed S3 errors first
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}

	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}

	// Fall back to API error code checking for S3-compatible services
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NoSuchKey" || code == "NoSuchBucket" || code == "NotFound" || code == "404"
	}

	return false
}
