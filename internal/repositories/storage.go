package repositories

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/rohits-web03/cellportal/internal/config"
)

var ErrObjectNotFound = errors.New("object not found in bucket")

// S3Signer presigns GET URLs against an S3-compatible object store.
type S3Signer struct {
	client    *s3.Client
	presigner *s3.PresignClient
}

// NewS3Signer builds a client from static credentials. Retries are left to
// the caller's retry policy.
func NewS3Signer(cfg config.StorageConfig) *S3Signer {
	awsCfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Region:      cfg.Region,
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
		o.RetryMaxAttempts = 1
	})

	return &S3Signer{client: client, presigner: s3.NewPresignClient(client)}
}

// NewS3SignerFactory returns a factory creating one signer per call.
func NewS3SignerFactory(cfg config.StorageConfig) bulkdownload.SignerFactory {
	return func() (bulkdownload.URLSigner, error) {
		if cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
			return nil, errors.New("storage credentials are not configured")
		}
		return NewS3Signer(cfg), nil
	}
}

// SignURL verifies the object exists and presigns a GET for it.
func (s *S3Signer) SignURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	exists, err := s.VerifyObjectExists(ctx, bucket, key)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("%w: %s/%s", ErrObjectNotFound, bucket, key)
	}
	return s.GeneratePresignedGetURL(ctx, bucket, key, expires)
}

// GeneratePresignedGetURL creates a presigned URL for downloading an object.
func (s *S3Signer) GeneratePresignedGetURL(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// VerifyObjectExists checks if a given object key exists in the bucket.
// Returns true if the object exists, false if not, and an error if something went wrong.
func (s *S3Signer) VerifyObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *s3types.NotFound
		if errors.As(err, &nsk) {
			return false, nil
		}
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsTransientStorageError reports whether a storage call may succeed when
// retried: server errors, throttling and network timeouts.
func IsTransientStorageError(err error) bool {
	if err == nil || errors.Is(err, ErrObjectNotFound) {
		return false
	}
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		status := respErr.HTTPStatusCode()
		return status >= http.StatusInternalServerError || status == http.StatusTooManyRequests
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
