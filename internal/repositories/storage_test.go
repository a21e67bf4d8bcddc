package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rohits-web03/cellportal/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStorageServer(t *testing.T, handler http.HandlerFunc) config.StorageConfig {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return config.StorageConfig{
		Endpoint:        srv.URL,
		Region:          "us-east-1",
		AccessKeyID:     "AKIDEXAMPLE",
		SecretAccessKey: "secret",
		UsePathStyle:    true,
	}
}

func TestS3Signer_SignURL(t *testing.T) {
	heads := 0
	cfg := newStorageServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodHead, r.Method)
		heads++
		if r.URL.Path == "/bucket-1/SCP1/a.txt" {
			w.Header().Set("Content-Length", "10")
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})
	signer := NewS3Signer(cfg)
	ctx := context.Background()

	url, err := signer.SignURL(ctx, "bucket-1", "SCP1/a.txt", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, cfg.Endpoint+"/bucket-1/SCP1/a.txt?"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=3600")

	_, err = signer.SignURL(ctx, "bucket-1", "SCP1/missing.txt", time.Hour)
	assert.ErrorIs(t, err, ErrObjectNotFound)
	assert.False(t, IsTransientStorageError(err))
	assert.Equal(t, 2, heads)
}

func TestS3Signer_TransientFailure(t *testing.T) {
	cfg := newStorageServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := NewS3Signer(cfg).SignURL(context.Background(), "bucket-1", "a.txt", time.Hour)
	require.Error(t, err)
	assert.True(t, IsTransientStorageError(err))
}

func TestS3Signer_PermanentFailure(t *testing.T) {
	cfg := newStorageServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := NewS3Signer(cfg).SignURL(context.Background(), "bucket-1", "a.txt", time.Hour)
	require.Error(t, err)
	assert.False(t, IsTransientStorageError(err))
}

func TestNewS3SignerFactory(t *testing.T) {
	_, err := NewS3SignerFactory(config.StorageConfig{})()
	assert.Error(t, err)

	signer, err := NewS3SignerFactory(config.StorageConfig{AccessKeyID: "a", SecretAccessKey: "b", Region: "auto"})()
	require.NoError(t, err)
	assert.NotNil(t, signer)
}

func TestIsTransientStorageError(t *testing.T) {
	assert.False(t, IsTransientStorageError(nil))
	assert.False(t, IsTransientStorageError(errors.New("boom")))
}
