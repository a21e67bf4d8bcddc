package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rohits-web03/cellportal/internal/authcode"
	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestAuthCodeStore(t *testing.T) {
	_, client := newTestRedis(t)
	store := NewAuthCodeStore(client)
	ctx := context.Background()
	path := "/api/v1/bulk_download/generate_curl_config"

	code := authcode.Code{Value: 12345, UserID: "user-1", Paths: []string{path + "/"}, ExpiresAt: time.Now().Add(time.Minute)}
	require.NoError(t, store.Create(ctx, code, time.Minute))
	assert.ErrorIs(t, store.Create(ctx, code, time.Minute), authcode.ErrCollision)

	_, err := store.Redeem(ctx, 12345, "/api/v1/studies/SCP1/manifest")
	assert.ErrorIs(t, err, authcode.ErrWrongScope)

	got, err := store.Redeem(ctx, 12345, path)
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, int64(12345), got.Value)

	_, err = store.Redeem(ctx, 12345, path)
	assert.ErrorIs(t, err, authcode.ErrInvalidCode)
}

func TestAuthCodeStore_Expires(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewAuthCodeStore(client)
	ctx := context.Background()

	code := authcode.Code{Value: 1, UserID: "user-1", Paths: []string{"/x"}}
	require.NoError(t, store.Create(ctx, code, 30*time.Minute))
	assert.Equal(t, 30*time.Minute, mr.TTL("auth_code:1"))

	mr.FastForward(31 * time.Minute)
	_, err := store.Redeem(ctx, 1, "/x")
	assert.ErrorIs(t, err, authcode.ErrInvalidCode)
}

func TestAuthCodeStore_WithIssuer(t *testing.T) {
	_, client := newTestRedis(t)
	issuer := authcode.NewIssuer(NewAuthCodeStore(client), nil, nil)
	ctx := context.Background()

	code, err := issuer.Issue(ctx, "user-9", time.Minute, []string{"/api/v1/studies/SCP1/manifest"})
	require.NoError(t, err)

	userID, err := issuer.Redeem(ctx, code.Value, "/api/v1/studies/SCP1/manifest")
	require.NoError(t, err)
	assert.Equal(t, "user-9", userID)
}

func TestDownloadRequestStore(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewDownloadRequestStore(client)
	ctx := context.Background()

	req := bulkdownload.DownloadRequest{
		FileIDs: []string{"3f1e7c52-8a0b-4c1e-9d55-2f0b3a6c9e11"},
		FederatedFiles: []bulkdownload.FederatedProject{{
			ShortName: "proj",
			Files:     []bulkdownload.FederatedFile{{Name: "a.bam", FileType: "BAM", DRSID: "drs://x"}},
		}},
	}
	id, err := store.Save(ctx, "user-1", req, time.Minute)
	require.NoError(t, err)

	got, err := store.Load(ctx, id, "user-1")
	require.NoError(t, err)
	assert.Equal(t, req, got)

	_, err = store.Load(ctx, id, "user-2")
	assert.ErrorIs(t, err, ErrDownloadRequestNotFound)

	mr.FastForward(2 * time.Minute)
	_, err = store.Load(ctx, id, "user-1")
	assert.ErrorIs(t, err, ErrDownloadRequestNotFound)
}
