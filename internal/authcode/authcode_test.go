package authcode

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu    sync.Mutex
	codes map[int64]Code
}

func newMemoryStore() *memoryStore {
	return &memoryStore{codes: make(map[int64]Code)}
}

func (s *memoryStore) Create(_ context.Context, code Code, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.codes[code.Value]; ok {
		return ErrCollision
	}
	s.codes[code.Value] = code
	return nil
}

func (s *memoryStore) Redeem(_ context.Context, value int64, requestPath string) (Code, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[value]
	if !ok {
		return Code{}, ErrInvalidCode
	}
	if !code.Allows(requestPath) {
		return Code{}, ErrWrongScope
	}
	delete(s.codes, value)
	return code, nil
}

const curlPath = "/api/v1/bulk_download/generate_curl_config"

func TestIssuer_IssueAndRedeem(t *testing.T) {
	ctx := context.Background()
	issuer := NewIssuer(newMemoryStore(), nil, nil)

	code, err := issuer.Issue(ctx, "user-1", 30*time.Minute, []string{curlPath})
	require.NoError(t, err)
	assert.Positive(t, code.Value)
	assert.Less(t, code.Value, int64(1<<53))

	userID, err := issuer.Redeem(ctx, code.Value, curlPath)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)

	_, err = issuer.Redeem(ctx, code.Value, curlPath)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestIssuer_WrongPathDoesNotConsume(t *testing.T) {
	ctx := context.Background()
	issuer := NewIssuer(newMemoryStore(), nil, nil)

	code, err := issuer.Issue(ctx, "user-1", time.Minute, []string{curlPath})
	require.NoError(t, err)

	_, err = issuer.Redeem(ctx, code.Value, "/api/v1/studies/SCP1/manifest")
	assert.ErrorIs(t, err, ErrWrongScope)

	userID, err := issuer.Redeem(ctx, code.Value, curlPath+"/")
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestIssuer_Expired(t *testing.T) {
	ctx := context.Background()
	issuer := NewIssuer(newMemoryStore(), nil, nil)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return start }

	code, err := issuer.Issue(ctx, "user-1", time.Minute, []string{curlPath})
	require.NoError(t, err)

	issuer.now = func() time.Time { return start.Add(time.Minute) }
	_, err = issuer.Redeem(ctx, code.Value, curlPath)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestIssuer_RetriesCollisions(t *testing.T) {
	ctx := context.Background()
	store := newMemoryStore()
	store.codes[7] = Code{Value: 7}
	issuer := NewIssuer(store, nil, nil)

	values := []int64{7, 7, 8}
	issuer.generate = func() (int64, error) {
		v := values[0]
		values = values[1:]
		return v, nil
	}

	code, err := issuer.Issue(ctx, "user-1", time.Minute, []string{curlPath})
	require.NoError(t, err)
	assert.Equal(t, int64(8), code.Value)
}

func TestIssuer_GivesUpAfterRepeatedCollisions(t *testing.T) {
	store := newMemoryStore()
	store.codes[7] = Code{Value: 7}
	issuer := NewIssuer(store, nil, nil)
	issuer.generate = func() (int64, error) { return 7, nil }

	_, err := issuer.Issue(context.Background(), "user-1", time.Minute, []string{curlPath})
	assert.ErrorIs(t, err, ErrCollision)
}

func TestIssuer_RequiresUserAndPaths(t *testing.T) {
	issuer := NewIssuer(newMemoryStore(), nil, nil)

	_, err := issuer.Issue(context.Background(), "", time.Minute, []string{curlPath})
	assert.Error(t, err)
	_, err = issuer.Issue(context.Background(), "user-1", time.Minute, nil)
	assert.Error(t, err)
}

func TestIssuer_ConcurrentRedeemSucceedsOnce(t *testing.T) {
	ctx := context.Background()
	issuer := NewIssuer(newMemoryStore(), nil, nil)
	code, err := issuer.Issue(ctx, "user-1", time.Minute, []string{curlPath})
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := issuer.Redeem(ctx, code.Value, curlPath); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, successes)
}

func TestGenerate(t *testing.T) {
	for i := 0; i < 100; i++ {
		v, err := Generate()
		require.NoError(t, err)
		assert.Positive(t, v)
		assert.Less(t, v, int64(1<<53))
	}
}

func TestCode_Allows(t *testing.T) {
	c := Code{Paths: []string{"/api/v1/studies/SCP1/manifest", "/"}}
	assert.True(t, c.Allows("/api/v1/studies/SCP1/manifest"))
	assert.True(t, c.Allows("/api/v1/studies/SCP1/manifest/"))
	assert.True(t, c.Allows("/"))
	assert.False(t, c.Allows("/api/v1/studies/SCP2/manifest"))
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/", want: "/"},
		{in: "/api/v1/studies/SCP1/manifest", want: "/api/v1/studies/SCP1/manifest"},
		{in: "/api/v1/studies/SCP1/manifest/", want: "/api/v1/studies/SCP1/manifest"},
		{in: "/api/v1/studies/SCP1/manifest//", want: "/api/v1/studies/SCP1/manifest"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.in))
		})
	}
}
