package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rohits-web03/cellportal/internal/authcode"
	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/rohits-web03/cellportal/internal/utils"
)

const (
	authCodeKeyPrefix        = "auth_code:"
	downloadRequestKeyPrefix = "download_request:"
)

var ErrDownloadRequestNotFound = errors.New("download request not found or expired")

// ConnectRedis parses a redis:// URL and pings the server.
func ConnectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// redeemScript consumes the code in KEYS[1] when ARGV[1] is one of the
// paths in the set KEYS[2]. Replies {0} when missing, {2} for another path
// and {1, code} on success.
var redeemScript = redis.NewScript(`
local raw = redis.call("GET", KEYS[1])
if not raw then
	return {0}
end
if redis.call("SISMEMBER", KEYS[2], ARGV[1]) == 0 then
	return {2}
end
redis.call("DEL", KEYS[1], KEYS[2])
return {1, raw}
`)

// AuthCodeStore keeps auth codes in Redis until redeemed or expired.
type AuthCodeStore struct {
	client *redis.Client
}

func NewAuthCodeStore(client *redis.Client) *AuthCodeStore {
	return &AuthCodeStore{client: client}
}

func authCodeKeys(value int64) (string, string) {
	key := authCodeKeyPrefix + strconv.FormatInt(value, 10)
	return key, key + ":paths"
}

func (s *AuthCodeStore) Create(ctx context.Context, code authcode.Code, ttl time.Duration) error {
	raw, err := json.Marshal(code)
	if err != nil {
		return err
	}
	key, pathsKey := authCodeKeys(code.Value)

	created, err := s.client.SetNX(ctx, key, raw, ttl).Result()
	if err != nil {
		return err
	}
	if !created {
		return authcode.ErrCollision
	}

	members := make([]any, len(code.Paths))
	for i, p := range code.Paths {
		members[i] = authcode.NormalizePath(p)
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, pathsKey, members...)
		pipe.Expire(ctx, pathsKey, ttl)
		return nil
	})
	if err != nil {
		s.client.Del(ctx, key)
		return err
	}
	return nil
}

func (s *AuthCodeStore) Redeem(ctx context.Context, value int64, requestPath string) (authcode.Code, error) {
	key, pathsKey := authCodeKeys(value)
	reply, err := redeemScript.Run(ctx, s.client, []string{key, pathsKey}, authcode.NormalizePath(requestPath)).Slice()
	if err != nil {
		return authcode.Code{}, err
	}
	if len(reply) == 0 {
		return authcode.Code{}, authcode.ErrInvalidCode
	}

	status, _ := reply[0].(int64)
	switch status {
	case 0:
		return authcode.Code{}, authcode.ErrInvalidCode
	case 2:
		return authcode.Code{}, authcode.ErrWrongScope
	}

	raw, _ := reply[1].(string)
	var code authcode.Code
	if err := json.Unmarshal([]byte(raw), &code); err != nil {
		return authcode.Code{}, fmt.Errorf("decode auth code: %w", err)
	}
	return code, nil
}

type storedDownloadRequest struct {
	UserID  string                       `json:"user_id"`
	Request bulkdownload.DownloadRequest `json:"request"`
}

// DownloadRequestStore parks a download selection too large for a query
// string until the command line client fetches its curl config.
type DownloadRequestStore struct {
	client *redis.Client
}

func NewDownloadRequestStore(client *redis.Client) *DownloadRequestStore {
	return &DownloadRequestStore{client: client}
}

func (s *DownloadRequestStore) Save(ctx context.Context, userID string, req bulkdownload.DownloadRequest, ttl time.Duration) (string, error) {
	raw, err := json.Marshal(storedDownloadRequest{UserID: userID, Request: req})
	if err != nil {
		return "", err
	}
	id, err := utils.NewDownloadID()
	if err != nil {
		return "", err
	}
	if err := s.client.Set(ctx, downloadRequestKeyPrefix+id, raw, ttl).Err(); err != nil {
		return "", fmt.Errorf("store download request: %w", err)
	}
	return id, nil
}

// Load returns the request saved under id by userID.
func (s *DownloadRequestStore) Load(ctx context.Context, id, userID string) (bulkdownload.DownloadRequest, error) {
	raw, err := s.client.Get(ctx, downloadRequestKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return bulkdownload.DownloadRequest{}, ErrDownloadRequestNotFound
	}
	if err != nil {
		return bulkdownload.DownloadRequest{}, err
	}

	var stored storedDownloadRequest
	if err := json.Unmarshal(raw, &stored); err != nil {
		return bulkdownload.DownloadRequest{}, fmt.Errorf("decode download request: %w", err)
	}
	if stored.UserID != userID {
		return bulkdownload.DownloadRequest{}, ErrDownloadRequestNotFound
	}
	return stored.Request, nil
}
