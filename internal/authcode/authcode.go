// Package authcode issues single-use numeric codes that let a command line
// client call a fixed set of endpoints on behalf of a user.
package authcode

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/rohits-web03/cellportal/internal/telemetry"
)

var (
	ErrInvalidCode = errors.New("invalid or expired auth code")
	ErrWrongScope  = errors.New("auth code is not valid for this path")
	ErrCollision   = errors.New("auth code already in use")
)

// codeSpace keeps codes exactly representable as JSON numbers.
var codeSpace = big.NewInt(1 << 53)

const maxIssueAttempts = 5

type Code struct {
	Value     int64     `json:"value"`
	UserID    string    `json:"user_id"`
	Paths     []string  `json:"paths"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Allows reports whether the code was issued for requestPath.
func (c Code) Allows(requestPath string) bool {
	requestPath = NormalizePath(requestPath)
	for _, p := range c.Paths {
		if NormalizePath(p) == requestPath {
			return true
		}
	}
	return false
}

// NormalizePath drops trailing slashes so scope paths compare equal with or
// without them.
func NormalizePath(p string) string {
	if p == "/" {
		return p
	}
	return strings.TrimRight(p, "/")
}

// Store persists codes until they expire or are redeemed.
type Store interface {
	// Create stores code unless its value is taken; it reports ErrCollision
	// in that case.
	Create(ctx context.Context, code Code, ttl time.Duration) error
	// Redeem atomically consumes the code when it allows requestPath. A code
	// presented for another path is left in place and ErrWrongScope returned.
	Redeem(ctx context.Context, value int64, requestPath string) (Code, error)
}

type Issuer struct {
	store    Store
	log      *slog.Logger
	metrics  *telemetry.Metrics
	now      func() time.Time
	generate func() (int64, error)
}

func NewIssuer(store Store, log *slog.Logger, metrics *telemetry.Metrics) *Issuer {
	if log == nil {
		log = slog.Default()
	}
	return &Issuer{
		store:    store,
		log:      log,
		metrics:  metrics,
		now:      time.Now,
		generate: Generate,
	}
}

// Generate returns a random code in [1, 2^53).
func Generate() (int64, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return 0, err
	}
	if n.Sign() == 0 {
		return 1, nil
	}
	return n.Int64(), nil
}

// Issue creates a code for userID valid for ttl on exactly the given paths.
func (i *Issuer) Issue(ctx context.Context, userID string, ttl time.Duration, paths []string) (Code, error) {
	if userID == "" {
		return Code{}, errors.New("auth code requires a user")
	}
	if len(paths) == 0 {
		return Code{}, errors.New("auth code requires at least one path")
	}

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		value, err := i.generate()
		if err != nil {
			return Code{}, fmt.Errorf("generate auth code: %w", err)
		}
		code := Code{
			Value:     value,
			UserID:    userID,
			Paths:     append([]string(nil), paths...),
			ExpiresAt: i.now().Add(ttl),
		}
		err = i.store.Create(ctx, code, ttl)
		if errors.Is(err, ErrCollision) {
			continue
		}
		if err != nil {
			return Code{}, fmt.Errorf("store auth code: %w", err)
		}
		i.metrics.AuthCode("issued")
		return code, nil
	}
	return Code{}, fmt.Errorf("issue auth code: %w", ErrCollision)
}

// Redeem consumes the code for requestPath and returns the user it was
// issued to.
func (i *Issuer) Redeem(ctx context.Context, value int64, requestPath string) (string, error) {
	code, err := i.store.Redeem(ctx, value, requestPath)
	if err != nil {
		if errors.Is(err, ErrInvalidCode) || errors.Is(err, ErrWrongScope) {
			i.metrics.AuthCode("rejected")
			i.log.WarnContext(ctx, "Auth code rejected", "path", requestPath, "error", err)
		}
		return "", err
	}
	if !i.now().Before(code.ExpiresAt) {
		i.metrics.AuthCode("rejected")
		return "", ErrInvalidCode
	}
	i.metrics.AuthCode("redeemed")
	return code.UserID, nil
}
