package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rohits-web03/cellportal/internal/authcode"
	"github.com/rohits-web03/cellportal/internal/utils"
)

type contextKey string

const UserIDKey contextKey = "userID"

// UserID returns the authenticated user set by SessionAuth or AuthCode.
func UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok && userID != ""
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func unauthorized(w http.ResponseWriter, message string) {
	utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
		Success: false,
		Message: message,
	})
}

func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// SessionAuth accepts requests carrying an HMAC-signed session JWT, from the
// "token" cookie or a bearer header, with a userId claim.
func SessionAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := sessionToken(r)
			if tokenStr == "" {
				unauthorized(w, "Unauthorized")
				return
			}

			token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				unauthorized(w, "Unauthorized")
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				unauthorized(w, "Unauthorized")
				return
			}

			userID, ok := claims["userId"].(string)
			if !ok || userID == "" {
				unauthorized(w, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// AuthCodeRedeemer consumes a one-time code for a request path.
type AuthCodeRedeemer interface {
	Redeem(ctx context.Context, value int64, requestPath string) (string, error)
}

// AuthCode authenticates a request by redeeming its auth_code query
// parameter for the request path.
func AuthCode(redeemer AuthCodeRedeemer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.URL.Query().Get("auth_code")
			if raw == "" {
				unauthorized(w, "Missing auth_code")
				return
			}
			value, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || value <= 0 {
				unauthorized(w, "Invalid auth_code")
				return
			}

			userID, err := redeemer.Redeem(r.Context(), value, r.URL.Path)
			switch {
			case errors.Is(err, authcode.ErrWrongScope):
				unauthorized(w, "auth_code is not valid for this request")
				return
			case errors.Is(err, authcode.ErrInvalidCode):
				unauthorized(w, "Invalid or expired auth_code")
				return
			case err != nil:
				utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
					Success: false,
					Message: "Internal server error",
				})
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
