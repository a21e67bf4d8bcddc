package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/rohits-web03/cellportal/internal/api/middleware"
	"github.com/rohits-web03/cellportal/internal/authcode"
	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/rohits-web03/cellportal/internal/models"
	"github.com/rohits-web03/cellportal/internal/repositories"
	"github.com/rohits-web03/cellportal/internal/utils"
)

// CurlConfigPath is the only path a bulk download auth code is valid for.
const CurlConfigPath = "/api/v1/bulk_download/generate_curl_config"

type BulkDownloader interface {
	Summary(ctx context.Context, user *models.User, accessions, fileTypes []string) (map[string]bulkdownload.FileTypeSummary, error)
	DownloadInfo(ctx context.Context, user *models.User, accessions []string) ([]bulkdownload.StudyDownloadInfo, error)
	GenerateCurlConfig(ctx context.Context, user *models.User, req bulkdownload.DownloadRequest) (string, error)
	StudyManifest(ctx context.Context, user *models.User, accession string, includeDirs bool) (string, error)
}

type AuthCodeIssuer interface {
	Issue(ctx context.Context, userID string, ttl time.Duration, paths []string) (authcode.Code, error)
}

type DownloadRequestStore interface {
	Save(ctx context.Context, userID string, req bulkdownload.DownloadRequest, ttl time.Duration) (string, error)
	Load(ctx context.Context, id, userID string) (bulkdownload.DownloadRequest, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// Handler serves the bulk download endpoints.
type Handler struct {
	downloads   BulkDownloader
	authCodes   AuthCodeIssuer
	requests    DownloadRequestStore
	users       UserFinder
	authCodeTTL time.Duration
	log         *slog.Logger
}

func NewHandler(downloads BulkDownloader, authCodes AuthCodeIssuer, requests DownloadRequestStore, users UserFinder, authCodeTTL time.Duration, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		downloads:   downloads,
		authCodes:   authCodes,
		requests:    requests,
		users:       users,
		authCodeTTL: authCodeTTL,
		log:         log.With(slog.String("service", "http")),
	}
}

// currentUser loads the user authenticated by the session or auth code
// middleware. It writes the error response itself when it returns nil.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) *models.User {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "Unauthorized",
		})
		return nil
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: "User not found",
		})
		return nil
	}
	if err != nil {
		h.writeError(w, r, err)
		return nil
	}
	return user
}

// writeError maps service errors to status codes and the JSON payload.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *bulkdownload.ValidationError
		permissionErr *bulkdownload.PermissionError
		quotaErr      *bulkdownload.QuotaExceededError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: validationErr.Error(),
			Data:    map[string]any{"error_type": "validation"},
		})
	case errors.As(err, &permissionErr):
		utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
			Success: false,
			Message: permissionErr.Error(),
			Data: map[string]any{
				"error_type":       "permission",
				"forbidden":        permissionErr.Forbidden,
				"lacks_acceptance": permissionErr.LacksAcceptance,
			},
		})
	case errors.As(err, &quotaErr):
		utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
			Success: false,
			Message: quotaErr.Error(),
			Data: map[string]any{
				"error_type": "quota_exceeded",
				"requested":  quotaErr.Requested,
				"allowed":    quotaErr.Allowed,
			},
		})
	case errors.Is(err, bulkdownload.ErrStudyNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Study not found",
		})
	case errors.Is(err, repositories.ErrDownloadRequestNotFound):
		utils.JSONResponse(w, http.StatusNotFound, utils.Payload{
			Success: false,
			Message: "Download request not found or expired",
		})
	case errors.Is(err, authcode.ErrInvalidCode), errors.Is(err, authcode.ErrWrongScope):
		utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
			Success: false,
			Message: err.Error(),
		})
	default:
		h.log.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		utils.JSONResponse(w, http.StatusInternalServerError, utils.Payload{
			Success: false,
			Message: "Internal server error",
		})
	}
}
