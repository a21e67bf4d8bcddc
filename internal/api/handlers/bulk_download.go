package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/rohits-web03/cellportal/internal/utils"
)

type authCodeRequest struct {
	FileIDs        []string                        `json:"file_ids"`
	FederatedFiles []bulkdownload.FederatedProject `json:"tdr_files"`
}

type AuthCodeResponse struct {
	AuthCode     int64  `json:"auth_code"`
	TimeInterval int64  `json:"time_interval"`
	DownloadID   string `json:"download_id,omitempty"`
}

// POST /api/v1/bulk_download/auth_code
// CreateAuthCode godoc
// @Summary Create a one-time download auth code
// @Description Issues an auth code for generate_curl_config. An optional body of file ids and federated files is stored and referenced by the returned download_id.
// @Tags Bulk Download
// @Accept json
// @Produce json
// @Param request body authCodeRequest false "Files to download"
// @Success 200 {object} AuthCodeResponse
// @Failure 400 {object} utils.Payload "Malformed request body"
// @Failure 401 {object} utils.Payload "Not signed in"
// @Router /api/v1/bulk_download/auth_code [post]
func (h *Handler) CreateAuthCode(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	var body authCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		utils.JSONResponse(w, http.StatusBadRequest, utils.Payload{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	resp := AuthCodeResponse{TimeInterval: int64(h.authCodeTTL.Seconds())}
	if len(body.FileIDs) > 0 || len(body.FederatedFiles) > 0 {
		req := bulkdownload.DownloadRequest{
			FileIDs:        body.FileIDs,
			FederatedFiles: body.FederatedFiles,
		}
		if err := req.Validate(); err != nil {
			h.writeError(w, r, err)
			return
		}
		id, err := h.requests.Save(r.Context(), user.ID, req, h.authCodeTTL)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		resp.DownloadID = id
	}

	code, err := h.authCodes.Issue(r.Context(), user.ID, h.authCodeTTL, []string{CurlConfigPath})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp.AuthCode = code.Value

	utils.WriteJSON(w, http.StatusOK, resp)
}

// GET /api/v1/bulk_download/summary
// Summary godoc
// @Summary Summarize downloadable files
// @Description Returns the number of files and bytes per file type for the requested studies.
// @Tags Bulk Download
// @Produce json
// @Param accessions query string true "Comma separated study accessions"
// @Param file_types query string false "Comma separated file types"
// @Success 200 {object} map[string]bulkdownload.FileTypeSummary
// @Failure 400 {object} utils.Payload "No matching studies"
// @Failure 403 {object} utils.Payload "Missing permission or download agreement"
// @Router /api/v1/bulk_download/summary [get]
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	q := r.URL.Query()
	summary, err := h.downloads.Summary(r.Context(), user,
		utils.SplitQueryParam(q["accessions"]),
		utils.SplitQueryParam(q["file_types"]))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}

// GET /api/v1/bulk_download/studies
// Studies godoc
// @Summary List downloadable files per study
// @Tags Bulk Download
// @Produce json
// @Param accessions query string true "Comma separated study accessions"
// @Success 200 {array} bulkdownload.StudyDownloadInfo
// @Failure 400 {object} utils.Payload "No matching studies"
// @Failure 403 {object} utils.Payload "Missing permission or download agreement"
// @Router /api/v1/bulk_download/studies [get]
func (h *Handler) Studies(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	info, err := h.downloads.DownloadInfo(r.Context(), user, utils.SplitQueryParam(r.URL.Query()["accessions"]))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, info)
}

// GET /api/v1/bulk_download/generate_curl_config
// GenerateCurlConfig godoc
// @Summary Generate a curl config for bulk download
// @Description Returns a curl config file with signed URLs for the selected files. Authenticated by a one-time auth code.
// @Tags Bulk Download
// @Produce plain
// @Param auth_code query int true "One-time auth code"
// @Param accessions query string false "Comma separated study accessions"
// @Param file_types query string false "Comma separated file types"
// @Param file_ids query string false "Comma separated file ids"
// @Param directory query string false "Directory listing name, or all"
// @Param download_id query string false "Stored download request id"
// @Success 200 {string} string "cfg.txt"
// @Failure 400 {object} utils.Payload "Invalid request"
// @Failure 401 {object} utils.Payload "Invalid or expired auth code"
// @Failure 403 {object} utils.Payload "Permission denied or quota exceeded"
// @Router /api/v1/bulk_download/generate_curl_config [get]
func (h *Handler) GenerateCurlConfig(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	q := r.URL.Query()
	req := bulkdownload.DownloadRequest{
		Accessions: utils.SplitQueryParam(q["accessions"]),
		FileTypes:  utils.SplitQueryParam(q["file_types"]),
		FileIDs:    utils.SplitQueryParam(q["file_ids"]),
		Directory:  q.Get("directory"),
	}

	if downloadID := q.Get("download_id"); downloadID != "" {
		stored, err := h.requests.Load(r.Context(), downloadID, user.ID)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		req.FileIDs = append(req.FileIDs, stored.FileIDs...)
		req.FederatedFiles = stored.FederatedFiles
	}

	cfg, err := h.downloads.GenerateCurlConfig(r.Context(), user, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.Attachment(w, "cfg.txt", "text/plain; charset=utf-8", cfg)
}
