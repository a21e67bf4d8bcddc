package handlers

import (
	"net/http"
	"strconv"

	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/rohits-web03/cellportal/internal/utils"
)

// GET /api/v1/studies/{accession}/manifest
// StudyManifest godoc
// @Summary Download a study's file manifest
// @Description Returns the supplemental file info TSV of a study. Authenticated by a one-time auth code.
// @Tags Studies
// @Produce plain
// @Param accession path string true "Study accession"
// @Param auth_code query int true "One-time auth code"
// @Param include_dirs query bool false "Include synced directory files"
// @Success 200 {string} string "file_supplemental_info.tsv"
// @Failure 401 {object} utils.Payload "Invalid or expired auth code"
// @Failure 403 {object} utils.Payload "Missing permission or download agreement"
// @Failure 404 {object} utils.Payload "Study not found"
// @Router /api/v1/studies/{accession}/manifest [get]
func (h *Handler) StudyManifest(w http.ResponseWriter, r *http.Request) {
	user := h.currentUser(w, r)
	if user == nil {
		return
	}

	includeDirs, _ := strconv.ParseBool(r.URL.Query().Get("include_dirs"))
	tsv, err := h.downloads.StudyManifest(r.Context(), user, r.PathValue("accession"), includeDirs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	utils.Attachment(w, bulkdownload.ManifestFilename, "text/tab-separated-values; charset=utf-8", tsv)
}
