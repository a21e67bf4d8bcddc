package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rohits-web03/cellportal/internal/api/handlers"
	"github.com/rohits-web03/cellportal/internal/authcode"
	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/rohits-web03/cellportal/internal/models"
	"github.com/rohits-web03/cellportal/internal/repositories"
	"github.com/rohits-web03/cellportal/internal/telemetry"
	"github.com/rs/cors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "router-test-secret"

type fakeSigner struct{}

func (fakeSigner) SignURL(_ context.Context, bucket, object string, _ time.Duration) (string, error) {
	return "https://storage.example.org/" + bucket + "/" + object + "?X-Amz-Signature=abc", nil
}

type testServer struct {
	server *httptest.Server
	db     *gorm.DB
	user   models.User
}

func int64Ptr(v int64) *int64 { return &v }

func newTestServer(t *testing.T, quota int64) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, repositories.Migrate(db))

	owner := models.User{Email: "owner@example.org"}
	user := models.User{Email: "user@example.org"}
	require.NoError(t, db.Create(&owner).Error)
	require.NoError(t, db.Create(&user).Error)

	public := models.Study{Accession: "SCP1", Name: "Public", BucketID: "bucket-1", UserID: owner.ID, Public: true}
	private := models.Study{Accession: "SCP2", Name: "Private", BucketID: "bucket-2", UserID: owner.ID}
	require.NoError(t, db.Create(&public).Error)
	require.NoError(t, db.Create(&private).Error)
	require.NoError(t, db.Create(&models.StudyFile{
		StudyID:        public.ID,
		Name:           "metadata.tsv",
		UploadFileName: "metadata.tsv",
		FileType:       models.FileTypeMetadata,
		UploadFileSize: int64Ptr(100),
	}).Error)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	registry := prometheus.NewRegistry()
	metrics := telemetry.NewMetrics(registry)
	users := repositories.NewUserRepository(db)
	studies := repositories.NewStudyRepository(db)
	issuer := authcode.NewIssuer(repositories.NewAuthCodeStore(rdb), nil, metrics)

	service := bulkdownload.NewService(bulkdownload.Deps{
		Catalog:   studies,
		Access:    studies,
		Quota:     users,
		AuthCodes: issuer,
		Signers:   func() (bulkdownload.URLSigner, error) { return fakeSigner{}, nil },
		Reporter:  telemetry.NewReporter(nil, metrics),
		Metrics:   metrics,
	}, bulkdownload.Options{
		DownloadQuota:  quota,
		SignedURLTTL:   time.Hour,
		AuthCodeTTL:    30 * time.Minute,
		MaxConcurrency: 4,
		Retry:          bulkdownload.RetryPolicy{MaxAttempts: 1},
		BaseURL:        "https://portal.example.org",
	})

	handler := handlers.NewHandler(service, issuer, repositories.NewDownloadRequestStore(rdb), users, 30*time.Minute, nil)
	router := SetupRouter(RouterDeps{
		Handler:   handler,
		AuthCodes: issuer,
		JWTSecret: testSecret,
		Cors:      cors.Options{AllowedOrigins: []string{"https://portal.example.org"}},
		Gatherer:  registry,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testServer{server: srv, db: db, user: user}
}

func (s *testServer) sessionToken(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": s.user.ID,
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, target, token string, body io.Reader) (*http.Response, string) {
	t.Helper()
	req, err := http.NewRequest(method, s.server.URL+target, body)
	require.NoError(t, err)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	resp, err := s.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func (s *testServer) authCode(t *testing.T, body string) handlers.AuthCodeResponse {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	resp, raw := s.do(t, http.MethodPost, "/api/v1/bulk_download/auth_code", s.sessionToken(t), reader)
	require.Equal(t, http.StatusOK, resp.StatusCode, raw)

	var out handlers.AuthCodeResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

var manifestURLRegexp = regexp.MustCompile(`url="(https://portal\.example\.org/api/v1/studies/[^"]+)"`)

func TestBulkDownloadFlow(t *testing.T) {
	s := newTestServer(t, 1_000_000)

	code := s.authCode(t, "")
	assert.Positive(t, code.AuthCode)
	assert.Equal(t, int64(1800), code.TimeInterval)
	assert.Empty(t, code.DownloadID)

	target := "/api/v1/bulk_download/generate_curl_config?accessions=SCP1&auth_code=" + strconv.FormatInt(code.AuthCode, 10)
	resp, cfg := s.do(t, http.MethodGet, target, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, cfg)
	assert.Equal(t, `attachment; filename="cfg.txt"`, resp.Header.Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(cfg, "--create-dirs\n--compressed\n\n"))
	assert.Contains(t, cfg, `url="https://storage.example.org/bucket-1/metadata.tsv?X-Amz-Signature=abc"`)
	assert.Contains(t, cfg, `output="SCP1/metadata/metadata.tsv"`)
	assert.Contains(t, cfg, `output="SCP1/file_supplemental_info.tsv"`)

	// the code is single use
	resp, _ = s.do(t, http.MethodGet, target, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var charged models.User
	require.NoError(t, s.db.First(&charged, "id = ?", s.user.ID).Error)
	assert.Equal(t, int64(100), charged.DownloadQuotaUsed)

	match := manifestURLRegexp.FindStringSubmatch(cfg)
	require.Len(t, match, 2)
	manifestURL, err := url.Parse(match[1])
	require.NoError(t, err)

	resp, tsv := s.do(t, http.MethodGet, manifestURL.RequestURI(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, tsv)
	assert.Equal(t, `attachment; filename="file_supplemental_info.tsv"`, resp.Header.Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(tsv, "filename\tfile_type\t"))
	assert.Contains(t, tsv, "metadata.tsv")

	resp, body := s.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "cellportal_curl_configs_total 1")
}

func TestAuthCodeScopedToCurlConfig(t *testing.T) {
	s := newTestServer(t, 1_000_000)
	code := s.authCode(t, "")

	resp, _ := s.do(t, http.MethodGet, "/api/v1/studies/SCP1/manifest?auth_code="+strconv.FormatInt(code.AuthCode, 10), "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// still usable for the path it was issued for
	resp, body := s.do(t, http.MethodGet,
		"/api/v1/bulk_download/generate_curl_config?accessions=SCP1&auth_code="+strconv.FormatInt(code.AuthCode, 10), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, body)
}

func TestGenerateCurlConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		quota      int64
		query      string
		wantStatus int
		wantType   string
	}{
		{name: "forbidden study", quota: 1_000_000, query: "accessions=SCP1,SCP2", wantStatus: http.StatusForbidden, wantType: "permission"},
		{name: "quota exceeded", quota: 10, query: "accessions=SCP1", wantStatus: http.StatusForbidden, wantType: "quota_exceeded"},
		{name: "no matching accessions", quota: 1_000_000, query: "accessions=SCP999", wantStatus: http.StatusBadRequest, wantType: "validation"},
		{name: "malformed file ids", quota: 1_000_000, query: "file_ids=not-a-uuid", wantStatus: http.StatusBadRequest, wantType: "validation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, tt.quota)
			code := s.authCode(t, "")

			resp, body := s.do(t, http.MethodGet,
				"/api/v1/bulk_download/generate_curl_config?"+tt.query+"&auth_code="+strconv.FormatInt(code.AuthCode, 10), "", nil)
			require.Equal(t, tt.wantStatus, resp.StatusCode, body)

			var payload struct {
				Success bool           `json:"success"`
				Data    map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal([]byte(body), &payload))
			assert.False(t, payload.Success)
			assert.Equal(t, tt.wantType, payload.Data["error_type"])

			var user models.User
			require.NoError(t, s.db.First(&user, "id = ?", s.user.ID).Error)
			assert.Zero(t, user.DownloadQuotaUsed)
		})
	}
}

func TestGenerateCurlConfig_StoredRequest(t *testing.T) {
	s := newTestServer(t, 1_000_000)

	var file models.StudyFile
	require.NoError(t, s.db.First(&file, "upload_file_name = ?", "metadata.tsv").Error)

	code := s.authCode(t, `{"file_ids":["`+file.ID+`"]}`)
	require.NotEmpty(t, code.DownloadID)

	resp, cfg := s.do(t, http.MethodGet,
		"/api/v1/bulk_download/generate_curl_config?download_id="+code.DownloadID+"&auth_code="+strconv.FormatInt(code.AuthCode, 10), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, cfg)
	assert.Contains(t, cfg, `output="SCP1/metadata/metadata.tsv"`)
}

func TestSessionRoutes(t *testing.T) {
	s := newTestServer(t, 1_000_000)
	token := s.sessionToken(t)

	resp, _ := s.do(t, http.MethodGet, "/api/v1/bulk_download/summary?accessions=SCP1", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body := s.do(t, http.MethodGet, "/api/v1/bulk_download/summary?accessions=SCP1&file_types=Metadata,Cluster", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var summary map[string]bulkdownload.FileTypeSummary
	require.NoError(t, json.Unmarshal([]byte(body), &summary))
	assert.Equal(t, map[string]bulkdownload.FileTypeSummary{
		models.FileTypeMetadata: {TotalFiles: 1, TotalBytes: 100},
		models.FileTypeCluster:  {},
	}, summary)

	resp, body = s.do(t, http.MethodGet, "/api/v1/bulk_download/studies?accessions=SCP1", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)
	var info []bulkdownload.StudyDownloadInfo
	require.NoError(t, json.Unmarshal([]byte(body), &info))
	require.Len(t, info, 1)
	assert.Equal(t, "SCP1", info[0].Accession)
	require.Len(t, info[0].StudyFiles, 1)
	assert.Equal(t, int64(100), info[0].StudyFiles[0].UploadFileSize)

	resp, _ = s.do(t, http.MethodGet, "/api/v1/bulk_download/summary?accessions=SCP2", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)
}
