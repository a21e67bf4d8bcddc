package api

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/rohits-web03/cellportal/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rohits-web03/cellportal/internal/api/handlers"
	"github.com/rohits-web03/cellportal/internal/api/middleware"
	"github.com/rs/cors"
)

type RouterDeps struct {
	Handler   *handlers.Handler
	AuthCodes middleware.AuthCodeRedeemer
	JWTSecret string
	Cors      cors.Options
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

func SetupRouter(deps RouterDeps) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(deps.Cors)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	if deps.Gatherer != nil {
		mainMux.Handle("GET /metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	// ---------- SESSION ROUTES ----------
	session := middleware.SessionAuth(deps.JWTSecret)
	h := deps.Handler

	mainMux.Handle("POST /api/v1/bulk_download/auth_code", session(http.HandlerFunc(h.CreateAuthCode)))
	mainMux.Handle("GET /api/v1/bulk_download/summary", session(http.HandlerFunc(h.Summary)))
	mainMux.Handle("GET /api/v1/bulk_download/studies", session(http.HandlerFunc(h.Studies)))

	// ---------- AUTH CODE ROUTES ----------
	// Codes are scoped to the full request path, so these are not mounted
	// under a stripped prefix.
	authCode := middleware.AuthCode(deps.AuthCodes)

	mainMux.Handle("GET "+handlers.CurlConfigPath, authCode(http.HandlerFunc(h.GenerateCurlConfig)))
	mainMux.Handle("GET /api/v1/studies/{accession}/manifest", authCode(http.HandlerFunc(h.StudyManifest)))

	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	log.Info("Router initialized")

	handler := c.Handler(mainMux)
	handler = middleware.Logger(log)(handler)
	return handler
}
