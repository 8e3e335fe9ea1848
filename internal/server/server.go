package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/ApexPredict_Go/internal/database"
	"github.com/osse101/ApexPredict_Go/internal/handler"
	"github.com/osse101/ApexPredict_Go/internal/leaderboard"
	"github.com/osse101/ApexPredict_Go/internal/logger"
	"github.com/osse101/ApexPredict_Go/internal/metrics"
	"github.com/osse101/ApexPredict_Go/internal/prediction"
	"github.com/osse101/ApexPredict_Go/internal/race"
	"github.com/osse101/ApexPredict_Go/internal/results"
	"github.com/osse101/ApexPredict_Go/internal/user"
)

type Server struct {
	httpServer         *http.Server
	dbPool             database.Pool
	userService        user.Service
	raceService        race.Service
	predictionService  prediction.Service
	resultsService     results.Service
	leaderboardService leaderboard.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, userService user.Service, raceService race.Service, predictionService prediction.Service, resultsService results.Service, leaderboardService leaderboard.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// User routes
		r.Route("/users", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(userService))
			r.Get("/", handler.HandleGetUser(userService))
			r.Get("/{id}", handler.HandleGetUserByID(userService))
		})

		// Race calendar routes
		r.Route("/races", func(r chi.Router) {
			r.Post("/", handler.HandleCreateRace(raceService))
			r.Get("/", handler.HandleListRaces(raceService))
			r.Get("/{id}", handler.HandleGetRace(raceService))

			// Prediction routes nested under a race
			r.Post("/{id}/predictions", handler.HandleSubmitPrediction(predictionService))
			r.Get("/{id}/predictions", handler.HandleGetPrediction(predictionService))
			r.Get("/{id}/predictions/score", handler.HandleGetScore(predictionService))

			// Result routes nested under a race
			r.Post("/{id}/results", handler.HandleInsertResults(resultsService))
			r.Get("/{id}/results", handler.HandleGetResults(resultsService))
		})

		r.Get("/drivers", handler.HandleListDrivers(raceService))

		// Leaderboard routes
		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/race/{id}", handler.HandleRaceLeaderboard(leaderboardService))
			r.Get("/season", handler.HandleSeasonLeaderboard(leaderboardService))
			r.Post("/season/recount", handler.HandleRecountSeason(leaderboardService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:             dbPool,
		userService:        userService,
		raceService:        raceService,
		predictionService:  predictionService,
		resultsService:     resultsService,
		leaderboardService: leaderboardService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
