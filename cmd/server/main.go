package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/profilepilot/photo-coach/internal/cache"
	"github.com/profilepilot/photo-coach/internal/coach"
	"github.com/profilepilot/photo-coach/internal/config"
	apperrors "github.com/profilepilot/photo-coach/internal/errors"
	"github.com/profilepilot/photo-coach/internal/middleware"
	"github.com/profilepilot/photo-coach/internal/monitoring"
	"github.com/profilepilot/photo-coach/internal/oracle"
	"github.com/profilepilot/photo-coach/internal/types"
)

const cacheTTL = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := monitoring.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger.Logger)

	featureOracle, feedbackOracle, err := oracle.New(cfg.Oracle)
	if err != nil {
		logger.Error("failed to build oracle provider", "error", err)
		os.Exit(1)
	}

	metrics, registry := monitoring.NewMetrics()
	service := coach.NewService(featureOracle, feedbackOracle, logger, metrics,
		coach.WithSelection(cfg.MaxSelection, nil),
		coach.WithRanges(cfg.Ranges),
		coach.WithMaxImageWidth(cfg.MaxImageWidth),
	)

	gin.SetMode(gin.ReleaseMode)
	router := setupRouter(cfg, service, logger, metrics, registry)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("photo coach listening", "addr", cfg.Addr, "provider", featureOracle.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}

// setupRouter wires middleware and routes. Split out so tests can exercise
// the full HTTP surface in-process.
func setupRouter(cfg *config.Config, service *coach.Service, logger *monitoring.Logger, metrics *monitoring.Metrics, registry *prometheus.Registry) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(monitoring.Middleware(metrics, logger))
	r.Use(apperrors.RecoveryHandler())
	r.Use(apperrors.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:       12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter(cfg.RequestsPerMinute)
	responseCache := cache.New(cacheTTL)

	startTime := time.Now()
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"provider":       cfg.Oracle.Provider,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.POST("/analyze", limiter.Handler(), analyzeHandler(cfg, service, responseCache))

	return r
}

// analyzeHandler validates the request, memoizes by payload hash, and runs
// the pipeline. Per-photo oracle failures surface as null scores inside a
// 200 response; only request-level problems produce error statuses.
func analyzeHandler(cfg *config.Config, service *coach.Service, responseCache *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxBodyBytes)

		body, err := c.GetRawData()
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				c.Error(apperrors.NewPayloadTooLargeError(cfg.MaxBodyBytes))
				return
			}
			c.Error(apperrors.NewValidationError("failed to read request body"))
			return
		}

		var req types.AnalyzeRequest
		if err := json.Unmarshal(body, &req); err != nil {
			c.Error(apperrors.NewValidationError("request body must be JSON with an images array"))
			return
		}
		if len(req.Images) == 0 {
			c.Error(apperrors.NewValidationError("images must be a non-empty array"))
			return
		}
		if len(req.Images) > cfg.MaxPhotos {
			c.Error(apperrors.NewValidationError("too many images in one request"))
			return
		}

		cacheKey := cache.Key(body)
		if cached, ok := responseCache.Get(cacheKey); ok {
			c.Header("X-Cache", "hit")
			c.Data(http.StatusOK, "application/json", cached)
			return
		}

		// Per-photo decode failures become null-scored entries, keeping
		// their original index, rather than rejecting the batch.
		images := make([][]byte, len(req.Images))
		for i, payload := range req.Images {
			if data, err := coach.DecodeImagePayload(payload); err == nil {
				images[i] = data
			}
		}

		analysis, err := service.Analyze(c.Request.Context(), images)
		if err != nil {
			c.Error(apperrors.NewInternalError("analysis failed", err))
			return
		}

		resp := buildResponse(analysis)
		if data, err := json.Marshal(resp); err == nil {
			responseCache.Set(cacheKey, data)
		}
		c.JSON(http.StatusOK, resp)
	}
}

func buildResponse(analysis coach.Analysis) types.AnalyzeResponse {
	resp := types.AnalyzeResponse{
		Photos:       make([]types.PhotoReport, len(analysis.Photos)),
		Scores:       make([]*int, len(analysis.Photos)),
		Order:        analysis.Order,
		ProfileScore: analysis.ProfileScore,
	}
	for i, p := range analysis.Photos {
		report := types.PhotoReport{
			Index:      p.Index,
			Score:      p.Score,
			Role:       string(p.Role),
			Assessment: p.Assessment,
			Error:      p.Err,
		}
		if p.Feedback != nil {
			report.GoodPoints = p.Feedback.GoodPoints
			report.ImprovementPoints = p.Feedback.ImprovementPoints
		}
		resp.Photos[i] = report
		resp.Scores[i] = p.Score
	}
	return resp
}
