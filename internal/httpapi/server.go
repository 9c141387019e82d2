// Package httpapi serves generated leaderboards read-only over HTTP, for
// previewing a build before it is published.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MINT-SJTU/Evo-SOTA.io/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	GetSummary() types.Summary
	Benchmarks() []types.BenchmarkRef
	Leaderboard(benchmark string) (any, error)
	View(benchmark, category, setting string) (any, error)
	GetDex() (*types.DexLeaderboard, bool)
	Ready() bool
}

func NewMux(svc Service) http.Handler {
	r := chi.NewRouter()
	// Basic middlewares: request id, real ip, recoverer
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	r.Use(MetricsMiddleware)
	r.Use(accessLog)
	// Compression for JSON endpoints
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})

	h := handlers{svc: svc}
	r.Route("/api", func(r chi.Router) {
		r.Get("/summary", h.summary)
		r.Get("/benchmarks", h.benchmarks)
		r.Get("/leaderboards/{benchmark}", h.leaderboard)
		r.Get("/leaderboards/{benchmark}/{category}", h.view)
		r.Get("/dex", h.dex)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if svc.Ready() {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte("ready"))
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("loading"))
	})

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

type handlers struct{ svc Service }

// summary godoc
// @Summary      Home page summary
// @Description  Totals, category counts and top five per benchmark (data.json).
// @Tags         leaderboards
// @Produce      json
// @Success      200  {object}  types.Summary
// @Router       /api/summary [get]
func (h handlers) summary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.svc.GetSummary())
}

// benchmarks godoc
// @Summary      List leaderboards
// @Tags         leaderboards
// @Produce      json
// @Success      200  {object}  types.BenchmarksResponse
// @Router       /api/benchmarks [get]
func (h handlers) benchmarks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, types.BenchmarksResponse{Benchmarks: h.svc.Benchmarks()})
}

// leaderboard godoc
// @Summary      One benchmark file
// @Description  libero and metaworld return three categories; calvin returns them per setting.
// @Tags         leaderboards
// @Produce      json
// @Param        benchmark  path  string  true  "libero, metaworld or calvin"
// @Success      200
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/leaderboards/{benchmark} [get]
func (h handlers) leaderboard(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Leaderboard(chi.URLParam(r, "benchmark"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, v)
}

// view godoc
// @Summary      One ranked category
// @Tags         leaderboards
// @Produce      json
// @Param        benchmark  path   string  true   "libero, metaworld or calvin"
// @Param        category   path   string  true   "standard_opensource, standard_closed or non_standard"
// @Param        setting    query  string  false  "Calvin split: abcd_d, abc_d (default) or d_d"
// @Success      200
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/leaderboards/{benchmark}/{category} [get]
func (h handlers) view(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.View(chi.URLParam(r, "benchmark"), chi.URLParam(r, "category"), r.URL.Query().Get("setting"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, v)
}

// dex godoc
// @Summary      Dexterous manipulation leaderboard
// @Tags         dex
// @Produce      json
// @Success      200  {object}  types.DexLeaderboard
// @Failure      404  {object}  types.ErrorResponse
// @Router       /api/dex [get]
func (h handlers) dex(w http.ResponseWriter, r *http.Request) {
	lb, ok := h.svc.GetDex()
	if !ok {
		writeJSONError(w, http.StatusNotFound, "dex leaderboard not built")
		return
	}
	writeJSON(w, lb)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		writeJSONError(w, http.StatusInternalServerError, "failed to encode response")
	}
}
