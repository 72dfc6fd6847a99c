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

	"github.com/itemsim/server/internal/auth"
	"github.com/itemsim/server/internal/character"
	"github.com/itemsim/server/internal/database"
	"github.com/itemsim/server/internal/equipment"
	"github.com/itemsim/server/internal/handler"
	"github.com/itemsim/server/internal/item"
	"github.com/itemsim/server/internal/logger"
	"github.com/itemsim/server/internal/market"
	"github.com/itemsim/server/internal/metrics"
	"github.com/itemsim/server/internal/middleware"
	"github.com/itemsim/server/internal/user"
)

// Services bundles everything the router needs
type Services struct {
	User      user.Service
	Character character.Service
	Equipment equipment.Service
	Market    market.Service
	Item      item.Service
}

type Server struct {
	httpServer *http.Server
	userPool   database.Pool
	gamePool   database.Pool
}

// NewServer creates a new Server instance and mounts all routes
func NewServer(port int, issuer *auth.TokenIssuer, userPool, gamePool database.Pool, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack runs outermost to innermost
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(userPool, gamePool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Account routes (public)
		r.Post("/sign-up", handler.HandleSignUp(svcs.User))
		r.Post("/sign-in", handler.HandleSignIn(svcs.User))

		// Catalog routes
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svcs.Item))
			r.Get("/{itemCode}", handler.HandleGetItem(svcs.Item))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(issuer, svcs.User))
				r.Post("/", handler.HandleCreateItem(svcs.Item))
				r.Patch("/{itemCode}", handler.HandleUpdateItem(svcs.Item))
			})
		})

		// Character routes
		r.Route("/characters", func(r chi.Router) {
			// Character detail view is public, but the owner sees more
			r.With(middleware.OptionalAuth(issuer, svcs.User)).
				Get("/{characterID}", handler.HandleGetCharacter(svcs.Character))

			// Equipment listing is public information
			r.Get("/{characterID}/equipment", handler.HandleListEquipment(svcs.Character))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(issuer, svcs.User))

				r.Post("/", handler.HandleCreateCharacter(svcs.Character))
				r.Delete("/{characterID}", handler.HandleDeleteCharacter(svcs.Character))
				r.Get("/{characterID}/inventory", handler.HandleListInventory(svcs.Character))
				r.Post("/{characterID}/money", handler.HandleGrantMoney(svcs.Character))

				r.Post("/{characterID}/equipment", handler.HandleEquip(svcs.Equipment))
				r.Delete("/{characterID}/equipment/{itemCode}", handler.HandleUnequip(svcs.Equipment))

				r.Post("/{characterID}/purchases", handler.HandleBuy(svcs.Market))
				r.Post("/{characterID}/sales", handler.HandleSell(svcs.Market))
			})
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		userPool: userPool,
		gamePool: gamePool,
	}
}

// RequestSizeLimitMiddleware caps request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
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
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
