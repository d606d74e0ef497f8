package server

import (
	"context"
	"net/http"
	"time"

	v1 "github.com/Xunop/amana-bookstore/internal/api/v1"
	"github.com/Xunop/amana-bookstore/internal/config"
	"github.com/Xunop/amana-bookstore/internal/http/response"
	"github.com/Xunop/amana-bookstore/internal/log"
	"github.com/Xunop/amana-bookstore/internal/middleware"
	"github.com/Xunop/amana-bookstore/internal/model"
	"github.com/Xunop/amana-bookstore/internal/store"
	"github.com/Xunop/amana-bookstore/internal/worker"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const welcomeMessage = "📚 Welcome to the Amana Bookstore API"

// StartServer starts the HTTP server in the background. The rate limiter
// lives as long as ctx.
func StartServer(ctx context.Context, opts *config.Options, store *store.Store, pool worker.WorkPool) *http.Server {
	server := &http.Server{
		Addr:              opts.Addr(),
		Handler:           setupHandler(ctx, opts, store, pool),
		ReadHeaderTimeout: 10 * time.Second,
	}

	startHTTPServer(server)

	return server
}

func startHTTPServer(server *http.Server) {
	go func() {
		log.Info("Starting HTTP server", zap.String("listen_address", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()
}

// Shutdown stops accepting connections and waits for in-flight requests,
// at most timeout.
func Shutdown(server *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return server.Shutdown(ctx)
}

func setupHandler(ctx context.Context, opts *config.Options, store *store.Store, pool worker.WorkPool) http.Handler {
	router := mux.NewRouter()

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, r, "Route not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(response.MethodNotAllowed)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, r, model.Banner{
			Message: welcomeMessage,
			Routes:  []string{"/books", "/reviews"},
		})
	}).Methods(http.MethodGet).Name("banner")

	// Setup the API routes
	v1.Server(router, v1.NewHandler(store))

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if err := store.Ping(r.Context()); err != nil {
			response.ServerError(w, r, err)
			return
		}
		response.Text(w, r, "OK")
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		response.Text(w, r, config.Version)
	}).Name("version")

	// The chain wraps the router so unmatched requests are logged too.
	m := middleware.NewMiddleware(pool, opts.MaxBodySize)
	chain := []func(http.Handler) http.Handler{
		m.RequestID,
		m.ClientIP,
		m.AccessLog,
		m.Recovery,
		m.RequestLog,
		m.HandleCORS,
	}
	if opts.RateLimitRPS > 0 {
		chain = append(chain, middleware.NewRateLimiter(ctx, opts.RateLimitRPS, opts.RateLimitBurst).Middleware)
	}
	chain = append(chain, m.LimitBody)

	return middleware.Chain(router, chain...)
}
