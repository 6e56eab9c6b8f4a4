package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/svmehta/papertrade/internal/service"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// NewRouter creates a chi router with all routes registered, request
// logging, and the bearer-token gate on the API group.
func NewRouter(
	instrumentSvc *service.InstrumentService,
	orderSvc *service.OrderService,
	portfolioSvc *service.PortfolioService,
	authToken string,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Global middleware.
	r.Use(requestLogging(logger))

	// Create handlers.
	instrumentH := NewInstrumentHandler(instrumentSvc)
	orderH := NewOrderHandler(orderSvc)
	portfolioH := NewPortfolioHandler(portfolioSvc)

	// Health check — the only unauthenticated endpoint.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Trading API",
			"version": Version,
			"status":  "running",
		})
	})

	// Authenticated API.
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(bearerAuth(authToken))
		api.Use(contentTypeJSON)

		api.Get("/instruments", instrumentH.ListInstruments)

		api.Post("/orders", orderH.SubmitOrder)
		api.Get("/orders", orderH.ListOrders)
		api.Get("/orders/{order_id}", orderH.GetOrder)

		api.Get("/trades", portfolioH.ListTrades)
		api.Get("/portfolio", portfolioH.GetPortfolio)
	})

	return r
}

// requestLogging returns middleware that logs each request's method,
// path, status code, and duration using slog. This log doubles as the
// append-only operational record of every request outcome.
func requestLogging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)
			logger.Info("request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

// contentTypeJSON is middleware that validates Content-Type for POST,
// PUT, and PATCH requests. If the Content-Type header doesn't start
// with "application/json", it returns 422 before the handler runs.
func contentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct == "" || !strings.HasPrefix(ct, "application/json") {
				WriteError(w, http.StatusUnprocessableEntity, "ValidationError",
					"Content-Type must be application/json")
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
