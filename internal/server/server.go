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

	"github.com/Ezio016/MyFridge/internal/chef"
	"github.com/Ezio016/MyFridge/internal/database"
	"github.com/Ezio016/MyFridge/internal/handler"
	"github.com/Ezio016/MyFridge/internal/inventory"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/metrics"
	"github.com/Ezio016/MyFridge/internal/recipes"
	"github.com/Ezio016/MyFridge/internal/shopping"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	inventoryService inventory.Service
	recipeService    recipes.Service
	shoppingService  shopping.Service
	chefService      chef.Service
}

// NewServer creates a new Server instance
func NewServer(port int, dbPool database.Pool, inventoryService inventory.Service, recipeService recipes.Service, shoppingService shopping.Service, chefService chef.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
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
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(inventoryService))
			r.Post("/", handler.HandleCreateItem(inventoryService))
			r.Get("/search", handler.HandleSearchItems(inventoryService))
			r.Get("/expiring", handler.HandleExpiringItems(inventoryService))
			r.Get("/expired", handler.HandleExpiredItems(inventoryService))
			r.Get("/summary", handler.HandleInventorySummary(inventoryService))
			r.Get("/{id}", handler.HandleGetItem(inventoryService))
			r.Patch("/{id}", handler.HandleUpdateItem(inventoryService))
			r.Delete("/{id}", handler.HandleDeleteItem(inventoryService))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(recipeService))
			r.Get("/random", handler.HandleRandomRecipes(recipeService))
			r.Get("/quick", handler.HandleQuickRecipes(recipeService))
			r.Get("/search", handler.HandleSearchRecipes(recipeService))
			r.Get("/by-tag", handler.HandleRecipesByTag(recipeService))
			r.Get("/by-ingredients", handler.HandleRecipesByIngredients(recipeService))
			r.Get("/suggest", handler.HandleSuggest(recipeService))
			r.Get("/{id}", handler.HandleGetRecipe(recipeService))
			r.Get("/{id}/readiness", handler.HandleEvaluateRecipe(recipeService))
		})

		r.Route("/shopping", func(r chi.Router) {
			r.Get("/", handler.HandleShoppingList(shoppingService))
			r.Post("/", handler.HandleAddShoppingItem(shoppingService))
			r.Delete("/purchased", handler.HandleClearPurchased(shoppingService))
			r.Post("/from-recipe/{id}", handler.HandleQueueMissingIngredients(shoppingService))
			r.Patch("/{id}", handler.HandleSetPurchased(shoppingService))
			r.Delete("/{id}", handler.HandleRemoveShoppingItem(shoppingService))
		})

		r.Post("/chef/ask", handler.HandleAskChef(chefService))
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		inventoryService: inventoryService,
		recipeService:    recipeService,
		shoppingService:  shoppingService,
		chefService:      chefService,
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

		// Scope a request ID into the context
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

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
