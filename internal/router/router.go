package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/account"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/config"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/handler"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/menu"
	mw "github.com/Abdulla-Nurislam/shiny-canteen/internal/middleware"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/session"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/ws"
)

// New creates a Chi router with all application routes wired up.
func New(cfg *config.Config, catalog *menu.Store, accounts *account.Store, sessions *session.Manager, hub *ws.Hub) chi.Router {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // 5 minutes
	}))

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","version":"1.0.0"}`))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(accounts, sessions, cfg.JWTSecret)
	authHandler.RegisterRoutes(r)

	// WebSocket route (handles auth internally via query param)
	r.Get("/ws/orders", func(w http.ResponseWriter, r *http.Request) {
		ws.ServeWS(hub, cfg.JWTSecret, w, r)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(cfg.JWTSecret))

		authHandler.RegisterProtectedRoutes(r)

		// Admin catalog management
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireRole(enum.UserRoleAdmin))
			menuHandler := handler.NewMenuHandler(catalog, cfg.PageSize)
			r.Route("/admin/menu", menuHandler.RegisterRoutes)
		})

		// Customer menu
		browseHandler := handler.NewBrowseHandler(catalog, cfg.PageSize)
		r.Route("/menu", browseHandler.RegisterRoutes)

		// Cart
		cartHandler := handler.NewCartHandler(catalog, sessions)
		r.Route("/cart", cartHandler.RegisterRoutes)

		// Orders
		orderHandler := handler.NewOrderHandler(accounts, sessions, hub)
		r.Route("/orders", orderHandler.RegisterRoutes)

		// Profile
		profileHandler := handler.NewProfileHandler(accounts)
		r.Route("/profile", profileHandler.RegisterRoutes)
	})

	return r
}
