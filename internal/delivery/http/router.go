package http

import (
	"net/http"

	"vetclinic-backend/internal/delivery/http/handler"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/domain/entity"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig bundles everything the router wires together
type RouterConfig struct {
	AuthHandler         *handler.AuthHandler
	PetHandler          *handler.PetHandler
	ClientHandler       *handler.ClientHandler
	VeterinarianHandler *handler.VeterinarianHandler
	BranchHandler       *handler.BranchHandler
	AppointmentHandler  *handler.AppointmentHandler
	SpaGroomingHandler  *handler.SpaGroomingHandler
	ProductHandler      *handler.ProductHandler
	CartHandler         *handler.CartHandler
	OrderHandler        *handler.OrderHandler
	CommunityHandler    *handler.CommunityHandler
	NotificationHandler *handler.NotificationHandler
	PermissionHandler   *handler.PermissionHandler
	AuditLogHandler     *handler.AuditLogHandler

	AuthMiddleware    *middleware.AuthMiddleware
	CORSMiddleware    *middleware.CORSMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
	MetricsPath       string
}

type Router struct {
	router *mux.Router
	cfg    RouterConfig
}

func NewRouter(cfg RouterConfig) *Router {
	return &Router{
		router: mux.NewRouter(),
		cfg:    cfg,
	}
}

// Setup registers all routes. Routes with literal paths (/appointments/mine)
// are registered before routes with wildcards (/appointments/{id}) so mux
// matches them first.
func (r *Router) Setup() *mux.Router {
	c := r.cfg

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", c.AuthHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", c.AuthHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/verify-2fa", c.AuthHandler.VerifyTwoFA).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", c.AuthHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(c.AuthMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", c.AuthHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", c.AuthHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public catalog routes
	api.HandleFunc("/branches", c.BranchHandler.ListActive).Methods(http.MethodGet)
	api.HandleFunc("/products", c.ProductHandler.List).Methods(http.MethodGet)

	// Client-only routes
	client := api.NewRoute().Subrouter()
	client.Use(c.AuthMiddleware.Authenticate)
	client.Use(middleware.RequireClient)
	client.HandleFunc("/clients/me", c.ClientHandler.GetMyProfile).Methods(http.MethodGet)
	client.HandleFunc("/clients/me", c.ClientHandler.UpdateMyProfile).Methods(http.MethodPut)
	client.HandleFunc("/pets/mine", c.PetHandler.ListMine).Methods(http.MethodGet)
	client.HandleFunc("/appointments", c.AppointmentHandler.Book).Methods(http.MethodPost)
	client.HandleFunc("/appointments/mine", c.AppointmentHandler.ListMine).Methods(http.MethodGet)
	client.HandleFunc("/spa-grooming", c.SpaGroomingHandler.Book).Methods(http.MethodPost)
	client.HandleFunc("/spa-grooming/mine", c.SpaGroomingHandler.ListMine).Methods(http.MethodGet)
	client.HandleFunc("/cart", c.CartHandler.Get).Methods(http.MethodGet)
	client.HandleFunc("/cart", c.CartHandler.Clear).Methods(http.MethodDelete)
	client.HandleFunc("/cart/items", c.CartHandler.AddItem).Methods(http.MethodPost)
	client.HandleFunc("/cart/items/{productId}", c.CartHandler.UpdateItem).Methods(http.MethodPut)
	client.HandleFunc("/cart/items/{productId}", c.CartHandler.RemoveItem).Methods(http.MethodDelete)
	client.HandleFunc("/orders/checkout", c.OrderHandler.Checkout).Methods(http.MethodPost)
	client.HandleFunc("/orders/mine", c.OrderHandler.ListMine).Methods(http.MethodGet)

	// Veterinarian schedule
	vet := api.NewRoute().Subrouter()
	vet.Use(c.AuthMiddleware.Authenticate)
	vet.Use(middleware.RequireRole(entity.RoleIDAdmin, entity.RoleIDVeterinarian))
	vet.HandleFunc("/appointments/schedule", c.AppointmentHandler.ListMySchedule).Methods(http.MethodGet)

	// Staff routes (admin, veterinarian, receptionist)
	staff := api.NewRoute().Subrouter()
	staff.Use(c.AuthMiddleware.Authenticate)
	staff.Use(middleware.RequireStaff)
	staff.HandleFunc("/clients", c.ClientHandler.ListAll).Methods(http.MethodGet)
	staff.HandleFunc("/clients/{clientId}/pets", c.PetHandler.ListByClient).Methods(http.MethodGet)
	staff.HandleFunc("/clients/{id}", c.ClientHandler.GetByID).Methods(http.MethodGet)
	staff.HandleFunc("/pets", c.PetHandler.ListAll).Methods(http.MethodGet)
	staff.HandleFunc("/appointments", c.AppointmentHandler.ListByBranchAndDate).Methods(http.MethodGet)
	staff.HandleFunc("/appointments/{id}", c.AppointmentHandler.Update).Methods(http.MethodPatch)
	staff.HandleFunc("/spa-grooming", c.SpaGroomingHandler.ListByBranchAndDate).Methods(http.MethodGet)
	staff.HandleFunc("/spa-grooming/{id}", c.SpaGroomingHandler.Update).Methods(http.MethodPatch)

	// Protected routes (any authenticated user). Ownership checks for
	// clients happen in the handlers.
	protected := api.NewRoute().Subrouter()
	protected.Use(c.AuthMiddleware.Authenticate)

	protected.HandleFunc("/veterinarians", c.VeterinarianHandler.ListAll).Methods(http.MethodGet)
	protected.HandleFunc("/veterinarians/{id}", c.VeterinarianHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/branches/{branchId}/veterinarians", c.VeterinarianHandler.ListByBranch).Methods(http.MethodGet)

	protected.HandleFunc("/community/posts", c.CommunityHandler.CreatePost).Methods(http.MethodPost)
	protected.HandleFunc("/community/posts", c.CommunityHandler.ListPosts).Methods(http.MethodGet)
	protected.HandleFunc("/community/posts/{id}", c.CommunityHandler.GetPost).Methods(http.MethodGet)
	protected.HandleFunc("/community/posts/{id}", c.CommunityHandler.DeletePost).Methods(http.MethodDelete)
	protected.HandleFunc("/community/posts/{id}/like", c.CommunityHandler.LikePost).Methods(http.MethodPost)
	protected.HandleFunc("/community/posts/{id}/comments", c.CommunityHandler.CreateComment).Methods(http.MethodPost)

	protected.HandleFunc("/notifications", c.NotificationHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/read-all", c.NotificationHandler.MarkAllRead).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/{id}/read", c.NotificationHandler.MarkRead).Methods(http.MethodPut)

	protected.HandleFunc("/appointments/available-slots", c.AppointmentHandler.GetAvailableSlots).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/available-dates", c.AppointmentHandler.GetAvailableDates).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", c.AppointmentHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}/cancel", c.AppointmentHandler.Cancel).Methods(http.MethodPost)
	protected.HandleFunc("/spa-grooming/available-slots", c.SpaGroomingHandler.GetAvailableSlots).Methods(http.MethodGet)
	protected.HandleFunc("/spa-grooming/{id}/cancel", c.SpaGroomingHandler.Cancel).Methods(http.MethodPost)

	protected.HandleFunc("/pets", c.PetHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/pets/{id}", c.PetHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/pets/{id}", c.PetHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/pets/{id}", c.PetHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/orders/{id}", c.OrderHandler.GetByID).Methods(http.MethodGet)

	protected.HandleFunc("/branches/{id}", c.BranchHandler.GetByID).Methods(http.MethodGet)
	protected.HandleFunc("/products/{id}", c.ProductHandler.GetByID).Methods(http.MethodGet)

	// Front desk routes (admin, receptionist): inventory and order fulfilment
	frontDesk := api.PathPrefix("/admin").Subrouter()
	frontDesk.Use(c.AuthMiddleware.Authenticate)
	frontDesk.Use(middleware.RequireFrontDesk)
	frontDesk.HandleFunc("/products", c.ProductHandler.Create).Methods(http.MethodPost)
	frontDesk.HandleFunc("/products/low-stock", c.ProductHandler.ListLowStock).Methods(http.MethodGet)
	frontDesk.HandleFunc("/products/{id}", c.ProductHandler.Update).Methods(http.MethodPut)
	frontDesk.HandleFunc("/products/{id}", c.ProductHandler.Delete).Methods(http.MethodDelete)
	frontDesk.HandleFunc("/orders", c.OrderHandler.ListAll).Methods(http.MethodGet)
	frontDesk.HandleFunc("/orders/{id}/status", c.OrderHandler.UpdateStatus).Methods(http.MethodPut)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(c.AuthMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/branches", c.BranchHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/branches", c.BranchHandler.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/branches/{id}", c.BranchHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/branches/{id}", c.BranchHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/veterinarians", c.VeterinarianHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/veterinarians/{id}", c.VeterinarianHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/permissions", c.PermissionHandler.GetMatrix).Methods(http.MethodGet)
	admin.HandleFunc("/permissions", c.PermissionHandler.SetPermission).Methods(http.MethodPut)
	admin.HandleFunc("/audit-logs", c.AuditLogHandler.List).Methods(http.MethodGet)

	// Prometheus scrape endpoint, outside the versioned API
	if c.MetricsMiddleware != nil {
		r.router.Use(c.MetricsMiddleware.Handle)
		r.router.Handle(c.MetricsPath, promhttp.Handler()).Methods(http.MethodGet)
	}

	// Add CORS middleware
	r.router.Use(c.CORSMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
