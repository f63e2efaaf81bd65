package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/atelierworks/ffe-portal/internal/api/handler"
	"github.com/atelierworks/ffe-portal/internal/api/middleware"
	"github.com/atelierworks/ffe-portal/internal/core/domain"
	"github.com/atelierworks/ffe-portal/internal/core/ports"
)

// Deps bundles the constructed collaborators the router wires into handlers.
type Deps struct {
	Tokens     ports.TokenService
	Auth       ports.AuthService
	Invoices   ports.InvoiceService
	Catalog    ports.CatalogService
	Contractor ports.ContractorService
	Contacts   ports.ContactService
	Mailer     ports.Mailer
	Renderer   ports.InvoiceRenderer

	DB        *sql.DB
	Redis     *redis.Client
	CookieTTL time.Duration
	Log       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ffe"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth, d.CookieTTL)
	invoiceHandler := handler.NewInvoiceHandler(d.Invoices, d.Renderer)
	serviceHandler := handler.NewServiceHandler(d.Catalog)
	contractorHandler := handler.NewContractorHandler(d.Contractor)
	contactHandler := handler.NewContactHandler(d.Contacts)
	emailHandler := handler.NewEmailHandler(d.Mailer)

	authed := middleware.Auth(d.Tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	contractorOnly := middleware.RBAC(domain.RoleContractor)

	// --- Public routes ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/contact", contactHandler.Submit)

	// --- Any authenticated role ---
	e.POST("/api/auth/logout", authHandler.Logout, authed)
	e.GET("/api/services", serviceHandler.List, authed)
	e.GET("/api/contractor/search-admins", contractorHandler.SearchAdmins, authed)
	e.POST("/api/send-email", emailHandler.Send, authed)

	// --- Admin routes ---
	admin := e.Group("/api/admin", authed, adminOnly)
	admin.GET("/invoices", invoiceHandler.List)
	admin.PUT("/invoices/:id", invoiceHandler.UpdateStatus)
	admin.GET("/invoices/:id/pdf", invoiceHandler.PDF)
	admin.POST("/services", serviceHandler.Create)
	admin.DELETE("/services/:id", serviceHandler.Delete)
	admin.GET("/contacts", contactHandler.List)
	admin.PUT("/contacts/:id/resolve", contactHandler.Resolve)
	admin.GET("/contractor-requests", contractorHandler.ListRequests)
	admin.PUT("/contractor-requests/:id", contractorHandler.Decide)

	// --- Contractor routes ---
	contractor := e.Group("/api/contractor", authed, contractorOnly)
	contractor.POST("/requests", contractorHandler.RequestConnection)
	contractor.GET("/connected-admins", contractorHandler.ConnectedAdmins)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.DB, d.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
