// Package routes defines the API routes and URL structure
package routes

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/madenai/arqflow/pkg/api/v1/handlers"
)

/*

To keep this file organized, routes should be organized in the following way:

1. Smallest scope first (i.e. auth routes before admin routes)
2. For similar scopes, put the endpoints in alphabetical order
3. Order routes in GET, POST, PUT, DELETE order.
	a. Within this ordering, param urls (ie /:id) should go last, otherwise fiber will interpret the route slug as that param.
	b. After param considerations, order alphabetically.
4. For clarity, naming should match the action (i.e. GetMetrics, CreateAlert)

*/

// API base configuration
const (
	// DefaultPort is the default port for the API
	DefaultPort = "8080"
	// APIv1Prefix is the prefix for all API endpoints
	APIv1Prefix = "/api/v1"
)

// DefaultBaseURL is the default base URL for the API
var DefaultBaseURL = fmt.Sprintf("http://localhost:%s", DefaultPort)

// Route names for lookup
const (
	// Health check
	HealthCheck = "HealthCheck"

	// Auth routes
	Register = "Register"
	Login    = "Login"
	Me       = "Me"

	// Payment routes
	GetPayments     = "GetPayments"
	GetPayment      = "GetPayment"
	CreatePayment   = "CreatePayment"
	GetSubscription = "GetSubscription"

	// Admin routes
	AdminGetMetrics      = "AdminGetMetrics"
	AdminGetUsageReport  = "AdminGetUsageReport"
	AdminGetUsers        = "AdminGetUsers"
	AdminDeleteUser      = "AdminDeleteUser"
	AdminGetAlerts       = "AdminGetAlerts"
	AdminCreateAlert     = "AdminCreateAlert"
	AdminAckAlert        = "AdminAckAlert"
	AdminGetSubscription = "AdminGetSubscription"
	AdminPutSubscription = "AdminPutSubscription"

	// RPC routes
	RPC = "RPC"
)

// routeCache stores extracted routes for use prior to compilation
var (
	routeCache     map[string]string
	routeCacheMu   sync.RWMutex
	routeCacheInit sync.Once
)

// RegisterRoutes configures all the v1 routes
//
// NOTE: route ordering is important because routes will try and match in the order they are registered.
func RegisterRoutes(
	app *fiber.App,
	authHandler *handlers.AuthHandler,
	paymentHandler *handlers.PaymentHandler,
	adminHandler *handlers.AdminHandler,
	rpcHandler *handlers.RPCHandler,
	authGuard fiber.Handler,
	adminGuard fiber.Handler,
) {
	// API v1 routes
	v1 := app.Group(APIv1Prefix)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	}).Name(HealthCheck)

	// Auth endpoints
	auth := v1.Group("/auth")
	auth.Post("/register", authHandler.Register).Name(Register)
	auth.Post("/login", authHandler.Login).Name(Login)
	auth.Get("/me", authGuard, authHandler.Me).Name(Me)

	// Payment endpoints
	paymentsGroup := v1.Group("/payments", authGuard)
	paymentsGroup.Get("/", paymentHandler.ListPayments).Name(GetPayments)
	paymentsGroup.Get("/:id", paymentHandler.GetPayment).Name(GetPayment)
	paymentsGroup.Post("/", paymentHandler.CreatePayment).Name(CreatePayment)

	// Subscription endpoint (caller's own plan)
	v1.Get("/subscription", authGuard, paymentHandler.GetSubscription).Name(GetSubscription)

	// Admin endpoints
	admin := v1.Group("/admin", authGuard, adminGuard)
	admin.Get("/metrics", adminHandler.GetMetrics).Name(AdminGetMetrics)
	admin.Get("/reports/usage", adminHandler.GetUsageReport).Name(AdminGetUsageReport)
	admin.Get("/users", adminHandler.ListUsers).Name(AdminGetUsers)
	admin.Get("/alerts", adminHandler.ListAlerts).Name(AdminGetAlerts)
	admin.Post("/alerts", adminHandler.CreateAlert).Name(AdminCreateAlert)
	admin.Post("/alerts/:id/ack", adminHandler.AcknowledgeAlert).Name(AdminAckAlert)
	admin.Get("/users/:id/subscription", adminHandler.GetUserSubscription).Name(AdminGetSubscription)
	admin.Put("/users/:id/subscription", adminHandler.UpdateUserSubscription).Name(AdminPutSubscription)
	admin.Delete("/users/:id", adminHandler.DeleteUser).Name(AdminDeleteUser)

	// RPC endpoint as the root handler for all project, budget, schedule, and
	// assistant operations
	v1.Post("/", authGuard, rpcHandler.HandleRPC).Name(RPC)
}

// initRouteCache initializes the route cache by creating a mock app and extracting routes
func initRouteCache() {
	routeCacheInit.Do(func() {
		routeCache = make(map[string]string)

		// Create a mock app
		app := fiber.New()

		// Create empty handlers for route registration
		mockAuthHandler := &handlers.AuthHandler{}
		mockPaymentHandler := &handlers.PaymentHandler{}
		mockAdminHandler := &handlers.AdminHandler{}
		mockRPCHandler := &handlers.RPCHandler{}
		passthrough := func(c *fiber.Ctx) error { return c.Next() }

		// Register routes with mock handlers
		RegisterRoutes(app, mockAuthHandler, mockPaymentHandler, mockAdminHandler, mockRPCHandler, passthrough, passthrough)

		// Extract routes from the app
		for _, route := range app.GetRoutes() {
			if route.Name != "" {
				routeCache[route.Name] = route.Path
			}
		}
	})
}

// GetRoute returns the route pattern for the given route name
func GetRoute(name string) string {
	routeCacheMu.RLock()
	defer routeCacheMu.RUnlock()

	// Initialize cache if needed
	if routeCache == nil {
		routeCacheMu.RUnlock()
		initRouteCache()
		routeCacheMu.RLock()
	}

	return routeCache[name]
}

// BuildURL builds a URL for the given route name and parameters
func BuildURL(routeName string, params map[string]string, queryParams url.Values) string {
	route := GetRoute(routeName)
	if route == "" {
		return ""
	}

	// Replace parameters in the route
	for param, value := range params {
		route = strings.ReplaceAll(route, ":"+param, value)
	}

	// Remove trailing slash if it's a base endpoint with no parameters
	if strings.HasSuffix(route, "/") && !strings.Contains(route, ":") {
		route = strings.TrimSuffix(route, "/")
	}

	// Add query parameters if any
	if len(queryParams) > 0 {
		route = fmt.Sprintf("%s?%s", route, queryParams.Encode())
	}

	return route
}

// Health check route helper

// HealthCheckURL returns the URL for the health check endpoint
func HealthCheckURL() string {
	return BuildURL(HealthCheck, nil, nil)
}

// Auth route helpers

// RegisterURL returns the URL for creating an account
func RegisterURL() string {
	return BuildURL(Register, nil, nil)
}

// LoginURL returns the URL for logging in
func LoginURL() string {
	return BuildURL(Login, nil, nil)
}

// MeURL returns the URL for the authenticated profile
func MeURL() string {
	return BuildURL(Me, nil, nil)
}

// Payment route helpers

// GetPaymentsURL returns the URL for listing payments
func GetPaymentsURL(queryParams url.Values) string {
	return BuildURL(GetPayments, nil, queryParams)
}

// GetPaymentURL returns the URL for getting a payment by ID
func GetPaymentURL(id string) string {
	return BuildURL(GetPayment, map[string]string{"id": id}, nil)
}

// CreatePaymentURL returns the URL for submitting a charge
func CreatePaymentURL() string {
	return BuildURL(CreatePayment, nil, nil)
}

// GetSubscriptionURL returns the URL for the caller's subscription
func GetSubscriptionURL() string {
	return BuildURL(GetSubscription, nil, nil)
}

// Admin route helpers

// AdminMetricsURL returns the URL for the admin metrics snapshot
func AdminMetricsURL() string {
	return BuildURL(AdminGetMetrics, nil, nil)
}

// AdminUsageReportURL returns the URL for the per-operation usage report
func AdminUsageReportURL() string {
	return BuildURL(AdminGetUsageReport, nil, nil)
}

// AdminUsersURL returns the URL for listing accounts
func AdminUsersURL(queryParams url.Values) string {
	return BuildURL(AdminGetUsers, nil, queryParams)
}

// AdminDeleteUserURL returns the URL for removing an account
func AdminDeleteUserURL(id string) string {
	return BuildURL(AdminDeleteUser, map[string]string{"id": id}, nil)
}

// AdminAlertsURL returns the URL for listing alerts
func AdminAlertsURL(queryParams url.Values) string {
	return BuildURL(AdminGetAlerts, nil, queryParams)
}

// AdminCreateAlertURL returns the URL for recording an alert
func AdminCreateAlertURL() string {
	return BuildURL(AdminCreateAlert, nil, nil)
}

// AdminAckAlertURL returns the URL for acknowledging an alert
func AdminAckAlertURL(id string) string {
	return BuildURL(AdminAckAlert, map[string]string{"id": id}, nil)
}

// AdminSubscriptionURL returns the URL for a user's subscription
func AdminSubscriptionURL(userID string) string {
	return BuildURL(AdminGetSubscription, map[string]string{"id": userID}, nil)
}

// RPC route helper

// RPCURL returns the URL for the RPC endpoint
func RPCURL() string {
	return BuildURL(RPC, nil, nil)
}
