// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/sft-api/backend/internal/integration/entrypoint/controller"
	"github.com/sft-api/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	userController        *controller.UserController
	incomeController      *controller.EntryController
	expenditureController *controller.EntryController
	disposableController  *controller.DisposableController
	summaryController     *controller.SummaryController
	currencyController    *controller.CurrencyController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	incomeController *controller.EntryController,
	expenditureController *controller.EntryController,
	disposableController *controller.DisposableController,
	summaryController *controller.SummaryController,
	currencyController *controller.CurrencyController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		userController:        userController,
		incomeController:      incomeController,
		expenditureController: expenditureController,
		disposableController:  disposableController,
		summaryController:     summaryController,
		currencyController:    currencyController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every API route requires
// authentication; the rate limiter runs after it so that it can key on the user.
func (r *Router) setupAPIRoutes() {
	if r.authMiddleware == nil {
		return
	}

	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}
	{
		// User routes
		if r.userController != nil {
			users := v1.Group("/users")
			{
				users.GET("/me", r.userController.Me)
			}
		}

		// Income routes
		if r.incomeController != nil {
			registerEntryRoutes(v1.Group("/incomes"), r.incomeController)
		}

		// Expenditure routes
		if r.expenditureController != nil {
			registerEntryRoutes(v1.Group("/expenditures"), r.expenditureController)
		}

		// Disposable income routes
		if r.disposableController != nil {
			budget := v1.Group("/disposable-budget")
			{
				budget.GET("", r.disposableController.GetBudget)
				budget.PATCH("/:id", r.disposableController.UpdateBudget)
			}

			spending := v1.Group("/disposable-spending")
			{
				spending.GET("", r.disposableController.ListSpending)
				spending.POST("", r.disposableController.CreateSpending)
				spending.PATCH("/:id", r.disposableController.UpdateSpending)
				spending.DELETE("/:id", r.disposableController.DeleteSpending)
			}
		}

		// Summary routes
		if r.summaryController != nil {
			summaries := v1.Group("/summaries")
			{
				summaries.GET("/monthly", r.summaryController.Monthly)
				summaries.GET("/weekly", r.summaryController.Weekly)
				summaries.GET("/calendar", r.summaryController.Calendar)
			}
		}

		// Currency preference routes
		if r.currencyController != nil {
			currency := v1.Group("/currency")
			{
				currency.GET("", r.currencyController.Get)
				currency.POST("", r.currencyController.Create)
				currency.GET("/:id", r.currencyController.Retrieve)
				currency.PATCH("/:id", r.currencyController.Update)
			}
		}
	}
}

func registerEntryRoutes(group *gin.RouterGroup, c *controller.EntryController) {
	group.GET("", c.List)
	group.POST("", c.Create)
	group.PATCH("/:id", c.Update)
	group.DELETE("/:id", c.Delete)
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
