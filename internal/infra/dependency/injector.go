// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/sft-api/backend/config"
	"github.com/sft-api/backend/internal/application/adapter"
	"github.com/sft-api/backend/internal/application/usecase/currency"
	"github.com/sft-api/backend/internal/application/usecase/disposable"
	"github.com/sft-api/backend/internal/application/usecase/entry"
	"github.com/sft-api/backend/internal/application/usecase/recurrence"
	"github.com/sft-api/backend/internal/application/usecase/summary"
	"github.com/sft-api/backend/internal/application/usecase/user"
	"github.com/sft-api/backend/internal/domain/entity"
	"github.com/sft-api/backend/internal/infra/server/router"
	"github.com/sft-api/backend/internal/integration/adapters"
	"github.com/sft-api/backend/internal/integration/entrypoint/controller"
	"github.com/sft-api/backend/internal/integration/entrypoint/middleware"
	"github.com/sft-api/backend/internal/integration/lock"
	"github.com/sft-api/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
	ResetData   *user.ResetDataUseCase
}

// Option customizes the injector.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the time source used by the HTTP layer.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient is only used when the maintenance lock is enabled and may be nil.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient redis.UniversalClient, opts ...Option) *Injector {
	o := &options{now: time.Now}
	for _, opt := range opts {
		opt(o)
	}

	// Create repositories
	entryRepo := persistence.NewEntryRepository(db)
	profileRepo := persistence.NewProfileRepository(db)
	budgetRepo := persistence.NewDisposableBudgetRepository(db)
	spendingRepo := persistence.NewDisposableSpendingRepository(db)
	currencyRepo := persistence.NewCurrencyRepository(db)
	transactor := persistence.NewTransactor(db)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret)

	var locker adapter.Locker
	if cfg.Maintenance.LockEnabled && redisClient != nil {
		locker = lock.NewRedisLocker(redisClient, cfg.Maintenance.LockPrefix)
	}

	// Create recurrence engine
	generator := recurrence.NewGenerator(entryRepo)
	coordinator := recurrence.NewCoordinator(entryRepo, generator)
	roller := recurrence.NewRoller(entryRepo, budgetRepo, spendingRepo)
	monthlyCheckUseCase := recurrence.NewMonthlyCheckUseCase(profileRepo, roller, transactor, locker, cfg.Maintenance.LockTTL)

	// Create entry use cases
	listEntriesUseCase := entry.NewListEntriesUseCase(entryRepo)
	createEntryUseCase := entry.NewCreateEntryUseCase(entryRepo, transactor, generator)
	updateEntryUseCase := entry.NewUpdateEntryUseCase(entryRepo, transactor, coordinator)
	deleteEntryUseCase := entry.NewDeleteEntryUseCase(entryRepo, transactor, coordinator)

	// Create disposable use cases
	getBudgetUseCase := disposable.NewGetBudgetUseCase(budgetRepo, transactor)
	updateBudgetUseCase := disposable.NewUpdateBudgetUseCase(budgetRepo)
	spendingUseCase := disposable.NewSpendingUseCase(spendingRepo)

	// Create summary use cases
	monthlySummaryUseCase := summary.NewGetMonthlySummaryUseCase(entryRepo, spendingRepo, budgetRepo)
	weeklySummaryUseCase := summary.NewGetWeeklySummaryUseCase(entryRepo, spendingRepo)
	calendarSummaryUseCase := summary.NewGetCalendarSummaryUseCase(entryRepo, spendingRepo)

	// Create currency use cases
	currencyUseCase := currency.NewUseCase(currencyRepo)

	// Create user use cases
	getCurrentUserUseCase := user.NewGetCurrentUserUseCase(profileRepo, monthlyCheckUseCase)
	resetDataUseCase := user.NewResetDataUseCase(entryRepo, budgetRepo, spendingRepo, transactor)

	// Create controllers
	var lockHealth controller.HealthChecker
	if locker != nil {
		lockHealth = func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		}
	}
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	}, lockHealth)

	userController := controller.NewUserController(getCurrentUserUseCase)

	incomeController := controller.NewEntryController(
		entity.EntryKindIncome,
		listEntriesUseCase,
		createEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	expenditureController := controller.NewEntryController(
		entity.EntryKindExpenditure,
		listEntriesUseCase,
		createEntryUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
	)

	disposableController := controller.NewDisposableController(
		getBudgetUseCase,
		updateBudgetUseCase,
		spendingUseCase,
	)

	summaryController := controller.NewSummaryController(
		monthlySummaryUseCase,
		weeklySummaryUseCase,
		calendarSummaryUseCase,
		currencyUseCase,
	)

	currencyController := controller.NewCurrencyController(currencyUseCase)

	for _, c := range []interface{ SetClock(func() time.Time) }{
		userController,
		incomeController,
		expenditureController,
		disposableController,
		summaryController,
	} {
		c.SetClock(o.now)
	}

	// Create middleware
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window, cfg.RateLimit.Enabled)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		userController,
		incomeController,
		expenditureController,
		disposableController,
		summaryController,
		currencyController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          db,
		Router:      r,
		RateLimiter: rateLimiter,
		ResetData:   resetDataUseCase,
	}
}
