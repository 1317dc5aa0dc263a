package app

import (
	"database/sql"
	"path/filepath"

	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/application"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/calendar"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/cancellation"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/exchange"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/messaging/kafka"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/middleware"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/notification"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/points"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/rbac"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/rbac/infra"
	"github.com/adgjmptw90000da-commits/new-teikyoaneth-vacation-system-sub002/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	pointsRepo := points.NewRepository(gormDB)
	calendarRepo := calendar.NewRepository(gormDB)
	applicationRepo := application.NewRepository(gormDB)
	cancellationRepo := cancellation.NewRepository(gormDB)
	exchangeRepo := exchange.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Services ---
	settingsService := settings.NewService(settingsRepo)
	pointsService := points.NewService(pointsRepo)
	applicationService := application.NewService(
		db, applicationRepo, calendarRepo, notificationRepo, outboxRepo,
		settingsService, pointsService, application.DenseRankAssigner{},
	)
	cancellationService := cancellation.NewService(
		db, cancellationRepo, applicationRepo, notificationRepo, outboxRepo, settingsService,
	)
	exchangeService := exchange.NewService(
		db, exchangeRepo, applicationRepo, notificationRepo, outboxRepo,
	)
	notificationService := notification.NewService(notificationRepo)

	// --- Handlers ---
	settingsHandler := settings.NewHandler(settingsService)
	pointsHandler := points.NewHandler(pointsService, settingsService)
	applicationHandler := application.NewHandler(applicationService)
	cancellationHandler := cancellation.NewHandler(cancellationService)
	exchangeHandler := exchange.NewHandler(exchangeService)
	notificationHandler := notification.NewHandler(notificationService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())

	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(20), 40))
	api.Use(middleware.Idempotency(rdb))
	{
		settings.RegisterRoutes(api, settingsHandler, rbacService)
		points.RegisterRoutes(api, pointsHandler)
		application.RegisterRoutes(api, applicationHandler, rbacService)
		cancellation.RegisterRoutes(api, cancellationHandler, rbacService)
		exchange.RegisterRoutes(api, exchangeHandler, rbacService)
		notification.RegisterRoutes(api, notificationHandler, rbacService)
	}

	return nil
}
