//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/config"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/jwt"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/kafka"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/otel"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/postgres"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/infras/redis"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/permissions"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/cache"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/shared/lock"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/transport/http"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/transport/http/middleware"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/transport/http/router"

	assignmentService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/assignment/service"
	bookingRepository "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/repository"
	bookingService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/booking/service"
	customerRepository "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/customer/repository"
	scheduleRepository "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/repository"
	scheduleService "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/schedule/service"
	workerRepository "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/domains/worker/repository"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/ledger"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/notifier"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/external/pricing"
	bookingHandler "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/handlers/booking"
	scheduleHandler "github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	lock.NewKeyed,
)

var externals = wire.NewSet(
	pricing.New,
	ledger.New,
	notifier.New,
)

var schedulingDomain = wire.NewSet(
	workerRepository.New,
	scheduleRepository.New,
	bookingRepository.New,
	customerRepository.New,
	assignmentService.New,
	provideConflictChecker,
	scheduleService.New,
	bookingService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	bookingHandler.New,
	scheduleHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		externals,
		schedulingDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
