//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/payment"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/internal/jobs"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	cartService "hotel/internal/domains/cart/service"
	facilityRepository "hotel/internal/domains/facility/repository"
	facilityService "hotel/internal/domains/facility/service"
	facilityBookingRepository "hotel/internal/domains/facilitybooking/repository"
	facilityBookingService "hotel/internal/domains/facilitybooking/service"
	foodRepository "hotel/internal/domains/food/repository"
	foodService "hotel/internal/domains/food/service"
	historyService "hotel/internal/domains/history/service"
	orderRepository "hotel/internal/domains/order/repository"
	orderService "hotel/internal/domains/order/service"
	paymentService "hotel/internal/domains/payment/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	settlementService "hotel/internal/domains/settlement/service"
	userRepository "hotel/internal/domains/user/repository"

	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	cartHandler "hotel/internal/handlers/cart"
	facilityHandler "hotel/internal/handlers/facility"
	facilityBookingHandler "hotel/internal/handlers/facilitybooking"
	foodHandler "hotel/internal/handlers/food"
	historyHandler "hotel/internal/handlers/history"
	orderHandler "hotel/internal/handlers/order"
	paymentHandler "hotel/internal/handlers/payment"
	roomHandler "hotel/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	payment.New,
	payment.NewVerifier,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var catalogDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
	foodRepository.New,
	foodService.New,
	facilityRepository.New,
	facilityService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	facilityBookingRepository.New,
	facilityBookingService.New,
	orderRepository.New,
	orderService.New,
)

var checkoutDomain = wire.NewSet(
	cartService.New,
	wire.Struct(new(settlementService.Repositories), "*"),
	settlementService.New,
	paymentService.New,
)

var historyDomain = wire.NewSet(
	wire.Struct(new(historyService.Repositories), "*"),
	historyService.New,
)

var domains = wire.NewSet(
	authDomain,
	catalogDomain,
	bookingDomain,
	checkoutDomain,
	historyDomain,
)

var scheduling = wire.NewSet(
	expirers,
	jobs.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	foodHandler.New,
	facilityHandler.New,
	cartHandler.New,
	bookingHandler.New,
	facilityBookingHandler.New,
	orderHandler.New,
	paymentHandler.New,
	historyHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		scheduling,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
