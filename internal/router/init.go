package router

import (
	"github.com/nestorahq/nestora-api/internal/application"
	"github.com/nestorahq/nestora-api/internal/container"
	pginfra "github.com/nestorahq/nestora-api/internal/infrastructure/postgres"
	handlers "github.com/nestorahq/nestora-api/internal/interface/http"
	"github.com/nestorahq/nestora-api/internal/router/modules"
)

// InitModules wires repositories, services, and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	apartmentRepo := pginfra.NewApartmentRepository(pool)
	agreementRepo := pginfra.NewAgreementRepository(pool)
	couponRepo := pginfra.NewCouponRepository(pool)

	userSvc := application.NewUserService(userRepo, logger)
	apartmentSvc := application.NewApartmentService(apartmentRepo, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESApartmentsIndex, logger)
	couponSvc := application.NewCouponService(couponRepo, container.GetRedis(), logger)
	agreementSvc := application.NewAgreementService(agreementRepo, apartmentRepo, container.GetRabbitPub(), logger)
	paymentSvc := application.NewPaymentService(agreementRepo, couponSvc, container.GetPaymentGateway(), cfg.PaymentCurrency, logger)

	tokens := container.GetTokens()

	r.Add(modules.NewTokenModule(handlers.NewTokenHandler(tokens, logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger)))
	r.Add(modules.NewApartmentModule(handlers.NewApartmentHandler(apartmentSvc, logger), tokens))
	r.Add(modules.NewAgreementModule(handlers.NewAgreementHandler(agreementSvc, logger), tokens))
	r.Add(modules.NewCouponModule(handlers.NewCouponHandler(couponSvc, logger), tokens))
	r.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(paymentSvc, logger), tokens))
}
