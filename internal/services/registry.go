package services

import (
	"iconsherald/internal/auth"
	"iconsherald/internal/email"
	"iconsherald/internal/payments"
	"iconsherald/internal/repositories"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService       AuthService
	NominationService NominationService
	ProfileService    ProfileService
	PaymentService    PaymentService
	UserService       UserService
	AnalyticsService  AnalyticsService
}

// NewServiceContainer wires the services against shared repositories and
// boundaries.
func NewServiceContainer(
	repos *repositories.RepositoryContainer,
	tokens *auth.TokenIssuer,
	gateway *payments.Gateway,
	emailSender email.Sender,
) *ServiceContainer {
	return &ServiceContainer{
		AuthService: NewAuthService(repos.User, tokens),
		NominationService: NewNominationService(
			repos.Nomination, repos.User, repos.Analytics, emailSender,
		),
		ProfileService: NewProfileService(
			repos.Profile, repos.User, repos.Nomination, repos.Analytics,
		),
		PaymentService: NewPaymentService(
			repos.Payment, repos.Profile, repos.User, repos.Analytics, gateway,
		),
		UserService:      NewUserService(repos.User, repos.Analytics, tokens),
		AnalyticsService: NewAnalyticsService(repos.Analytics, repos.Setting),
	}
}
