package handlers

import (
	"iconsherald/internal/render"
	"iconsherald/internal/services"
	"iconsherald/internal/validator"
)

// AppHandlers holds every HTTP handler, wired once at startup.
type AppHandlers struct {
	Auth       *AuthHandler
	Nomination *NominationHandler
	Profile    *ProfileHandler
	Payment    *PaymentHandler
	User       *UserHandler
	Analytics  *AnalyticsHandler
	Render     *RenderHandler
}

func NewAppHandlers(svcs *services.ServiceContainer, v *validator.Validator, renderer *render.Renderer) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:       NewAuthHandler(base, svcs.AuthService),
		Nomination: NewNominationHandler(base, svcs.NominationService),
		Profile:    NewProfileHandler(base, svcs.ProfileService),
		Payment:    NewPaymentHandler(base, svcs.PaymentService),
		User:       NewUserHandler(base, svcs.UserService),
		Analytics:  NewAnalyticsHandler(base, svcs.AnalyticsService),
		Render:     NewRenderHandler(base, svcs.ProfileService, renderer),
	}
}
