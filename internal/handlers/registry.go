package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	ProfileHandler  *ProfileHandler
	OfferHandler    *OfferHandler
	OrderHandler    *OrderHandler
	ReviewHandler   *ReviewHandler
	BaseInfoHandler *BaseInfoHandler
}
