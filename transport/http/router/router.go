package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/handlers/booking"
	"github.com/hoangthai77641/ThoHCM-Personal-Project-sub000/internal/handlers/schedule"
)

type DomainHandlers struct {
	Booking  booking.Handler
	Schedule schedule.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
