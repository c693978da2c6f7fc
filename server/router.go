package server

import (
	"vh-server/server/handlers"

	"github.com/gorilla/mux"
)

type Router struct {
	hoursHandler *handlers.HoursHandler
	eventHandler *handlers.EventHandler
	router       *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(
	hoursHandler *handlers.HoursHandler,
	eventHandler *handlers.EventHandler,
	router *mux.Router) *Router {
	return &Router{
		hoursHandler: hoursHandler,
		eventHandler: eventHandler,
		router:       router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects ?venue={venue}&date={YYYY-MM-DD}|range={days}
	r.router.HandleFunc("/v1/hours", r.hoursHandler.GetHours).Methods("GET")
	r.router.HandleFunc("/v1/hours/status", r.hoursHandler.GetStatus).Methods("GET")

	r.router.HandleFunc("/v1/hours/regular", r.hoursHandler.UpdateRegularHours).Methods("PUT")
	r.router.HandleFunc("/v1/hours/special", r.hoursHandler.SetSpecialHours).Methods("POST")
	r.router.HandleFunc("/v1/hours/special", r.hoursHandler.RemoveSpecialHours).Methods("DELETE")
	r.router.HandleFunc("/v1/hours/closures", r.hoursHandler.SetClosure).Methods("POST")
	r.router.HandleFunc("/v1/hours/closures", r.hoursHandler.RemoveClosure).Methods("DELETE")

	r.router.HandleFunc("/v1/events", r.eventHandler.ListEvents).Methods("GET")
	r.router.HandleFunc("/v1/events", r.eventHandler.UpsertEvent).Methods("POST")
	r.router.HandleFunc("/v1/events/{id}", r.eventHandler.DeleteEvent).Methods("DELETE")

	r.router.HandleFunc("/ping", r.hoursHandler.Ping).Methods("GET")
}
