package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", h.listClients)
			r.Post("/", h.createClient)
			r.Get("/stats", h.clientStats)
			r.Get("/search", h.searchClients)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.getClient)
				r.Put("/", h.updateClient)
				r.Delete("/", h.deleteClient)
				r.Post("/notes", h.addNote)
				r.Post("/contact", h.logContact)
				r.Get("/dossier", h.getDossier)
			})
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/catalog", h.paymentsCatalog)
			r.Get("/summary", h.paymentsSummary)
			r.Get("/revenue", h.paymentsRevenue)
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/events", h.calendarEvents)
			r.Post("/events", h.createEvent)
			r.Get("/upcoming", h.upcomingEvents)
			r.Get("/today", h.todaysEvents)
		})

		r.Post("/email/mass-send", h.sendMassEmail)
	})

	return router
}
