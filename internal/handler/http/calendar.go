package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/utils"
	"github.com/filaliempire/crm-server/models"
)

func (h *Handler) calendarEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	q := r.URL.Query()
	query := models.EventQuery{
		Start:      q.Get("start"),
		End:        q.Get("end"),
		CalendarID: q.Get("calendarId"),
		TimeZone:   q.Get("tz"),
	}
	if top, err := strconv.Atoi(q.Get("top")); err == nil {
		query.Top = top
	}

	events, err := h.services.CalendarService.Events(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.calendarEvents").Msg("error fetching calendar events")
		http.Error(w, "error fetching calendar events", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EventsEnvelope{Value: events}, http.StatusOK)
}

func (h *Handler) upcomingEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	days, _ := strconv.Atoi(r.URL.Query().Get("days"))

	events, err := h.services.CalendarService.UpcomingEvents(ctx, days)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upcomingEvents").Msg("error fetching upcoming events")
		http.Error(w, "error fetching upcoming events", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EventsEnvelope{Value: events}, http.StatusOK)
}

func (h *Handler) todaysEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	events, err := h.services.CalendarService.TodaysEvents(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.todaysEvents").Msg("error fetching today's events")
		http.Error(w, "error fetching today's events", statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.EventsEnvelope{Value: events}, http.StatusOK)
}

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createEvent").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resp, err := h.services.CalendarService.CreateEvent(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createEvent").Msg("error creating calendar event")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}
