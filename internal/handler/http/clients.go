package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/store"
	"github.com/filaliempire/crm-server/internal/utils"
	"github.com/filaliempire/crm-server/models"
)

func (h *Handler) listClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	q := r.URL.Query()
	filter := models.ClientFilter{
		Status: q.Get("status"),
		Search: q.Get("search"),
	}
	if tags := q.Get("tags"); tags != "" {
		filter.Tags = splitCSV(tags)
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil {
		filter.Offset = offset
	}

	list, err := h.services.ClientService.List(ctx, filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listClients").Msg("error listing clients")
		http.Error(w, "error listing clients", statusFromError(err))
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// searchClients is the quick-search box: a short, capped match list.
func (h *Handler) searchClients(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	clients, err := h.services.ClientService.Search(ctx, r.URL.Query().Get("q"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchClients").Msg("error searching clients")
		http.Error(w, "error searching clients", statusFromError(err))
		return
	}

	utils.WriteJSON(w, clients, http.StatusOK)
}

func (h *Handler) createClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var data models.CreateClientData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		log.Err(err).Str("func", "*Handler.createClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	client, err := h.services.ClientService.Create(ctx, data)
	if err != nil {
		writeClientError(w, r, err, "error creating client")
		return
	}

	utils.WriteJSON(w, client, http.StatusCreated)
}

func (h *Handler) clientStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.ClientService.Stats(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.clientStats").Msg("error aggregating client stats")
		http.Error(w, "error aggregating client stats", statusFromError(err))
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) getClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	client, err := h.services.ClientService.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getClient").Msg("error getting client")
		http.Error(w, "error getting client", statusFromError(err))
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) updateClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.ClientUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateClient").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	client, err := h.services.ClientService.Update(ctx, chi.URLParam(r, "id"), update)
	if err != nil {
		writeClientError(w, r, err, "error updating client")
		return
	}

	utils.WriteJSON(w, client, http.StatusOK)
}

func (h *Handler) deleteClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := h.services.ClientService.Delete(ctx, chi.URLParam(r, "id")); err != nil {
		log.Err(err).Str("func", "*Handler.deleteClient").Msg("error deleting client")
		http.Error(w, "error deleting client", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type addNoteRequest struct {
	Body   string `json:"body"`
	Author string `json:"author,omitempty"`
}

func (h *Handler) addNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req addNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addNote").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	client, err := h.services.ClientService.AddNote(ctx, chi.URLParam(r, "id"), req.Body, req.Author)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addNote").Msg("error adding note")
		http.Error(w, "error adding note", statusFromError(err))
		return
	}

	utils.WriteJSON(w, client, http.StatusCreated)
}

type logContactRequest struct {
	Kind string `json:"kind"`
	models.ContactMeta
}

func (h *Handler) logContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req logContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.logContact").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	client, err := h.services.ClientService.LogContact(ctx, chi.URLParam(r, "id"), req.Kind, req.ContactMeta)
	if err != nil {
		log.Err(err).Str("func", "*Handler.logContact").Msg("error logging contact action")
		http.Error(w, "error logging contact action", statusFromError(err))
		return
	}

	utils.WriteJSON(w, client, http.StatusCreated)
}

// writeClientError answers create/update failures, giving the uniqueness
// conflicts their field-specific messages.
func writeClientError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		log.Err(err).Msg("email already exists")
		http.Error(w, "a client with this email already exists", http.StatusConflict)
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		log.Err(err).Msg("phone already exists")
		http.Error(w, "a client with this phone already exists", http.StatusConflict)
	case errors.Is(err, store.ErrClientAlreadyExists):
		log.Err(err).Msg("client already exists")
		http.Error(w, "a client with this information already exists", http.StatusConflict)
	default:
		log.Err(err).Msg(fallback)
		http.Error(w, fallback, statusFromError(err))
	}
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
