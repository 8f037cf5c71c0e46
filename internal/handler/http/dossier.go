package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/utils"
)

func (h *Handler) getDossier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	dossier, err := h.services.DossierService.LoadDossier(ctx, chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.getDossier").Msg("error loading client dossier")
		http.Error(w, "error loading client dossier", statusFromError(err))
		return
	}

	utils.WriteJSON(w, dossier, http.StatusOK)
}
