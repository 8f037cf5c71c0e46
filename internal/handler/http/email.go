package http

import (
	"encoding/json"
	"net/http"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/utils"
	"github.com/filaliempire/crm-server/models"
)

func (h *Handler) sendMassEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.MassEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.sendMassEmail").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	result, err := h.services.EmailService.SendMassEmail(ctx, req)
	if err != nil {
		// The batch is atomic and the dispatcher has no idempotency key, so a
		// failed dispatch is reported as-is and never retried here.
		log.Err(err).Str("func", "*Handler.sendMassEmail").Int("recipients", len(req.ClientIDs)).Msg("error sending mass email")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
