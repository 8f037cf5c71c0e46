package http

import (
	"errors"
	"net/http"

	"github.com/filaliempire/crm-server/internal/adapter"
	"github.com/filaliempire/crm-server/internal/service"
	"github.com/filaliempire/crm-server/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidationNoFullName:   http.StatusBadRequest,
	service.ErrValidationBadStatus:    http.StatusBadRequest,
	service.ErrValidationEmptyNote:    http.StatusBadRequest,
	service.ErrUnknownContactKind:     http.StatusBadRequest,
	service.ErrValidationNoSubject:    http.StatusBadRequest,
	service.ErrValidationNoStart:      http.StatusBadRequest,
	service.ErrValidationNoEnd:        http.StatusBadRequest,
	service.ErrValidationEndNotAfter:  http.StatusBadRequest,
	service.ErrValidationBadAttendee:  http.StatusBadRequest,
	service.ErrValidationBadPeriod:    http.StatusBadRequest,
	service.ErrValidationNoRecipients: http.StatusBadRequest,
	service.ErrNoRecipientsWithEmail:  http.StatusBadRequest,

	service.ErrMassEmailDispatchFailed: http.StatusBadGateway,

	store.ErrClientNotFound:      http.StatusNotFound,
	store.ErrEmailAlreadyExists:  http.StatusConflict,
	store.ErrPhoneAlreadyExists:  http.StatusConflict,
	store.ErrClientAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	// Collaborator failures are terminal for the request regardless of what
	// the collaborator itself answered.
	adapter.ErrBadRequest:          http.StatusBadGateway,
	adapter.ErrNotFound:            http.StatusBadGateway,
	adapter.ErrConflict:            http.StatusBadGateway,
	adapter.ErrTooManyRequests:     http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
