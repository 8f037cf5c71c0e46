// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/filaliempire/crm-server/internal/mock"
	"github.com/filaliempire/crm-server/internal/service"
	"github.com/filaliempire/crm-server/internal/store"
	"github.com/filaliempire/crm-server/models"
)

func TestGetDossier_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	dossiers := mock.NewMockDossierService(ctrl)

	dossiers.EXPECT().
		LoadDossier(gomock.Any(), "c1").
		Return(models.Dossier{
			Client:       models.Client{ID: "c1", FullName: "John Smith"},
			Transactions: []models.Transaction{{SessionID: "cs_1", AmountTotal: 9900}},
			Events:       []models.CalendarEvent{{ID: "ev1", Subject: "Strategy Call"}},
			Timeline: []models.ActivityItem{
				{ID: "cs_1", Type: models.ActivityTransaction, Title: "Payment Received"},
			},
		}, nil)

	router := newTestRouter(&service.Services{DossierService: dossiers})
	rr := doJSON(t, router, http.MethodGet, "/api/clients/c1/dossier", nil)

	require.Equal(t, http.StatusOK, rr.Code)

	var dossier models.Dossier
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &dossier))
	assert.Equal(t, "c1", dossier.Client.ID)
	assert.Len(t, dossier.Transactions, 1)
	assert.Len(t, dossier.Events, 1)
	assert.Equal(t, "Payment Received", dossier.Timeline[0].Title)
}

func TestGetDossier_ClientNotFoundIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	dossiers := mock.NewMockDossierService(ctrl)

	dossiers.EXPECT().
		LoadDossier(gomock.Any(), "missing").
		Return(models.Dossier{}, store.ErrClientNotFound)

	router := newTestRouter(&service.Services{DossierService: dossiers})
	rr := doJSON(t, router, http.MethodGet, "/api/clients/missing/dossier", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
