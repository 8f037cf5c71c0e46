package http

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/service"
	"github.com/filaliempire/crm-server/internal/utils"
	"github.com/filaliempire/crm-server/models"
)

func (h *Handler) paymentsCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	catalog, err := h.services.PaymentsService.Catalog(ctx, catalogFiltersFromQuery(r.URL.Query()))
	if err != nil {
		log.Err(err).Str("func", "*Handler.paymentsCatalog").Msg("error fetching payments catalog")
		http.Error(w, "error fetching payments catalog", statusFromError(err))
		return
	}

	utils.WriteJSON(w, catalog, http.StatusOK)
}

func (h *Handler) paymentsSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	summary, err := h.services.PaymentsService.Summary(ctx, catalogFiltersFromQuery(r.URL.Query()))
	if err != nil {
		log.Err(err).Str("func", "*Handler.paymentsSummary").Msg("error aggregating payments summary")
		http.Error(w, "error aggregating payments summary", statusFromError(err))
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) paymentsRevenue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	period := r.URL.Query().Get("period")
	if period == "" {
		period = models.PeriodMonth
	}

	report, err := h.services.PaymentsService.RevenueByPeriod(ctx, period, catalogFiltersFromQuery(r.URL.Query()))
	if err != nil {
		log.Err(err).Str("func", "*Handler.paymentsRevenue").Msg("error bucketing revenue")
		http.Error(w, "error bucketing revenue", statusFromError(err))
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

// catalogFiltersFromQuery reads the catalog narrowing params. The "range"
// shortcut expands to a creation-time window relative to now and loses to
// explicit created_gte/created_lte values.
func catalogFiltersFromQuery(q url.Values) models.CatalogFilters {
	var filters models.CatalogFilters

	switch q.Get("range") {
	case "30d":
		filters = service.Last30DaysFilter(time.Now())
	case "month":
		filters = service.ThisMonthFilter(time.Now())
	case "year":
		filters = service.ThisYearFilter(time.Now())
	}

	if active := q.Get("active"); active != "" {
		if v, err := strconv.ParseBool(active); err == nil {
			filters.Active = &v
		}
	}
	if gte, err := strconv.ParseInt(q.Get("created_gte"), 10, 64); err == nil {
		filters.CreatedGTE = gte
	}
	if lte, err := strconv.ParseInt(q.Get("created_lte"), 10, 64); err == nil {
		filters.CreatedLTE = lte
	}
	if ids := q.Get("product_ids"); ids != "" {
		filters.ProductIDs = splitCSV(ids)
	}
	if pages, err := strconv.Atoi(q.Get("max_pages")); err == nil {
		filters.MaxPages = pages
	}

	return filters
}
