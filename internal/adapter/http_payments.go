package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/filaliempire/crm-server/internal/config"
	"github.com/filaliempire/crm-server/models"
)

type httpPaymentsAdapter struct {
	client *resty.Client
}

// NewHTTPPaymentsAdapter constructs a [PaymentsAdapter] talking to the
// payments aggregation API at cfg.BaseURL.
func NewHTTPPaymentsAdapter(cfg config.Endpoint) PaymentsAdapter {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpPaymentsAdapter{client: cli}
}

func (p *httpPaymentsAdapter) GetCatalog(ctx context.Context, filters models.CatalogFilters) (models.Catalog, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(catalogQuery(filters)).
		Get("/")
	if err != nil {
		return models.Catalog{}, fmt.Errorf("catalog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Catalog{}, err
	}

	var catalog models.Catalog
	if err = json.Unmarshal(resp.Body(), &catalog); err != nil {
		return models.Catalog{}, fmt.Errorf("decode catalog response: %w", err)
	}

	return catalog, nil
}

// catalogQuery translates filters into the collaborator's query-string shape.
// product_ids use the bracketed repeated-key convention the API expects.
func catalogQuery(filters models.CatalogFilters) url.Values {
	params := url.Values{}

	if filters.Active != nil {
		params.Set("active", strconv.FormatBool(*filters.Active))
	}
	if filters.CreatedGTE > 0 {
		params.Set("created_gte", strconv.FormatInt(filters.CreatedGTE, 10))
	}
	if filters.CreatedLTE > 0 {
		params.Set("created_lte", strconv.FormatInt(filters.CreatedLTE, 10))
	}
	if filters.MaxPages > 0 {
		params.Set("maxPages", strconv.Itoa(filters.MaxPages))
	}
	for _, id := range filters.ProductIDs {
		params.Add("product_ids[]", id)
	}

	return params
}
