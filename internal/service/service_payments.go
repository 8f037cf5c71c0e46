// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/filaliempire/crm-server/internal/adapter"
	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/models"
)

type paymentsService struct {
	payments adapter.PaymentsAdapter

	logger *logger.Logger
}

// NewPaymentsService constructs a [PaymentsService] over the payments
// collaborator.
func NewPaymentsService(payments adapter.PaymentsAdapter, logger *logger.Logger) PaymentsService {
	return &paymentsService{
		payments: payments,
		logger:   logger,
	}
}

func (p *paymentsService) Catalog(ctx context.Context, filters models.CatalogFilters) (models.Catalog, error) {
	return p.payments.GetCatalog(ctx, filters)
}

// Summary flattens the per-product catalog into the business-level totals the
// dashboard consumes. Distinct customers are counted by transaction email;
// transactions without one contribute revenue but not a customer.
func (p *paymentsService) Summary(ctx context.Context, filters models.CatalogFilters) (models.PaymentsSummary, error) {
	catalog, err := p.payments.GetCatalog(ctx, filters)
	if err != nil {
		return models.PaymentsSummary{}, err
	}

	summary := models.PaymentsSummary{
		TotalProducts:    catalog.CountProducts,
		RevenueByProduct: make(map[string]int64, len(catalog.Products)),
		Transactions:     []models.Transaction{},
	}

	customers := make(map[string]struct{})
	for _, product := range catalog.Products {
		summary.TotalRevenue += product.Totals.Revenue
		summary.TotalOrders += product.Totals.Orders
		summary.RevenueByProduct[product.ProductID] = product.Totals.Revenue
		summary.Transactions = append(summary.Transactions, product.Transactions...)

		for _, txn := range product.Transactions {
			if txn.CustomerEmail != "" {
				customers[normalizeEmail(txn.CustomerEmail)] = struct{}{}
			}
		}
	}
	summary.TotalCustomers = len(customers)

	sort.Slice(summary.Transactions, func(i, j int) bool {
		return summary.Transactions[i].CreatedUnix > summary.Transactions[j].CreatedUnix
	})

	return summary, nil
}

// RevenueByPeriod buckets every transaction's amount into day, week, month or
// year buckets keyed by the bucket's label, sorted chronologically. Weeks
// start on Sunday, matching the dashboard's charting convention.
func (p *paymentsService) RevenueByPeriod(ctx context.Context, period string, filters models.CatalogFilters) (models.RevenueReport, error) {
	switch period {
	case models.PeriodDay, models.PeriodWeek, models.PeriodMonth, models.PeriodYear:
	default:
		return models.RevenueReport{}, fmt.Errorf("%w: %q", ErrValidationBadPeriod, period)
	}

	summary, err := p.Summary(ctx, filters)
	if err != nil {
		return models.RevenueReport{}, err
	}

	buckets := make(map[string]int64)
	for _, txn := range summary.Transactions {
		buckets[periodKey(period, txn.CreatedUnix)] += txn.AmountTotal
	}

	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	report := models.RevenueReport{Labels: labels, Data: make([]int64, len(labels))}
	for i, label := range labels {
		report.Data[i] = buckets[label]
	}

	return report, nil
}

// TransactionsByEmail returns this customer's transactions, newest first.
// The catalog has no per-customer filter, so the whole set is fetched and
// matched here on the normalized address.
func (p *paymentsService) TransactionsByEmail(ctx context.Context, email string) ([]models.Transaction, error) {
	summary, err := p.Summary(ctx, models.CatalogFilters{})
	if err != nil {
		return nil, err
	}

	want := normalizeEmail(email)
	matched := make([]models.Transaction, 0)
	for _, txn := range summary.Transactions {
		if txn.CustomerEmail != "" && normalizeEmail(txn.CustomerEmail) == want {
			matched = append(matched, txn)
		}
	}

	return matched, nil
}

func periodKey(period string, createdUnix int64) string {
	ts := time.Unix(createdUnix, 0).UTC()
	switch period {
	case models.PeriodDay:
		return ts.Format("2006-01-02")
	case models.PeriodWeek:
		weekStart := ts.AddDate(0, 0, -int(ts.Weekday()))
		return weekStart.Format("2006-01-02")
	case models.PeriodMonth:
		return ts.Format("2006-01")
	default:
		return ts.Format("2006")
	}
}

// Catalog filter helpers for the standard dashboard ranges.

func Last30DaysFilter(now time.Time) models.CatalogFilters {
	return models.CatalogFilters{
		CreatedGTE: now.Add(-30 * 24 * time.Hour).Unix(),
		CreatedLTE: now.Unix(),
	}
}

func ThisMonthFilter(now time.Time) models.CatalogFilters {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return models.CatalogFilters{CreatedGTE: start.Unix(), CreatedLTE: now.Unix()}
}

func ThisYearFilter(now time.Time) models.CatalogFilters {
	start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	return models.CatalogFilters{CreatedGTE: start.Unix(), CreatedLTE: now.Unix()}
}
