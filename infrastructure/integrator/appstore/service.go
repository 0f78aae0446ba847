package appstore

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/appstore/appstoreclient"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

// Product type identifiers from the sales report schema. The F-suffixed
// variants are the family-sharing counterparts.
var (
	newDownloadTypes = map[string]bool{"1": true, "1F": true}
	updateTypes      = map[string]bool{"7": true, "7F": true}
	redownloadTypes  = map[string]bool{"3": true, "3F": true}
)

type Integrator struct {
	cfg    *config.Config
	Client appstoreclient.Client
}

func NewIntegrator(cfg *config.Config, client appstoreclient.Client) *Integrator {
	return &Integrator{cfg: cfg, Client: client}
}

// DailyDownloads fetches and aggregates the daily sales report for one
// date. Rows are filtered to the configured Apple ID when one is set.
func (i *Integrator) DailyDownloads(ctx context.Context, date string) (*domain.AppStoreDownloads, error) {
	raw, err := i.Client.SalesReport(ctx, date)
	if err != nil {
		return nil, err
	}

	downloads, err := ParseSalesReport(raw, i.cfg.AppStore.AppleID)
	if err != nil {
		return nil, err
	}
	downloads.Date = date

	log.L.WithFields(log.Fields{
		"report_date":     date,
		"report_total":    downloads.Downloads,
		"report_new":      downloads.Breakdown.NewDownloads,
		"report_updates":  downloads.Breakdown.Updates,
		"report_redownls": downloads.Breakdown.Redownloads,
	}).Info("appstore: daily downloads aggregated")

	return downloads, nil
}

// ParseSalesReport aggregates units from a tab-separated daily sales
// report. New downloads, updates and redownloads all count towards the
// download total; the breakdown keeps the sub-totals visible.
func ParseSalesReport(raw []byte, appleID string) (*domain.AppStoreDownloads, error) {
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) < 1 {
		return nil, errors.New("empty sales report")
	}

	header := strings.Split(lines[0], "\t")
	typeIdx, unitsIdx, appleIdx := -1, -1, -1
	for idx, col := range header {
		switch strings.TrimSpace(col) {
		case "Product Type Identifier":
			typeIdx = idx
		case "Units":
			unitsIdx = idx
		case "Apple Identifier":
			appleIdx = idx
		}
	}
	if typeIdx < 0 || unitsIdx < 0 {
		return nil, errors.New("sales report missing expected columns")
	}

	result := &domain.AppStoreDownloads{}

	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) <= typeIdx || len(cols) <= unitsIdx {
			continue
		}
		if appleID != "" && appleIdx >= 0 && len(cols) > appleIdx {
			if strings.TrimSpace(cols[appleIdx]) != appleID {
				continue
			}
		}

		units, err := strconv.Atoi(strings.TrimSpace(cols[unitsIdx]))
		if err != nil {
			continue
		}

		productType := strings.TrimSpace(cols[typeIdx])
		switch {
		case newDownloadTypes[productType]:
			result.Breakdown.NewDownloads += units
		case updateTypes[productType]:
			result.Breakdown.Updates += units
		case redownloadTypes[productType]:
			result.Breakdown.Redownloads += units
		}
	}

	result.Downloads = result.Breakdown.NewDownloads +
		result.Breakdown.Updates +
		result.Breakdown.Redownloads
	return result, nil
}
