package playstore

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/pkg/errors"
	"github.com/tuktuki/revenue-metrics-api/infrastructure/integrator/playstore/playstoreclient"
	"github.com/tuktuki/revenue-metrics-api/internal/config"
	"github.com/tuktuki/revenue-metrics-api/internal/domain"
	"github.com/tuktuki/revenue-metrics-api/pkg/log"
)

type Integrator struct {
	cfg    *config.Config
	Client playstoreclient.Client
}

func NewIntegrator(cfg *config.Config, client playstoreclient.Client) *Integrator {
	return &Integrator{cfg: cfg, Client: client}
}

// LatestDownloads sums the install column of the most recently updated
// install-stats export in the bucket.
func (i *Integrator) LatestDownloads(ctx context.Context) (*domain.PlayStoreDownloads, error) {
	objects, err := i.Client.ListObjects(ctx, i.cfg.PlayStore.ReportPrefix)
	if err != nil {
		return nil, err
	}
	if len(objects) == 0 {
		return nil, errors.Errorf("no objects under %q in bucket %s",
			i.cfg.PlayStore.ReportPrefix, i.cfg.PlayStore.Bucket)
	}

	newest := objects[0]
	for _, obj := range objects[1:] {
		if obj.Updated.After(newest.Updated) {
			newest = obj
		}
	}

	raw, err := i.Client.DownloadObject(ctx, newest.Name)
	if err != nil {
		return nil, err
	}

	downloads, err := SumInstallColumn(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", newest.Name)
	}

	log.L.WithFields(log.Fields{
		"report_file":  newest.Name,
		"report_total": downloads,
	}).Info("playstore: installs aggregated")

	return &domain.PlayStoreDownloads{
		Downloads:   downloads,
		SourceFile:  newest.Name,
		LastUpdated: newest.Updated,
	}, nil
}

// SumInstallColumn totals the first column whose header mentions
// installs. The console exports CSVs as UTF-16LE with a BOM, so the
// bytes are normalized first.
func SumInstallColumn(raw []byte) (int, error) {
	reader := csv.NewReader(strings.NewReader(decodeExport(raw)))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return 0, errors.Wrap(err, "reading install export")
	}
	if len(records) < 1 {
		return 0, errors.New("empty install export")
	}

	installIdx := -1
	for idx, col := range records[0] {
		if strings.Contains(strings.ToLower(col), "install") {
			installIdx = idx
			break
		}
	}
	if installIdx < 0 {
		return 0, errors.New("install export missing install column")
	}

	total := 0
	for _, row := range records[1:] {
		if len(row) <= installIdx {
			continue
		}
		value, err := strconv.Atoi(strings.TrimSpace(row[installIdx]))
		if err != nil {
			continue
		}
		total += value
	}
	return total, nil
}

func decodeExport(raw []byte) string {
	if len(raw) >= 2 && raw[0] == 0xFF && raw[1] == 0xFE {
		codes := make([]uint16, 0, (len(raw)-2)/2)
		for idx := 2; idx+1 < len(raw); idx += 2 {
			codes = append(codes, uint16(raw[idx])|uint16(raw[idx+1])<<8)
		}
		return string(utf16.Decode(codes))
	}
	return string(bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF}))
}
