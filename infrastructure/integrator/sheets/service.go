package sheets

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/internal/config"
	"github.com/vfg2006/ads-performance-api/internal/domain"
)

// SheetsIntegrator resolve a URL de publicação de cada plataforma e
// delega a busca do CSV ao Client
type SheetsIntegrator struct {
	cfg    *config.Config
	Client Client
}

func New(cfg *config.Config, client Client) *SheetsIntegrator {
	return &SheetsIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchPlatformCSV busca o export publicado da plataforma informada
func (s *SheetsIntegrator) FetchPlatformCSV(ctx context.Context, platform domain.Platform) (string, error) {
	url, err := s.sheetURL(platform)
	if err != nil {
		return "", err
	}

	csvText, err := s.Client.FetchCSV(ctx, url)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"platform": platform,
			"error":    err.Error(),
		}).Error("sheets: falha ao buscar CSV do export")
		return "", err
	}

	return csvText, nil
}

func (s *SheetsIntegrator) sheetURL(platform domain.Platform) (string, error) {
	switch platform {
	case domain.PlatformGoogle:
		return s.cfg.Sheets.GoogleAdsURL, nil
	case domain.PlatformMeta:
		return s.cfg.Sheets.MetaAdsURL, nil
	}

	return "", errors.Errorf("plataforma sem URL de export configurada: %s", platform)
}
