package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-performance-api/internal/domain"
	"github.com/vfg2006/ads-performance-api/internal/usecases/reporting"
	"github.com/vfg2006/ads-performance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-performance-api/pkg/log"
	"github.com/vfg2006/ads-performance-api/pkg/utils"
)

// platformFromRequest resolve o parâmetro :platform da URL
func platformFromRequest(r *http.Request) (domain.Platform, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("platform")
	return domain.ParsePlatform(raw)
}

// filtersFromQuery monta os filtros de período a partir de start_date e
// end_date (formato YYYY-MM-DD). Parâmetros ausentes ficam nil e o
// serviço aplica o período padrão.
func filtersFromQuery(r *http.Request) (*domain.InsightFilters, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, err
	}

	return &domain.InsightFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}

func writeReportError(w http.ResponseWriter, err error) {
	if errors.Is(err, reporting.ErrDatasetUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Dataset da plataforma ainda não foi sincronizado", nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func GetPlatformMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform, ok := platformFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida. Valores aceitos: google, meta", nil)
			return
		}

		filters, err := filtersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Warn("reports: invalid date filter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		metrics, err := service.PlatformMetrics(platform, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("reports: failed to aggregate platform metrics")

			writeReportError(w, err)
			return
		}

		// Os índices agregados são arredondados só na borda da API; o
		// pipeline interno sempre opera com a precisão completa.
		metrics.AvgCostPerConversion = utils.RoundWithTwoDecimalPlace(metrics.AvgCostPerConversion)
		metrics.CTR = utils.RoundWithTwoDecimalPlace(metrics.CTR)
		metrics.CPC = utils.RoundWithTwoDecimalPlace(metrics.CPC)

		logger.WithFields(log.Fields{
			"platform":          platform,
			"total_spend":       metrics.TotalSpend,
			"total_conversions": metrics.TotalConversions,
		}).Info("reports: platform metrics aggregated")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metrics); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetPlatformRecords(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform, ok := platformFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida. Valores aceitos: google, meta", nil)
			return
		}

		filters, err := filtersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		records, err := service.PlatformRecords(platform, filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("reports: failed to list platform records")

			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"platform": platform,
			"records":  len(records),
		}).Debug("reports: platform records listed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetAvailablePeriod(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform, ok := platformFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida. Valores aceitos: google, meta", nil)
			return
		}

		period, err := service.AvailablePeriod(platform)
		if err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("reports: failed to resolve available period")

			writeReportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(period); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetCampaignTrends(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		platform, ok := platformFromRequest(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Plataforma inválida. Valores aceitos: google, meta", nil)
			return
		}

		referenceDate, err := utils.ParseDate(r.URL.Query().Get("reference_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"platform":       platform,
				"reference_date": r.URL.Query().Get("reference_date"),
				"error":          err.Error(),
			}).Warn("reports: invalid reference_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "reference_date deve estar no formato YYYY-MM-DD", nil)
			return
		}

		trends, err := service.PlatformCampaignTrends(platform, referenceDate)
		if err != nil {
			logger.WithFields(log.Fields{
				"platform": platform,
				"error":    err.Error(),
			}).Error("reports: failed to compute campaign trends")

			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"platform":  platform,
			"campaigns": len(trends),
		}).Info("reports: campaign trends computed")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(trends); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// limitFromQuery lê o parâmetro opcional limit; zero delega o default
// ao serviço
func limitFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0, errors.New("limit deve ser um inteiro não negativo")
	}

	return limit, nil
}

func GetTopKeywords(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := filtersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		limit, err := limitFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		keywords, err := service.TopKeywords(filters, limit)
		if err != nil {
			logger.WithError(err).Error("reports: failed to rank keywords")
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"keywords": len(keywords),
			"limit":    limit,
		}).Info("reports: top keywords ranked")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(keywords); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetTopCreatives(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := filtersFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		limit, err := limitFromQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		creatives, err := service.TopCreatives(filters, limit)
		if err != nil {
			logger.WithError(err).Error("reports: failed to rank creatives")
			writeReportError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"creatives": len(creatives),
			"limit":     limit,
		}).Info("reports: top creatives ranked")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(creatives); err != nil {
			logger.WithError(err).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
