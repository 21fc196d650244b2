package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-performance-api/internal/scheduler"
	"github.com/vfg2006/ads-performance-api/pkg/apiErrors"
)

// RunSheetSync dispara manualmente a sincronização das planilhas
func RunSheetSync(service *scheduler.SheetSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSheetSync")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		// A sincronização segue em background depois da resposta; o
		// net/http cancela r.Context() assim que o handler retorna, então
		// o contexto é desvinculado do cancelamento antes do repasse
		service.TriggerManualSync(context.WithoutCancel(r.Context()))

		response := map[string]any{
			"message": "Sincronização iniciada com sucesso",
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetSheetSyncStatus retorna o status da sincronização das planilhas
func GetSheetSyncStatus(service *scheduler.SheetSyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetSheetSyncStatus")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização não disponível", nil)
			return
		}

		json.NewEncoder(w).Encode(service.GetStatus())
	}
}
