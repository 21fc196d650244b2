package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSheetsClient_FetchCSV(t *testing.T) {
	t.Run("Resposta 200 devolve o corpo como texto", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("Day,Clicks\n2025-07-01,10"))
		}))
		defer server.Close()

		client := NewClient(5 * time.Second)

		csvText, err := client.FetchCSV(context.Background(), server.URL)

		assert.NoError(t, err)
		assert.Equal(t, "Day,Clicks\n2025-07-01,10", csvText)
	})

	t.Run("Status fora de 200 vira erro", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		client := NewClient(5 * time.Second)

		_, err := client.FetchCSV(context.Background(), server.URL)

		assert.Error(t, err)
	})

	t.Run("Contexto cancelado interrompe a busca", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		client := NewClient(5 * time.Second)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.FetchCSV(ctx, server.URL)

		assert.Error(t, err)
	})
}
