package sheets

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Client busca o CSV publicado de uma planilha
type Client interface {
	FetchCSV(ctx context.Context, url string) (string, error)
}

type SheetsClient struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) Client {
	return &SheetsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchCSV faz o GET da URL de publicação e devolve o corpo como texto.
// Qualquer status diferente de 200 é erro; a política de manter o último
// snapshot em caso de falha fica com o chamador.
func (c *SheetsClient) FetchCSV(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.Wrap(err, "erro ao criar a requisição do CSV")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "erro ao buscar o CSV da planilha")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("status inesperado ao buscar CSV: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "erro ao ler o corpo do CSV")
	}

	logrus.WithFields(logrus.Fields{
		"bytes": len(body),
	}).Debug("CSV da planilha obtido")

	return string(body), nil
}
