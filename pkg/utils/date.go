package utils

import "time"

// ParseDate converte o parâmetro "YYYY-MM-DD" das consultas em meia-noite
// local do dia informado. A data é validada com time.Parse mas o valor
// devolvido é remontado dos componentes no fuso local, pois interpretar a
// string como instante UTC desloca o dia em fusos de offset negativo.
// String vazia devolve nil (filtro ausente).
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local)
	return &date, nil
}
