package ingesting

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseNumber converte uma string numérica do export em float64. Aceita
// vírgula como separador decimal (primeira vírgula vira ponto). Entrada
// vazia ou não numérica vira zero, nunca erro e nunca NaN/Inf. O chamador
// é responsável por tratar valores negativos como inválidos no domínio.
func parseNumber(value string) float64 {
	if value == "" {
		return 0
	}

	cleaned := strings.Replace(value, ",", ".", 1)

	number, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}

	return number
}

// normalizeLocalDate converte "YYYY-MM-DD" na meia-noite local daquele dia
// calendário, montando a data a partir dos componentes em vez de interpretar
// a string como instante ISO-8601, pois interpretar como UTC desloca o dia
// em fusos de offset negativo. Datas fora do padrão retornam ok=false.
func normalizeLocalDate(value string) (time.Time, bool) {
	if !datePattern.MatchString(value) {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(value[0:4])
	month, _ := strconv.Atoi(value[5:7])
	day, _ := strconv.Atoi(value[8:10])

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}
