package ingesting

import (
	"strings"
)

// tokenizeLine divide uma linha do CSV em campos, respeitando segmentos
// entre aspas que contenham a vírgula separadora. A varredura é única, da
// esquerda para a direita, com um flag de "dentro de aspas" alternado a
// cada caractere `"`. Limitação documentada: aspas duplicadas ("") contam
// como duas alternâncias, não como aspa literal, e uma aspa não fechada
// não atravessa linhas: cada linha começa com o flag zerado. Suficiente
// para os exports de linha única dos fornecedores.
func tokenizeLine(line string) []string {
	fields := make([]string, 0, 16)

	var current strings.Builder
	inQuotes := false

	for _, char := range line {
		switch {
		case char == '"':
			inQuotes = !inQuotes
		case char == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(char)
		}
	}

	fields = append(fields, strings.TrimSpace(current.String()))

	return fields
}
