package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID cria o identificador curto usado para correlacionar os logs
// de uma execução de reingestão
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
