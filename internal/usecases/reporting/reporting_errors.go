package reporting

import "errors"

// ErrDatasetUnavailable indica que ainda não houve nenhuma ingestão
// bem-sucedida para a plataforma consultada
var ErrDatasetUnavailable = errors.New("dataset da plataforma ainda não foi ingerido")
