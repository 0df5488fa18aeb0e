package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID devolve um identificador curto, usado para correlacionar os
// logs de uma mesma execução do pipeline de ETL.
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
