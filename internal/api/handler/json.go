package handler

import (
	jsoniter "github.com/json-iterator/go"
)

// Codec JSON do pacote: compatível com a biblioteca padrão, mais rápido
// nas respostas grandes do dashboard.
var json = jsoniter.ConfigCompatibleWithStandardLibrary
