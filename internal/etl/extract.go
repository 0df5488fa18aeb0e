package etl

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// RawTable é o conteúdo bruto do CSV: cabeçalho e linhas na ordem do
// arquivo, sem qualquer interpretação de tipos.
type RawTable struct {
	Headers []string
	Rows    [][]string
}

// extract lê o arquivo de origem inteiro em memória. Arquivo ausente,
// ilegível ou malformado (linhas com contagem de campos divergente,
// aspas quebradas) encerra a etapa; não há retentativa nem carga parcial.
func (s *Service) extract(path string) (*RawTable, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnreadable, path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedSource, path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, path)
	}

	headers := records[0]
	// Arquivos exportados pelo Excel costumam trazer BOM na primeira célula
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}

	return &RawTable{
		Headers: headers,
		Rows:    records[1:],
	}, nil
}
