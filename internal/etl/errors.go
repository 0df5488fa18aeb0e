package etl

import (
	"errors"
	"fmt"
)

// Stage identifica a etapa do pipeline em que um erro ocorreu.
type Stage string

const (
	StageExtract   Stage = "extract"
	StageTransform Stage = "transform"
	StageLoad      Stage = "load"
)

// Erros específicos do pipeline de ETL
var (
	// Erros de extração
	ErrSourceUnreadable = errors.New("arquivo de origem ausente ou ilegível")
	ErrMalformedSource  = errors.New("arquivo de origem malformado")
	ErrEmptySource      = errors.New("arquivo de origem sem linha de cabeçalho")

	// Erros de transformação
	ErrDuplicatedColumn = errors.New("colunas duplicadas após normalização")
	ErrMissingColumns   = errors.New("colunas obrigatórias ausentes")

	// Erros de carga
	ErrLoadFailed = errors.New("erro ao substituir a tabela sales")
)

// StageError associa um erro à etapa do pipeline que o produziu. O
// chamador decide a política de abortar ou repetir a partir da etapa;
// nenhum estado parcial é persistido.
type StageError struct {
	Stage Stage // Etapa que falhou
	Err   error // Erro base
}

// Error implementa a interface error
func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

// Unwrap retorna o erro subjacente
func (e *StageError) Unwrap() error {
	return e.Err
}

// NewExtractionError marca err como falha da etapa de extração.
func NewExtractionError(err error) *StageError {
	return &StageError{Stage: StageExtract, Err: err}
}

// NewTransformationError marca err como falha da etapa de transformação.
func NewTransformationError(err error) *StageError {
	return &StageError{Stage: StageTransform, Err: err}
}

// NewLoadError marca err como falha da etapa de carga.
func NewLoadError(err error) *StageError {
	return &StageError{Stage: StageLoad, Err: err}
}

// StageOf devolve a etapa associada ao erro, quando houver.
func StageOf(err error) (Stage, bool) {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Stage, true
	}
	return "", false
}
