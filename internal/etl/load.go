package etl

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// load substitui o conteúdo inteiro da tabela sales pelo conjunto limpo.
// Apenas esta etapa é atômica do ponto de vista do banco; o pipeline como
// um todo não é transacional.
func (s *Service) load(ctx context.Context, entries []domain.SalesRow) (int64, error) {
	written, err := s.salesRepo.ReplaceAll(ctx, entries)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	return written, nil
}
