// Package report monta o relatório de movimentações: todas as linhas do razão
// (conjunto completo, não só as pendentes de sync) mais a linha de totais.
// A formatação em si fica nos geradores injetados (XLSX e PDF).
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jportela/almoxarifado-api/internal/domain"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
	"github.com/jportela/almoxarifado-api/internal/domain/repository"
)

// Generator porta de formatação: recebe as linhas prontas e o instante de
// geração, devolve os bytes do arquivo.
type Generator interface {
	Generate(rows []ledger.Row, generatedAt time.Time) ([]byte, error)
}

// UseCase gera o relatório de movimentações em XLSX ou PDF.
type UseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
	excel    Generator
	pdf      Generator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, excel, pdf Generator) *UseCase {
	return &UseCase{itemRepo: itemRepo, movRepo: movRepo, excel: excel, pdf: pdf}
}

// MovementsXLSX relatório completo em Excel. Sem movimentações não há
// relatório (ErrNotFound).
func (uc *UseCase) MovementsXLSX() ([]byte, string, error) {
	return uc.generate(uc.excel, "xlsx")
}

// MovementsPDF relatório completo em PDF.
func (uc *UseCase) MovementsPDF() ([]byte, string, error) {
	return uc.generate(uc.pdf, "pdf")
}

func (uc *UseCase) generate(gen Generator, ext string) ([]byte, string, error) {
	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, "", fmt.Errorf("carregar movimentações: %w", err)
	}
	if len(movements) == 0 {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, "", fmt.Errorf("carregar itens: %w", err)
	}

	now := time.Now()
	data, err := gen.Generate(ledger.BuildRows(items, movements), now)
	if err != nil {
		return nil, "", fmt.Errorf("gerar relatório: %w", err)
	}

	dateStr := strings.ReplaceAll(now.Format("2006-01-02"), "-", "")
	return data, fmt.Sprintf("relatorio_movimentacoes_%s.%s", dateStr, ext), nil
}
