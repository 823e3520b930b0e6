package almox

import (
	"io"

	"github.com/jportela/almoxarifado-api/internal/domain/entity"
)

// SpreadsheetParser porta para o parser de planilha de inventário.
// A implementação (excelize) decide aba, mapeamento de colunas e coerção
// numérica; aqui só interessa a lista de itens resultante, com Description
// não vazia e ID já calculado como chave natural.
type SpreadsheetParser interface {
	ParseItems(r io.Reader) (items []entity.Item, skipped int, err error)
}
