package ledger

import "github.com/jportela/almoxarifado-api/internal/domain/entity"

// Pending devolve as movimentações ainda não confirmadas na planilha remota.
func Pending(movements []entity.Movement) []entity.Movement {
	var out []entity.Movement
	for _, m := range movements {
		if !m.Synced {
			out = append(out, m)
		}
	}
	return out
}

// MarkSynced devolve uma NOVA coleção onde as movimentações com os IDs dados
// ficam com Synced=true e as demais permanecem intactas. Nunca muta a entrada:
// quem chama adota e persiste o resultado (um único escritor por vez).
func MarkSynced(movements []entity.Movement, ids []string) []entity.Movement {
	idSet := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		idSet[id] = struct{}{}
	}
	out := make([]entity.Movement, len(movements))
	for i, m := range movements {
		if _, ok := idSet[m.ID]; ok {
			m.Synced = true
		}
		out[i] = m
	}
	return out
}
