// Package sync implementa o protocolo de reconciliação com a planilha remota:
// entregar exatamente as movimentações ainda não sincronizadas, exatamente uma
// vez cada, sem ambiguidade de sucesso parcial.
package sync

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jportela/almoxarifado-api/internal/application/dto"
	"github.com/jportela/almoxarifado-api/internal/domain"
	"github.com/jportela/almoxarifado-api/internal/domain/ledger"
	"github.com/jportela/almoxarifado-api/internal/domain/repository"
	"github.com/jportela/almoxarifado-api/pkg/logger"
)

// UseCase orquestra o protocolo. Um único envio em andamento por vez
// (busy-flag, não fila): chamada concorrente recebe ErrSyncInProgress.
type UseCase struct {
	itemRepo repository.ItemRepository
	movRepo  repository.MovementRepository
	sender   SheetSender
	log      *logger.Logger

	busy atomic.Bool
}

// NewUseCase constrói o caso de uso.
func NewUseCase(itemRepo repository.ItemRepository, movRepo repository.MovementRepository, sender SheetSender, log *logger.Logger) *UseCase {
	return &UseCase{itemRepo: itemRepo, movRepo: movRepo, sender: sender, log: log}
}

// Run executa uma rodada do protocolo:
//
//  1. pendentes = movimentações com Synced=false; vazio -> no-op (transporte
//     nunca é invocado);
//  2. delta completo via BuildRows sobre TODAS as movimentações, para os
//     saldos antes/depois saírem corretos;
//  3. seleciona só as linhas cuja movimentação está pendente e remove o ID
//     interno da forma transmitida;
//  4. envia; falha de transporte ou recusa remota devolve erro com as flags
//     intactas — o retry reenviará o mesmo conjunto;
//  5. com sucesso confirmado, marca como sincronizadas exatamente as
//     pendentes do passo 1.
//
// Invocar de novo sem movimentações novas é no-op: o protocolo é idempotente.
func (uc *UseCase) Run(ctx context.Context) (dto.SyncResult, error) {
	if !uc.busy.CompareAndSwap(false, true) {
		return dto.SyncResult{}, domain.ErrSyncInProgress
	}
	defer uc.busy.Store(false)

	movements, err := uc.movRepo.ListAll()
	if err != nil {
		return dto.SyncResult{}, fmt.Errorf("carregar movimentações: %w", err)
	}

	pending := ledger.Pending(movements)
	if len(pending) == 0 {
		uc.log.Debug().Msg("sync: nada pendente")
		return dto.SyncResult{Status: dto.SyncStatusNoop}, nil
	}

	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return dto.SyncResult{}, fmt.Errorf("carregar itens: %w", err)
	}

	pendingIDs := make(map[string]struct{}, len(pending))
	ids := make([]string, 0, len(pending))
	for _, m := range pending {
		pendingIDs[m.ID] = struct{}{}
		ids = append(ids, m.ID)
	}

	// Saldos calculados sobre o conjunto completo; transmitido só o recorte pendente.
	var rows []SheetRow
	for _, r := range ledger.BuildRows(items, movements) {
		if _, ok := pendingIDs[r.Movement.ID]; !ok {
			continue
		}
		doc := r.Movement.Document
		if doc == "" {
			doc = r.Movement.AttachmentName
		}
		rows = append(rows, SheetRow{
			Date:           r.Movement.Date,
			Item:           r.Item.Description,
			Classification: r.Item.Classification,
			Type:           r.Movement.Type,
			Entrada:        r.EntradaQty,
			Saida:          r.SaidaQty,
			SaldoAntes:     r.BalanceBefore,
			SaldoDepois:    r.BalanceAfter,
			Document:       doc,
			Notes:          r.Movement.Notes,
		})
	}

	res, err := uc.sender.Send(ctx, Payload{Mode: ModeAppend, Rows: rows})
	if err != nil {
		uc.log.Warn().Err(err).Int("pendentes", len(pending)).Msg("sync: falha de transporte, flags intactas")
		return dto.SyncResult{}, fmt.Errorf("enviar à planilha: %w", err)
	}
	if !res.Success {
		uc.log.Warn().Int("pendentes", len(pending)).Msg("sync: planilha remota recusou o envio")
		return dto.SyncResult{}, domain.ErrRemoteRejected
	}

	// Só aqui, com aceite confirmado, as pendentes viram sincronizadas.
	if err := uc.movRepo.MarkSynced(ids); err != nil {
		return dto.SyncResult{}, fmt.Errorf("marcar sincronizadas: %w", err)
	}

	uc.log.Info().Int("linhas", len(rows)).Int("aceitas", res.RowsAccepted).Msg("sync: concluído")
	return dto.SyncResult{Status: dto.SyncStatusSent, Rows: len(rows)}, nil
}
