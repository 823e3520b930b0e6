package dto

// Estados possíveis de uma sincronização. "noop" (nada pendente) é distinto de
// "sent" para a UI poder dizer "tudo em dia" vs "enviadas N linhas".
const (
	SyncStatusNoop = "noop"
	SyncStatusSent = "sent"
)

// SyncResult resultado de uma invocação do protocolo de reconciliação.
type SyncResult struct {
	Status string `json:"status"` // noop | sent
	Rows   int    `json:"rows"`   // linhas transmitidas
}
