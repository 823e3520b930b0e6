package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrSyncInProgress     = errors.New("sincronização já em andamento")
	ErrNoWebAppURL        = errors.New("URL do WebApp do Google Sheets não configurada")
	ErrRemoteRejected     = errors.New("planilha remota recusou o envio")
)
