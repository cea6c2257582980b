package unitofwork

import (
	"context"

	"paint-advisor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	PaintRepository() contract.PaintRepository
	PaintEmbeddingRepository() contract.PaintEmbeddingRepository
	ChatMessageRepository() contract.ChatMessageRepository
}
