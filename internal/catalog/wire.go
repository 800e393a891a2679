package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"breadlab/internal/catalog/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLRepository(db)
	svc := NewService(repo)
	uc := NewListUseCase(svc)
	return NewController(uc, logger)
}
