package checkout

import (
	"go.uber.org/zap"

	"breadlab/internal/config"
)

func NewModule(cfg config.StripeConfig, logger *zap.Logger) *Controller {
	gateway := NewStripeGateway(cfg.SecretKey)
	service := NewService(gateway, cfg.SessionTimeout, logger)
	return NewController(service, logger)
}
