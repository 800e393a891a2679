package cart

import (
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"breadlab/internal/cart/repository"
)

func NewModule(client *goredis.Client, logger *zap.Logger) (*Controller, *WatchHub) {
	repo := repository.NewRedisCartRepository(client)
	ctrl := NewController(repo, logger)
	hub := NewWatchHub(repo, logger)
	return ctrl, hub
}
