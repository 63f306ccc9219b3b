package middleware

import (
	"github.com/MonkyMars/gecho"

	"github.com/vivekrai1999/shopspy/services"
	"github.com/vivekrai1999/shopspy/structs"
)

type Middleware struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	cacheService *services.CacheService
}

func NewMiddleware(cfg *structs.Config, logger *gecho.Logger, cacheService *services.CacheService) *Middleware {
	return &Middleware{
		logger:       logger,
		cfg:          cfg,
		cacheService: cacheService,
	}
}
