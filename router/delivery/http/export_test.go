package http

import (
	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
)

func NewTestRouterHandler(us mvc.RouterUsecase, defaultChainID domain.ChainID, logger log.Logger) *RouterHandler {
	return &RouterHandler{
		RUsecase:       us,
		defaultChainID: defaultChainID,
		logger:         logger,
	}
}
