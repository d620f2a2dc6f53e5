package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
)

// PoolsHandler  represent the httphandler for pools
type PoolsHandler struct {
	PUsecase       mvc.PoolsUsecase
	defaultChainID domain.ChainID
}

const resourcePrefix = "/pools"

func formatPoolsResource(resource string) string {
	return resourcePrefix + resource
}

// NewPoolsHandler will initialize the pools/ resources endpoint
func NewPoolsHandler(e *echo.Echo, us mvc.PoolsUsecase, defaultChainID domain.ChainID) {
	handler := &PoolsHandler{
		PUsecase:       us,
		defaultChainID: defaultChainID,
	}

	e.GET(formatPoolsResource(""), handler.GetPools)
	e.GET(formatPoolsResource("/:address"), handler.GetPool)
}

// @Summary Get pools
// @Description Returns the current filtered pool snapshot of the chain.
// @ID get-pools
// @Produce  json
// @Param  chainId  query  int  false  "Chain id, defaults to the first configured chain."
// @Success 200  {object}  domain.PoolsSnapshot  "The pool snapshot"
// @Router /pools [get]
func (a *PoolsHandler) GetPools(c echo.Context) error {
	chainID, err := domain.ParseChainIDQueryParam(c, a.defaultChainID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	snapshot, err := a.PUsecase.GetPools(c.Request().Context(), chainID, nil)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, snapshot)
}

// @Summary Get pool by address
// @Description Returns a single pool of the current snapshot.
// @ID get-pool
// @Produce  json
// @Param  address  path  string  true  "Pool address."
// @Param  chainId  query  int  false  "Chain id, defaults to the first configured chain."
// @Success 200  {object}  domain.Pool  "The pool"
// @Failure 404  {object}  domain.ResponseError  "The pool is not in the snapshot"
// @Router /pools/{address} [get]
func (a *PoolsHandler) GetPool(c echo.Context) error {
	chainID, err := domain.ParseChainIDQueryParam(c, a.defaultChainID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	address, err := domain.TronAddressToHex(c.Param("address"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	snapshot, err := a.PUsecase.GetPools(c.Request().Context(), chainID, nil)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	for _, pool := range snapshot.Pools {
		if pool.Address == address {
			return c.JSON(http.StatusOK, pool)
		}
	}

	return c.JSON(http.StatusNotFound, domain.ResponseError{Message: domain.PoolNotFoundError{PoolAddress: address}.Error()})
}
