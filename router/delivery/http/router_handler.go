package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
	"github.com/riverdex/sor/router/types"
)

// RouterHandler  represent the httphandler for the router
type RouterHandler struct {
	RUsecase       mvc.RouterUsecase
	defaultChainID domain.ChainID
	logger         log.Logger
}

const routerResource = "/router"

func formatRouterResource(resource string) string {
	return routerResource + resource
}

// NewRouterHandler will initialize the router/ resources endpoint
func NewRouterHandler(e *echo.Echo, us mvc.RouterUsecase, defaultChainID domain.ChainID, logger log.Logger) {
	handler := &RouterHandler{
		RUsecase:       us,
		defaultChainID: defaultChainID,
		logger:         logger,
	}
	e.POST(formatRouterResource("/quote"), handler.GetOptimalQuote)
	e.GET(formatRouterResource("/candidate-pools"), handler.GetCandidatePools)
	e.GET(formatRouterResource("/config"), handler.GetConfig)
}

// @Summary Optimal Quote
// @Description returns the best, possibly split, route for the given trade.
// A trade that cannot be filled returns an empty route with status 200.
// @ID post-route-quote
// @Accept  json
// @Produce  json
// @Param  request  body  types.GetQuoteRequest  true  "Quote request. inputAmount is in the smallest unit of the amount token."
// @Success 200  {object}  domain.SwapRoute  "The computed best route quote"
// @Failure 400  {object}  domain.ResponseError  "The request is not valid"
// @Router /router/quote [post]
func (a *RouterHandler) GetOptimalQuote(c echo.Context) error {
	ctx := c.Request().Context()

	var req types.GetQuoteRequest
	if err := req.UnmarshalHTTPRequest(c); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	if err := req.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	quoteRequest, err := req.ToDomain()
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	swapRoute, err := a.RUsecase.GetOptimalQuote(ctx, quoteRequest)
	if err != nil {
		a.logger.Error("failed to compute quote", zap.Stringer("chain_id", quoteRequest.ChainID), zap.Stringer("token_in", quoteRequest.TokenIn), zap.Stringer("token_out", quoteRequest.TokenOut), zap.Error(err))
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, swapRoute)
}

// @Summary Candidate Pools
// @Description returns the candidate pools selected for the given pair, grouped by selection bucket.
// By default only pool addresses are returned. Set `verbose` to return the full pools.
// @ID get-candidate-pools
// @Produce  json
// @Param  chainId  query  int  false  "Chain id, defaults to the first configured chain."
// @Param  tokenIn  query  string  true  "Address of the token in."
// @Param  tokenOut  query  string  true  "Address of the token out."
// @Param  verbose  query  bool  false  "Return full pools instead of addresses."
// @Success 200  {object}  domain.CandidatePoolSelectionSummary  "Candidate pools by bucket"
// @Router /router/candidate-pools [get]
func (a *RouterHandler) GetCandidatePools(c echo.Context) error {
	ctx := c.Request().Context()

	isVerbose, err := domain.ParseBooleanQueryParam(c, "verbose")
	if err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	var req types.GetCandidatePoolsRequest
	if err := req.UnmarshalHTTPRequest(c, a.defaultChainID); err != nil {
		return c.JSON(http.StatusBadRequest, domain.ResponseError{Message: err.Error()})
	}

	selection, err := a.RUsecase.GetCandidatePools(ctx, req.ChainID, req.TokenIn, req.TokenOut)
	if err != nil {
		return c.JSON(domain.GetStatusCode(err), domain.ResponseError{Message: err.Error()})
	}

	if isVerbose {
		return c.JSON(http.StatusOK, selection)
	}

	return c.JSON(http.StatusOK, selection.Summary())
}

// @Summary Router Config
// @Description returns the routing tunables the router runs with.
// @ID get-router-config
// @Produce  json
// @Success 200  {object}  domain.RouterConfig  "Router config"
// @Router /router/config [get]
func (a *RouterHandler) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, a.RUsecase.GetConfig())
}
