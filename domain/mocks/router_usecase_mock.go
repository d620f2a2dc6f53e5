package mocks

import (
	"context"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
)

var _ mvc.RouterUsecase = &RouterUsecaseMock{}

type RouterUsecaseMock struct {
	GetOptimalQuoteFunc   func(ctx context.Context, req domain.QuoteRequest) (domain.SwapRoute, error)
	GetCandidatePoolsFunc func(ctx context.Context, chainID domain.ChainID, tokenIn, tokenOut domain.Asset) (domain.CandidatePoolSelection, error)

	Config domain.RouterConfig
}

// GetOptimalQuote implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetOptimalQuote(ctx context.Context, req domain.QuoteRequest) (domain.SwapRoute, error) {
	if m.GetOptimalQuoteFunc != nil {
		return m.GetOptimalQuoteFunc(ctx, req)
	}
	panic("unimplemented")
}

// GetCandidatePools implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetCandidatePools(ctx context.Context, chainID domain.ChainID, tokenIn, tokenOut domain.Asset) (domain.CandidatePoolSelection, error) {
	if m.GetCandidatePoolsFunc != nil {
		return m.GetCandidatePoolsFunc(ctx, chainID, tokenIn, tokenOut)
	}
	panic("unimplemented")
}

// GetConfig implements mvc.RouterUsecase.
func (m *RouterUsecaseMock) GetConfig() domain.RouterConfig {
	return m.Config
}
