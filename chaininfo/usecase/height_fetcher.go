package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/riverdex/sor/chaininfo/client"
	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
	"github.com/riverdex/sor/log"
	"github.com/riverdex/sor/sorutil/datafetchers"
)

var errNoHeightFetched = errors.New("no chain height was fetched")

// NewHeightFetcher refreshes the latest heights of chainIDs every interval
// and stores them in chainInfoRepository. Close the returned fetcher to stop.
func NewHeightFetcher(chainClient client.Client, chainInfoRepository mvc.ChainInfoRepository, chainIDs []domain.ChainID, interval time.Duration, logger log.Logger) *datafetchers.IntervalFetcher[map[domain.ChainID]uint64] {
	return datafetchers.NewIntervalFetcher(fetchHeights(chainClient, chainInfoRepository, chainIDs, interval, logger), interval)
}

func fetchHeights(chainClient client.Client, chainInfoRepository mvc.ChainInfoRepository, chainIDs []domain.ChainID, timeout time.Duration, logger log.Logger) func() (map[domain.ChainID]uint64, error) {
	return func() (map[domain.ChainID]uint64, error) {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		heights := make(map[domain.ChainID]uint64, len(chainIDs))
		for _, chainID := range chainIDs {
			height, err := chainClient.GetLatestHeight(ctx, chainID)
			if err != nil {
				logger.Error("failed to fetch latest height", zap.Stringer("chain_id", chainID), zap.Error(err))
				continue
			}

			chainInfoRepository.StoreLatestHeight(chainID, height)
			heights[chainID] = height
		}

		if len(heights) == 0 {
			return nil, errNoHeightFetched
		}

		return heights, nil
	}
}
