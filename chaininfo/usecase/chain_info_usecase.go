package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/riverdex/sor/domain"
	"github.com/riverdex/sor/domain/mvc"
)

type lastSeenHeight struct {
	height    uint64
	updatedAt time.Time
}

type chainInfoUseCase struct {
	chainInfoRepository mvc.ChainInfoRepository

	// A block source may keep answering with the same height while the chain
	// makes progress. The last height increase of every chain is tracked so
	// that such a height is reported as stale.
	maxAllowedHeightUpdateTimeDeltaSecs int
	lastSeenMx                          sync.Mutex
	lastSeen                            map[domain.ChainID]lastSeenHeight

	now func() time.Time
}

// DefaultMaxAllowedHeightUpdateTimeDeltaSecs is used when the config leaves it unset.
const DefaultMaxAllowedHeightUpdateTimeDeltaSecs = 60

var _ mvc.ChainInfoUsecase = &chainInfoUseCase{}

// NewChainInfoUsecase returns a chain info usecase reading heights from chainInfoRepository.
func NewChainInfoUsecase(chainInfoRepository mvc.ChainInfoRepository, maxAllowedHeightUpdateTimeDeltaSecs int) *chainInfoUseCase {
	if maxAllowedHeightUpdateTimeDeltaSecs <= 0 {
		maxAllowedHeightUpdateTimeDeltaSecs = DefaultMaxAllowedHeightUpdateTimeDeltaSecs
	}

	return &chainInfoUseCase{
		chainInfoRepository:                 chainInfoRepository,
		maxAllowedHeightUpdateTimeDeltaSecs: maxAllowedHeightUpdateTimeDeltaSecs,
		lastSeen:                            make(map[domain.ChainID]lastSeenHeight),
		now:                                 time.Now,
	}
}

// GetLatestHeight implements mvc.ChainInfoUsecase.
func (p *chainInfoUseCase) GetLatestHeight(ctx context.Context, chainID domain.ChainID) (uint64, error) {
	latestHeight, ok := p.chainInfoRepository.GetLatestHeight(chainID)
	if !ok {
		return 0, domain.HeightNotAvailableError{ChainID: chainID}
	}

	p.lastSeenMx.Lock()
	defer p.lastSeenMx.Unlock()

	currentTimeUTC := p.now().UTC()

	lastSeen, seen := p.lastSeen[chainID]
	if !seen || latestHeight > lastSeen.height {
		p.lastSeen[chainID] = lastSeenHeight{height: latestHeight, updatedAt: currentTimeUTC}
		return latestHeight, nil
	}

	// Time since the last height increase
	timeDeltaSecs := int(currentTimeUTC.Sub(lastSeen.updatedAt).Seconds())

	if timeDeltaSecs > p.maxAllowedHeightUpdateTimeDeltaSecs {
		domain.SORChainHeightStaleCounter.WithLabelValues(chainID.String()).Inc()

		return 0, domain.StaleHeightError{
			ChainID:             chainID,
			StoredHeight:        latestHeight,
			TimeSinceLastUpdate: timeDeltaSecs,
			MaxAllowedTimeDelta: p.maxAllowedHeightUpdateTimeDeltaSecs,
		}
	}

	return latestHeight, nil
}
