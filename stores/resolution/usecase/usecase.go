package usecase

import (
	"time"

	"github.com/x-xyz/ensapi/base/metrics"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/domain/namespace"
)

const (
	// maxDeferralDepth bounds offchain-lookup deferrals into other registries
	maxDeferralDepth = 2

	defaultTimeout  = 10 * time.Second
	defaultParallel = 8
)

type Config struct {
	Namespace *namespace.Namespace
	Indexed   ens.IndexedChains
	// Timeout caps a whole multichain primary-names request.
	Timeout time.Duration
	// Parallel is the number of chains resolved concurrently.
	Parallel int
}

type impl struct {
	ns       *namespace.Namespace
	indexed  ens.IndexedChains
	index    ens.IndexSource
	rpc      ens.RpcSource
	timeout  time.Duration
	parallel int
	met      metrics.Service
}

func New(cfg *Config, index ens.IndexSource, rpc ens.RpcSource) ens.ResolutionUsecase {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	parallel := cfg.Parallel
	if parallel <= 0 {
		parallel = defaultParallel
	}
	indexed := cfg.Indexed
	if indexed == nil {
		indexed = ens.IndexedChains{}
	}
	return &impl{
		ns:       cfg.Namespace,
		indexed:  indexed,
		index:    index,
		rpc:      rpc,
		timeout:  timeout,
		parallel: parallel,
		met:      metrics.New("resolution"),
	}
}

func (im *impl) DefaultPrimaryNameChains() []domain.ChainId {
	return im.ns.ENSIP19Chains()
}
