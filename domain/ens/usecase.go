package ens

import (
	"github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
)

// IndexSource serves records from the indexer's materialized state.
type IndexSource interface {
	// Get returns nil records when the (resolver, node) pair is not indexed.
	Get(c ctx.Ctx, resolver AccountId, node bEns.Node, sel Selection, addressDefaulting bool) (*Records, error)
	// GetResolver returns the empty address when the registry has no resolver for node.
	GetResolver(c ctx.Ctx, registry AccountId, node bEns.Node) (domain.Address, error)
	// GetPrimaryName returns nil when address has no name for coinType or the default coin type.
	GetPrimaryName(c ctx.Ctx, address domain.Address, coinType bEns.CoinType) (*string, error)
}

// RpcSource serves records with live contract calls.
type RpcSource interface {
	Get(c ctx.Ctx, resolver AccountId, name string, sel Selection, exactMatch bool) (*Records, error)
	GetResolver(c ctx.Ctx, registry AccountId, node bEns.Node) (domain.Address, error)
}

type ResolutionUsecase interface {
	ResolveForward(c ctx.Ctx, name string, sel Selection, opts Options) (*Records, error)
	// ResolveReverse returns nil when address has no verified primary name on chainId.
	ResolveReverse(c ctx.Ctx, address domain.Address, chainId domain.ChainId, opts Options) (*string, error)
	ResolveAutomatic(c ctx.Ctx, input string, sel Selection, opts Options) (*Records, error)
	// ResolvePrimaryNames has exactly one entry per requested chain.
	ResolvePrimaryNames(c ctx.Ctx, address domain.Address, chainIds []domain.ChainId, opts Options) (map[domain.ChainId]PrimaryNameResult, error)
	// DefaultPrimaryNameChains is the root chain plus every chain with a
	// known ENSIP-19 reverse registrar.
	DefaultPrimaryNameChains() []domain.ChainId
}
