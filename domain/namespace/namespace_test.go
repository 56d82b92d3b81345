package namespace

import (
	"testing"

	"github.com/stretchr/testify/require"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

func TestGet(t *testing.T) {
	req := require.New(t)
	for _, id := range []Id{Mainnet, Sepolia, Holesky, EnsTestEnv} {
		ns, err := Get(id)
		req.NoError(err)
		req.Equal(id, ns.Id)
		req.Equal(ns.RootChainId, ns.RootRegistry().ChainId)
	}
	_, err := Get("goerli")
	req.ErrorIs(err, domain.ErrUnknownNamespace)
}

func TestENSIP19Chains(t *testing.T) {
	req := require.New(t)
	ns, err := Get(Mainnet)
	req.NoError(err)
	req.Equal([]domain.ChainId{ChainMainnet, ChainOptimism, ChainBase, ChainArbitrum, ChainLinea, ChainScroll}, ns.ENSIP19Chains())

	ns, err = Get(Holesky)
	req.NoError(err)
	req.Equal([]domain.ChainId{ChainHolesky}, ns.ENSIP19Chains())
}

func TestReverseRegistrarFor(t *testing.T) {
	req := require.New(t)
	ns, err := Get(Mainnet)
	req.NoError(err)

	r, ok := ns.ReverseRegistrarFor(bEns.CoinType(0x80002105))
	req.True(ok)
	req.Equal(ChainBase, r.Registrar.ChainId)

	r, ok = ns.ReverseRegistrarFor(bEns.DefaultEvmCoinType)
	req.True(ok)
	req.Equal(ChainMainnet, r.Registrar.ChainId)

	_, ok = ns.ReverseRegistrarFor(bEns.EthCoinType)
	req.False(ok)
}

func TestTablesAreWellFormed(t *testing.T) {
	req := require.New(t)
	for _, id := range []Id{Mainnet, Sepolia, Holesky, EnsTestEnv} {
		ns, err := Get(id)
		req.NoError(err)
		for plugin := range ns.Registries {
			req.True(plugin.IsValid(), plugin)
		}
		for _, r := range ns.OffchainLookupResolvers {
			_, ok := ns.Registry(r.DeferTo.Plugin)
			req.True(ok, "deferred plugin %s has no registry", r.DeferTo.Plugin)
		}
		seen := map[ens.AccountId]bool{}
		for _, r := range ns.StaticResolvers {
			req.False(seen[r.Resolver], r.Resolver.String())
			seen[r.Resolver] = true
		}
		for _, r := range ns.OffchainLookupResolvers {
			req.False(seen[r.Resolver], r.Resolver.String())
			seen[r.Resolver] = true
		}
		for _, r := range ns.ReverseRegistrars {
			chainId, ok := bEns.ChainForCoinType(r.CoinType, ns.RootChainId)
			req.True(ok, r.CoinType.String())
			if r.CoinType != bEns.DefaultEvmCoinType {
				req.Equal(r.Registrar.ChainId, chainId, "registrar for %s lives on another chain", r.CoinType)
			}
		}
		req.Contains(ns.Chains(), ns.RootChainId)
	}
}
