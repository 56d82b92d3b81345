package usecase

import (
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

// CanAccelerate decides whether records of a resolver living on chainId may
// be served from the index. Refusal only costs latency, the RPC source is
// always a valid answer.
func CanAccelerate(c ens.Classification, chainId domain.ChainId, indexed ens.IndexedChains, requested bool) ens.AccelerationDecision {
	if !requested {
		return ens.Refuse(ens.ReasonDisabledByRequest)
	}

	switch cls := c.(type) {
	case ens.KnownOnchainStaticResolver:
		return pluginIndexes(indexed, ens.PluginProtocolAcceleration, chainId)
	case ens.KnownOffchainLookupResolver:
		return pluginIndexes(indexed, cls.DeferTo.Plugin, cls.DeferTo.ChainId)
	case ens.KnownENSIP19ReverseResolver:
		return pluginIndexes(indexed, ens.PluginReverseResolvers, cls.Registrar.ChainId)
	default:
		return ens.Refuse(ens.ReasonResolverUnknown)
	}
}

func pluginIndexes(indexed ens.IndexedChains, plugin ens.Plugin, chainId domain.ChainId) ens.AccelerationDecision {
	if !indexed.Enabled(plugin) {
		return ens.Refuse(ens.ReasonPluginDisabled)
	}
	if !indexed.Indexes(plugin, chainId) {
		return ens.Refuse(ens.ReasonChainNotIndexed)
	}
	return ens.Accelerate()
}
