package namespace

import (
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

const (
	ChainMainnet  domain.ChainId = 1
	ChainOptimism domain.ChainId = 10
	ChainBase     domain.ChainId = 8453
	ChainHolesky  domain.ChainId = 17000
	ChainArbitrum domain.ChainId = 42161
	ChainLinea    domain.ChainId = 59144
	ChainScroll   domain.ChainId = 534352
	ChainSepolia  domain.ChainId = 11155111
	ChainDevnet   domain.ChainId = 1337

	ensRegistry = "0x00000000000C2E074eC69A0dFb2997BA6C7d2e1e"
	// same address on every L2
	l2ReverseRegistrar = "0x0000000000D8e504002cC26E3Ec46D81971C1664"
)

func l2ReverseRegistrars(rootChainId domain.ChainId, chainIds ...domain.ChainId) []ReverseRegistrar {
	res := make([]ReverseRegistrar, 0, len(chainIds))
	for _, chainId := range chainIds {
		res = append(res, ReverseRegistrar{
			Registrar: account(chainId, l2ReverseRegistrar),
			CoinType:  bEns.CoinTypeForChain(chainId, rootChainId),
		})
	}
	return res
}

var mainnet = Namespace{
	Id:          Mainnet,
	RootChainId: ChainMainnet,
	Registries: map[ens.Plugin]ens.AccountId{
		ens.PluginSubgraph:   account(ChainMainnet, ensRegistry),
		ens.PluginBasenames:  account(ChainBase, "0xb94704422c2a1e396835a571837aa5ae53285a95"),
		ens.PluginLineanames: account(ChainLinea, "0x50130b669B28C339991d8676FA73CF122a121267"),
	},
	StaticResolvers: []StaticResolver{
		// PublicResolver v3
		{Resolver: account(ChainMainnet, "0x231b0Ee14048e9dCcD1d247744d114a4EB5E8E63")},
		// PublicResolver v2
		{Resolver: account(ChainMainnet, "0x4976fb03C32e5B8cfe2b6cCB31c09Ba78EBaBa41")},
		// PublicResolver with ENSIP-19 default address
		{Resolver: account(ChainMainnet, "0xF29100983E058B709F3D539b0c765937B804AC15"), AddressDefaulting: true},
		// Basenames L2Resolver
		{Resolver: account(ChainBase, "0xC6d566A56A1aFf6508b41f6c90ff131615583BCD")},
	},
	OffchainLookupResolvers: []OffchainLookupResolver{
		{
			// base.eth L1Resolver
			Resolver: account(ChainMainnet, "0xde9049636F4a1dfE0a64d1bFe3155C0A14C54F31"),
			DeferTo:  ens.DeferTo{Plugin: ens.PluginBasenames, ChainId: ChainBase},
		},
		{
			// linea.eth L1Resolver
			Resolver: account(ChainMainnet, "0xde16ee87B0C019499cEBDde29c9F7686560f679a"),
			DeferTo:  ens.DeferTo{Plugin: ens.PluginLineanames, ChainId: ChainLinea},
		},
	},
	ReverseRegistrars: append([]ReverseRegistrar{
		{
			Registrar: account(ChainMainnet, "0x283F227c4Bd38ecE252C4Ae7ECE650B0e913f1f9"),
			CoinType:  bEns.DefaultEvmCoinType,
			Resolvers: []ens.AccountId{account(ChainMainnet, "0xA7d635c8de9a58a228AA69353a1699C7Cc240DCF")},
		},
	}, l2ReverseRegistrars(ChainMainnet, ChainOptimism, ChainBase, ChainArbitrum, ChainLinea, ChainScroll)...),
}

var sepolia = Namespace{
	Id:          Sepolia,
	RootChainId: ChainSepolia,
	Registries: map[ens.Plugin]ens.AccountId{
		ens.PluginSubgraph: account(ChainSepolia, ensRegistry),
	},
	StaticResolvers: []StaticResolver{
		{Resolver: account(ChainSepolia, "0x8FADE66B79cC9f707aB26799354482EB93a5B7dD")},
	},
}

var holesky = Namespace{
	Id:          Holesky,
	RootChainId: ChainHolesky,
	Registries: map[ens.Plugin]ens.AccountId{
		ens.PluginSubgraph: account(ChainHolesky, ensRegistry),
	},
}

var ensTestEnv = Namespace{
	Id:          EnsTestEnv,
	RootChainId: ChainDevnet,
	Registries: map[ens.Plugin]ens.AccountId{
		ens.PluginSubgraph: account(ChainDevnet, "0x5FbDB2315678afecb367f032d93F642f64180aa3"),
	},
}
