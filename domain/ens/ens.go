package ens

import (
	"fmt"

	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
)

// Plugin names an indexing plugin of the external indexer.
type Plugin string

const (
	PluginSubgraph             Plugin = "subgraph"
	PluginBasenames            Plugin = "basenames"
	PluginLineanames           Plugin = "lineanames"
	PluginProtocolAcceleration Plugin = "protocol-acceleration"
	PluginReverseResolvers     Plugin = "reverse-resolvers"
)

func (p Plugin) IsValid() bool {
	switch p {
	case PluginSubgraph, PluginBasenames, PluginLineanames, PluginProtocolAcceleration, PluginReverseResolvers:
		return true
	}
	return false
}

// AccountId identifies a contract instance across chains.
type AccountId struct {
	ChainId domain.ChainId `json:"chainId" bson:"chainId"`
	Address domain.Address `json:"address" bson:"address"`
}

func NewAccountId(chainId domain.ChainId, address domain.Address) AccountId {
	return AccountId{ChainId: chainId, Address: address.ToLower()}
}

func (a AccountId) Equals(b AccountId) bool {
	return a.ChainId == b.ChainId && a.Address.Equals(b.Address)
}

func (a AccountId) String() string {
	return fmt.Sprintf("%d:%s", a.ChainId, a.Address.ToLowerStr())
}

// IndexedChains lists, per enabled plugin, the chains it indexes.
type IndexedChains map[Plugin][]domain.ChainId

func (i IndexedChains) Enabled(plugin Plugin) bool {
	_, ok := i[plugin]
	return ok
}

func (i IndexedChains) Indexes(plugin Plugin, chainId domain.ChainId) bool {
	for _, c := range i[plugin] {
		if c == chainId {
			return true
		}
	}
	return false
}

// Options are the per-request resolution options.
type Options struct {
	Accelerate bool
	// Trace collects acceleration decisions when non-nil.
	Trace *Trace
}

func DefaultOptions() Options {
	return Options{Accelerate: true}
}

// Selection picks the records a caller wants. A nil Addresses or Texts
// means the field is not selected.
type Selection struct {
	Name      bool
	Addresses []bEns.CoinType
	Texts     []string
}

func (s Selection) IsEmpty() bool {
	return !s.Name && s.Addresses == nil && s.Texts == nil
}

func (s Selection) SelectsCoinType(coinType bEns.CoinType) bool {
	for _, c := range s.Addresses {
		if c == coinType {
			return true
		}
	}
	return false
}
