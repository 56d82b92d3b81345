package ens

import (
	"github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
)

type AddressRecord struct {
	CoinType uint32 `bson:"coinType"`
	Address  string `bson:"address"`
}

type TextRecord struct {
	Key   string `bson:"key"`
	Value string `bson:"value"`
}

// ResolverRecords is the materialized state of one node on one resolver,
// as written by the protocol-acceleration indexer.
type ResolverRecords struct {
	ChainId        domain.ChainId  `bson:"chainId"`
	Resolver       domain.Address  `bson:"resolver"`
	Node           string          `bson:"node"`
	Name           *string         `bson:"name"`
	AddressRecords []AddressRecord `bson:"addressRecords"`
	TextRecords    []TextRecord    `bson:"textRecords"`
}

func (r *ResolverRecords) AddressOf(coinType bEns.CoinType) (string, bool) {
	for _, a := range r.AddressRecords {
		if a.CoinType == uint32(coinType) {
			return a.Address, true
		}
	}
	return "", false
}

func (r *ResolverRecords) TextOf(key string) (string, bool) {
	for _, t := range r.TextRecords {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

type ResolverRecordsId struct {
	ChainId  domain.ChainId `bson:"chainId"`
	Resolver domain.Address `bson:"resolver"`
	Node     string         `bson:"node"`
}

func NewResolverRecordsId(resolver AccountId, node bEns.Node) ResolverRecordsId {
	return ResolverRecordsId{
		ChainId:  resolver.ChainId,
		Resolver: resolver.Address.ToLower(),
		Node:     node.Hex(),
	}
}

// DomainResolver is the resolver a registry has set for a node.
type DomainResolver struct {
	ChainId  domain.ChainId `bson:"chainId"`
	Registry domain.Address `bson:"registry"`
	Node     string         `bson:"node"`
	Resolver domain.Address `bson:"resolver"`
}

type DomainResolverId struct {
	ChainId  domain.ChainId `bson:"chainId"`
	Registry domain.Address `bson:"registry"`
	Node     string         `bson:"node"`
}

func NewDomainResolverId(registry AccountId, node bEns.Node) DomainResolverId {
	return DomainResolverId{
		ChainId:  registry.ChainId,
		Registry: registry.Address.ToLower(),
		Node:     node.Hex(),
	}
}

// PrimaryName is a name set on an ENSIP-19 StandaloneReverseRegistrar.
type PrimaryName struct {
	Address  domain.Address `bson:"address"`
	CoinType uint32         `bson:"coinType"`
	Name     string         `bson:"name"`
}

type PrimaryNameId struct {
	Address  domain.Address `bson:"address"`
	CoinType uint32         `bson:"coinType"`
}

func NewPrimaryNameId(address domain.Address, coinType bEns.CoinType) PrimaryNameId {
	return PrimaryNameId{Address: address.ToLower(), CoinType: uint32(coinType)}
}

// The repos return domain.ErrNotFound when the document is absent.

type ResolverRecordsRepo interface {
	FindOne(c ctx.Ctx, id ResolverRecordsId) (*ResolverRecords, error)
}

type DomainResolverRepo interface {
	FindOne(c ctx.Ctx, id DomainResolverId) (*DomainResolver, error)
}

type PrimaryNameRepo interface {
	FindOne(c ctx.Ctx, id PrimaryNameId) (*PrimaryName, error)
}
