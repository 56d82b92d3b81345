package ens

import (
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
)

type ClassificationKind string

const (
	KindUnknown                     ClassificationKind = "Unknown"
	KindKnownOnchainStaticResolver  ClassificationKind = "KnownOnchainStaticResolver"
	KindKnownOffchainLookupResolver ClassificationKind = "KnownOffchainLookupResolver"
	KindKnownENSIP19ReverseResolver ClassificationKind = "KnownENSIP19ReverseResolver"
)

// Classification is the known behavior of a resolver contract. The set of
// implementations is closed to this package.
type Classification interface {
	Kind() ClassificationKind
	isClassification()
}

type UnknownResolver struct{}

type KnownOnchainStaticResolver struct {
	AddressDefaulting bool
}

// DeferTo names the plugin and chain whose registry backs an offchain gateway.
type DeferTo struct {
	Plugin  Plugin         `json:"plugin"`
	ChainId domain.ChainId `json:"chainId"`
}

type KnownOffchainLookupResolver struct {
	DeferTo DeferTo
}

type KnownENSIP19ReverseResolver struct {
	Registrar AccountId
	CoinType  bEns.CoinType
}

func (UnknownResolver) Kind() ClassificationKind { return KindUnknown }
func (KnownOnchainStaticResolver) Kind() ClassificationKind {
	return KindKnownOnchainStaticResolver
}
func (KnownOffchainLookupResolver) Kind() ClassificationKind {
	return KindKnownOffchainLookupResolver
}
func (KnownENSIP19ReverseResolver) Kind() ClassificationKind {
	return KindKnownENSIP19ReverseResolver
}

func (UnknownResolver) isClassification()             {}
func (KnownOnchainStaticResolver) isClassification()  {}
func (KnownOffchainLookupResolver) isClassification() {}
func (KnownENSIP19ReverseResolver) isClassification() {}

type AccelerationReason string

const (
	ReasonDisabledByRequest AccelerationReason = "accelerate_disabled_by_request"
	ReasonPluginDisabled    AccelerationReason = "plugin_disabled"
	ReasonChainNotIndexed   AccelerationReason = "chain_not_indexed"
	ReasonResolverUnknown   AccelerationReason = "resolver_unknown"
	ReasonWildcardMatch     AccelerationReason = "wildcard_match"
	ReasonAccelerated       AccelerationReason = "accelerated"
)

type AccelerationDecision struct {
	Accelerated bool               `json:"accelerated"`
	Reason      AccelerationReason `json:"reason"`
}

func Refuse(reason AccelerationReason) AccelerationDecision {
	return AccelerationDecision{Reason: reason}
}

func Accelerate() AccelerationDecision {
	return AccelerationDecision{Accelerated: true, Reason: ReasonAccelerated}
}
