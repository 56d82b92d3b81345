package usecase

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

var nameSelection = ens.Selection{Name: true}

func (im *impl) ResolveReverse(c ctx.Ctx, address domain.Address, chainId domain.ChainId, opts ens.Options) (*string, error) {
	defer im.met.BumpTime("reverse.time").End()

	if !common.IsHexAddress(string(address)) {
		return nil, domain.ErrInvalidAddress
	}
	address = address.Checksum()
	if chainId <= 0 {
		return nil, domain.ErrInvalidChainId
	}
	c = ctx.WithFields(c, log.Fields{"address": address, "chainId": chainId})

	coinType := bEns.CoinTypeForChain(chainId, im.ns.RootChainId)
	name, err := im.reverseName(c, address, coinType, opts)
	if err != nil || name == nil {
		return nil, err
	}
	return im.verify(c, address, coinType, *name, opts)
}

// reverseName looks up the unverified primary name of address for coinType.
func (im *impl) reverseName(c ctx.Ctx, address domain.Address, coinType bEns.CoinType, opts ens.Options) (*string, error) {
	if registrar, ok := im.ns.ReverseRegistrarFor(coinType); ok && coinType != bEns.EthCoinType {
		cls := ens.KnownENSIP19ReverseResolver{Registrar: registrar.Registrar, CoinType: coinType}
		decision := CanAccelerate(cls, registrar.Registrar.ChainId, im.indexed, opts.Accelerate)
		step := ens.TraceStep{
			Operation:      "reverse",
			ChainId:        int32(registrar.Registrar.ChainId),
			Resolver:       &registrar.Registrar,
			Classification: cls.Kind(),
			Decision:       &decision,
		}
		if decision.Accelerated {
			step.Source = ens.SourceIndex
			opts.Trace.Add(step)
			im.met.BumpSum("accelerated", 1, "kind", string(cls.Kind()))
			// the index lookup falls back to the default coin type itself
			return im.index.GetPrimaryName(c, address, coinType)
		}
		step.Source = ens.SourceRpc
		opts.Trace.Add(step)
	}

	records, err := im.resolveReverseName(c, bEns.ReverseName(address, coinType), opts)
	if err != nil {
		return nil, err
	}
	if records.Name != nil || coinType == bEns.EthCoinType || coinType == bEns.DefaultEvmCoinType {
		return records.Name, nil
	}

	records, err = im.resolveReverseName(c, bEns.ReverseName(address, bEns.DefaultEvmCoinType), opts)
	if err != nil {
		return nil, err
	}
	return records.Name, nil
}

func (im *impl) resolveReverseName(c ctx.Ctx, reverseName string, opts ens.Options) (*ens.Records, error) {
	records, err := im.resolveForward(c, reverseName, nameSelection, opts, im.ns.RootRegistry(), ens.PluginSubgraph, 0)
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"reverseName": reverseName,
		}).Warn("resolveForward reverse name failed")
		return nil, err
	}
	return records, nil
}

// verify keeps name only if it is normalized and forward-resolves back to
// address for coinType.
func (im *impl) verify(c ctx.Ctx, address domain.Address, coinType bEns.CoinType, name string, opts ens.Options) (*string, error) {
	if !bEns.IsNormalized(name) {
		c.WithField("primaryName", name).Info("primary name not normalized")
		return nil, nil
	}

	records, err := im.resolveForward(c, name, ens.Selection{Addresses: []bEns.CoinType{coinType}}, opts, im.ns.RootRegistry(), ens.PluginSubgraph, 0)
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"primaryName": name,
		}).Warn("forward verification failed")
		return nil, err
	}

	resolved := records.Address(coinType)
	if resolved == nil || !strings.EqualFold(*resolved, string(address)) {
		opts.Trace.Add(ens.TraceStep{Operation: "verify", Name: name, Source: ens.SourceNone})
		return nil, nil
	}
	return &name, nil
}
