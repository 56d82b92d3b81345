package usecase

import (
	"github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

func (im *impl) ResolveForward(c ctx.Ctx, name string, sel ens.Selection, opts ens.Options) (*ens.Records, error) {
	defer im.met.BumpTime("forward.time").End()

	if !bEns.IsNormalized(name) {
		return nil, domain.ErrNameNotNormalized
	}
	c = ctx.WithFields(c, log.Fields{"name": name})
	return im.resolveForward(c, name, sel, opts, im.ns.RootRegistry(), ens.PluginSubgraph, 0)
}

// activeResolver is the resolver found for a name and whether it was set on
// the name itself rather than on an ancestor.
type activeResolver struct {
	account    ens.AccountId
	exactMatch bool
}

func (im *impl) resolveForward(c ctx.Ctx, name string, sel ens.Selection, opts ens.Options, registry ens.AccountId, plugin ens.Plugin, depth int) (*ens.Records, error) {
	active, err := im.findResolver(c, name, registry, plugin, opts)
	if err != nil {
		return nil, err
	}
	if active == nil {
		opts.Trace.Add(ens.TraceStep{Operation: "records", Name: name, ChainId: int32(registry.ChainId), Source: ens.SourceNone})
		return ens.NewRecords(sel), nil
	}

	resolver := active.account
	cls := Classify(im.ns, resolver.ChainId, resolver.Address)
	decision := CanAccelerate(cls, resolver.ChainId, im.indexed, opts.Accelerate)
	if _, static := cls.(ens.KnownOnchainStaticResolver); static && decision.Accelerated && !active.exactMatch {
		// an index row only answers for the node it was written under, a
		// resolver set on an ancestor answers for name only through ENSIP-10
		decision = ens.Refuse(ens.ReasonWildcardMatch)
	}
	step := ens.TraceStep{
		Operation:      "records",
		Name:           name,
		ChainId:        int32(resolver.ChainId),
		Resolver:       &resolver,
		Classification: cls.Kind(),
		Decision:       &decision,
	}

	if decision.Accelerated {
		switch kind := cls.(type) {
		case ens.KnownOffchainLookupResolver:
			target, ok := im.ns.Registry(kind.DeferTo.Plugin)
			if ok && target.ChainId == kind.DeferTo.ChainId && depth < maxDeferralDepth {
				step.Operation = "defer"
				step.Source = ens.SourceIndex
				opts.Trace.Add(step)
				return im.resolveForward(c, name, sel, opts, target, kind.DeferTo.Plugin, depth+1)
			}

		case ens.KnownENSIP19ReverseResolver:
			if label, coinType, ok := bEns.ParseReverseName(name); ok {
				primary, err := im.index.GetPrimaryName(c, domain.Address("0x"+label), coinType)
				if err != nil {
					return nil, err
				}
				records := ens.NewRecords(sel)
				records.SetName(primary)
				step.Source = ens.SourceIndex
				opts.Trace.Add(step)
				im.met.BumpSum("accelerated", 1, "kind", string(cls.Kind()))
				return records, nil
			}

		case ens.KnownOnchainStaticResolver:
			records, err := im.index.Get(c, resolver, bEns.NameHash(name), sel, kind.AddressDefaulting)
			if err != nil {
				return nil, err
			}
			if records != nil {
				step.Source = ens.SourceIndex
				opts.Trace.Add(step)
				im.met.BumpSum("accelerated", 1, "kind", string(cls.Kind()))
				return records, nil
			}
		}
		im.met.BumpSum("fallback", 1, "kind", string(cls.Kind()))
	}

	step.Source = ens.SourceRpc
	opts.Trace.Add(step)
	return im.rpc.Get(c, resolver, name, sel, active.exactMatch)
}

// findResolver walks from name towards the root and returns the first
// resolver set in registry, or nil when none is set. The index answers when
// the registry's chain is indexed by plugin.
func (im *impl) findResolver(c ctx.Ctx, name string, registry ens.AccountId, plugin ens.Plugin, opts ens.Options) (*activeResolver, error) {
	useIndex := opts.Accelerate && im.indexed.Indexes(plugin, registry.ChainId)
	source := ens.SourceRpc
	if useIndex {
		source = ens.SourceIndex
	}

	for n := name; ; n = bEns.Parent(n) {
		node := bEns.NameHash(n)

		var (
			address domain.Address
			err     error
		)
		if useIndex {
			address, err = im.index.GetResolver(c, registry, node)
		} else {
			address, err = im.rpc.GetResolver(c, registry, node)
		}
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"registry": registry,
				"node":     node.Hex(),
			}).Error("GetResolver failed")
			return nil, err
		}

		if !address.IsZero() {
			account := ens.NewAccountId(registry.ChainId, address)
			opts.Trace.Add(ens.TraceStep{Operation: "findResolver", Name: n, ChainId: int32(registry.ChainId), Resolver: &account, Source: source})
			return &activeResolver{account: account, exactMatch: n == name}, nil
		}
		if n == "" {
			return nil, nil
		}
	}
}
