package usecase

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

// ResolveAutomatic forward-resolves input, first turning an address into its
// primary name on the root chain. An address without one yields the same
// all-null records as a name without a resolver.
func (im *impl) ResolveAutomatic(c ctx.Ctx, input string, sel ens.Selection, opts ens.Options) (*ens.Records, error) {
	if !common.IsHexAddress(input) {
		return im.ResolveForward(c, input, sel, opts)
	}

	name, err := im.ResolveReverse(c, domain.Address(input), im.ns.RootChainId, opts)
	if err != nil {
		return nil, err
	}
	if name == nil {
		return ens.NewRecords(sel), nil
	}
	return im.ResolveForward(c, *name, sel, opts)
}
