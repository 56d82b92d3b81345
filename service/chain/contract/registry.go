package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/ensapi/base/abi"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/service/chain"
)

type RegistryContract interface {
	// Resolver returns the zero address when node has no resolver.
	Resolver(ctx bCtx.Ctx, node bEns.Node) (domain.Address, error)
}

type registry struct {
	chainService chain.Client
	abi          ethabi.ABI
	account      ens.AccountId
}

func NewRegistry(chainService chain.Client, account ens.AccountId) RegistryContract {
	return &registry{
		chainService: chainService,
		abi:          baseabi.ENSRegistryABI,
		account:      account,
	}
}

func (r *registry) Resolver(ctx bCtx.Ctx, node bEns.Node) (domain.Address, error) {
	method := "resolver"
	unpacked, err := r.chainService.Call(ctx, r.account.ChainId, r.account.Address.ToCommon(), r.abi, method, [32]byte(node))
	if err != nil {
		return "", err
	}
	return domain.AddressFromCommon(unpacked[0].(common.Address)), nil
}
