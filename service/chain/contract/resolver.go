package contract

import (
	"errors"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	baseabi "github.com/x-xyz/ensapi/base/abi"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/service/chain"
)

// ExtendedResolverInterfaceId is the ENSIP-10 interface id of resolve(bytes,bytes).
var ExtendedResolverInterfaceId = [4]byte{0x90, 0x61, 0xb9, 0x23}

var errUnexpectedOutput = errors.New("unexpected resolve output")

type ResolverContract interface {
	// Call invokes a resolver method directly.
	Call(ctx bCtx.Ctx, method string, args ...interface{}) ([]interface{}, error)
	// Resolve wraps method in an ENSIP-10 resolve(dnsName, data) call and
	// decodes the returned bytes as method's outputs.
	Resolve(ctx bCtx.Ctx, dnsName []byte, method string, args ...interface{}) ([]interface{}, error)
	SupportsInterface(ctx bCtx.Ctx, interfaceId [4]byte) (bool, error)
}

type resolver struct {
	chainService chain.Client
	abi          ethabi.ABI
	account      ens.AccountId
}

func NewResolver(chainService chain.Client, account ens.AccountId) ResolverContract {
	return &resolver{
		chainService: chainService,
		abi:          baseabi.ENSResolverABI,
		account:      account,
	}
}

func (r *resolver) Call(ctx bCtx.Ctx, method string, args ...interface{}) ([]interface{}, error) {
	return r.chainService.Call(ctx, r.account.ChainId, r.account.Address.ToCommon(), r.abi, method, args...)
}

func (r *resolver) Resolve(ctx bCtx.Ctx, dnsName []byte, method string, args ...interface{}) ([]interface{}, error) {
	data, err := r.abi.Pack(method, args...)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Pack failed")
		return nil, err
	}
	unpacked, err := r.Call(ctx, baseabi.MethodResolve, dnsName, data)
	if err != nil {
		return nil, err
	}
	out, ok := unpacked[0].([]byte)
	if !ok {
		return nil, errUnexpectedOutput
	}
	return r.abi.Unpack(method, out)
}

func (r *resolver) SupportsInterface(ctx bCtx.Ctx, interfaceId [4]byte) (bool, error) {
	unpacked, err := r.Call(ctx, baseabi.MethodSupportsInterface, interfaceId)
	if err != nil {
		return false, err
	}
	supported, ok := unpacked[0].(bool)
	if !ok {
		return false, errUnexpectedOutput
	}
	return supported, nil
}
