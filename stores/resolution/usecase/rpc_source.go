package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/ensapi/base/abi"
	"github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/base/ptr"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/service/chain"
	"github.com/x-xyz/ensapi/service/chain/contract"
)

var errUnexpectedOutput = xerrors.New("unexpected resolver output")

type rpcSource struct {
	chain chain.Client
}

func NewRpcSource(chainService chain.Client) ens.RpcSource {
	return &rpcSource{chain: chainService}
}

func (im *rpcSource) GetResolver(c ctx.Ctx, registry ens.AccountId, node bEns.Node) (domain.Address, error) {
	res, err := contract.NewRegistry(im.chain, registry).Resolver(c, node)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"registry": registry,
			"node":     node.Hex(),
		}).Error("registry.Resolver failed")
		return "", err
	}
	if res.IsZero() {
		return "", nil
	}
	return res, nil
}

// supportsExtended probes ENSIP-10 support. Any probe failure reads as
// "not supported".
func (im *rpcSource) supportsExtended(c ctx.Ctx, resolver contract.ResolverContract, account ens.AccountId) bool {
	ok, err := resolver.SupportsInterface(c, contract.ExtendedResolverInterfaceId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"resolver": account,
		}).Debug("supportsInterface probe failed")
		return false
	}
	return ok
}

func (im *rpcSource) Get(c ctx.Ctx, account ens.AccountId, name string, sel ens.Selection, exactMatch bool) (*ens.Records, error) {
	records := ens.NewRecords(sel)
	if sel.IsEmpty() {
		return records, nil
	}

	resolver := contract.NewResolver(im.chain, account)
	extended := im.supportsExtended(c, resolver, account)
	if !exactMatch && !extended {
		// wildcard match on a resolver that cannot answer for subnames
		return records, nil
	}

	var dnsName []byte
	if extended {
		var err error
		if dnsName, err = bEns.DNSEncode(name); err != nil {
			c.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Warn("bEns.DNSEncode failed")
			return nil, err
		}
	}

	node := [32]byte(bEns.NameHash(name))
	call := func(method string, args ...interface{}) ([]interface{}, error) {
		var (
			out []interface{}
			err error
		)
		if extended {
			out, err = resolver.Resolve(c, dnsName, method, args...)
		} else {
			out, err = resolver.Call(c, method, args...)
		}
		if err != nil {
			c.WithFields(log.Fields{
				"err":      err,
				"resolver": account,
				"name":     name,
				"method":   method,
				"extended": extended,
			}).Warn("resolver call failed")
			return nil, xerrors.Errorf("%s.%s: %w", account, method, err)
		}
		if len(out) == 0 {
			return nil, errUnexpectedOutput
		}
		return out, nil
	}

	if sel.Name {
		out, err := call(baseabi.MethodName, node)
		if err != nil {
			return nil, err
		}
		if v, ok := out[0].(string); ok {
			if name := ptr.StringOrNil(v); name != nil {
				records.SetName(name)
			}
		}
	}

	for _, coinType := range sel.Addresses {
		if coinType == bEns.EthCoinType {
			out, err := call(baseabi.MethodAddr, node)
			if err != nil {
				return nil, err
			}
			if v, ok := out[0].(common.Address); ok && v != (common.Address{}) {
				s := v.Hex()
				records.SetAddress(coinType, &s)
			}
			continue
		}

		out, err := call(baseabi.MethodAddrCoinType, node, new(big.Int).SetUint64(uint64(coinType)))
		if err != nil {
			return nil, err
		}
		if v, ok := out[0].([]byte); ok {
			records.SetAddress(coinType, formatAddressBytes(coinType, v))
		}
	}

	for _, key := range sel.Texts {
		out, err := call(baseabi.MethodText, node, key)
		if err != nil {
			return nil, err
		}
		if v, ok := out[0].(string); ok && v != "" {
			records.SetText(key, &v)
		}
	}

	return records, nil
}
