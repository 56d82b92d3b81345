package usecase

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/goroutine"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
)

var errTaskNotCompleted = errors.New("resolution task did not complete")

type primaryNameOutcome struct {
	chainId domain.ChainId
	result  ens.PrimaryNameResult
}

// ResolvePrimaryNames resolves address on every chain concurrently. A chain
// that fails or panics gets a failed entry and never affects the others.
func (im *impl) ResolvePrimaryNames(c ctx.Ctx, address domain.Address, chainIds []domain.ChainId, opts ens.Options) (map[domain.ChainId]ens.PrimaryNameResult, error) {
	defer im.met.BumpTime("primary_names.time").End()

	if !common.IsHexAddress(string(address)) {
		return nil, domain.ErrInvalidAddress
	}
	if len(chainIds) == 0 {
		chainIds = im.DefaultPrimaryNameChains()
	}
	chainIds = uniqueChainIds(chainIds)

	res := make(map[domain.ChainId]ens.PrimaryNameResult, len(chainIds))
	for _, chainId := range chainIds {
		res[chainId] = ens.FailedPrimaryName(errTaskNotCompleted)
	}

	tc, cancel := ctx.WithTimeout(c, im.timeout)
	defer cancel()

	b := goroutines.NewBatch(im.parallel, goroutines.WithBatchSize(len(chainIds)))
	defer b.Close()
	for _, id := range chainIds {
		chainId := id
		task := goroutine.Recoverable(func() (interface{}, error) {
			return im.ResolveReverse(tc, address, chainId, opts)
		})
		b.Queue(func() (interface{}, error) {
			val, err := task()
			return primaryNameOutcome{chainId: chainId, result: toPrimaryNameResult(val, err)}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("primary name task error result")
			continue
		}
		outcome := ret.Value().(primaryNameOutcome)
		if outcome.result.Status == ens.PrimaryNameFailed {
			c.WithFields(log.Fields{
				"chainId": outcome.chainId,
				"err":     outcome.result.Error,
			}).Warn("primary name resolution failed")
		}
		res[outcome.chainId] = outcome.result
	}
	return res, nil
}

func toPrimaryNameResult(val interface{}, err error) ens.PrimaryNameResult {
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = xerrors.Errorf("%v: %w", err, domain.ErrResolutionTimeout)
		}
		return ens.FailedPrimaryName(err)
	}
	name, _ := val.(*string)
	if name == nil {
		return ens.AbsentPrimaryName()
	}
	return ens.ResolvedPrimaryName(*name)
}

func uniqueChainIds(chainIds []domain.ChainId) []domain.ChainId {
	seen := make(map[domain.ChainId]bool, len(chainIds))
	res := make([]domain.ChainId, 0, len(chainIds))
	for _, id := range chainIds {
		if !seen[id] {
			seen[id] = true
			res = append(res, id)
		}
	}
	return res
}
