package chain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/x-xyz/ensapi/base/backoff"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	bEth "github.com/x-xyz/ensapi/base/ethereum"
	"github.com/x-xyz/ensapi/base/log"
	"github.com/x-xyz/ensapi/base/metrics"
	"github.com/x-xyz/ensapi/domain"
	"golang.org/x/xerrors"
)

var (
	ErrUnsupportedChain = domain.ErrUnsupportedChain
	ErrReverted         = errors.New("execution reverted")

	// selector of OffchainLookup(address,string[],bytes,bytes4,bytes)
	offchainLookupSelector = "0x556f1830"
)

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// Throttle caps in-flight calls per chain, defaults to DefaultThrottle.
	Throttle     map[domain.ChainId]int
	Attempts     int
	BackoffStart time.Duration
	BackoffLimit time.Duration
}

const (
	DefaultThrottle     = 16
	defaultAttempts     = 3
	defaultBackoffStart = 100 * time.Millisecond
	defaultBackoffLimit = time.Second
)

// Client issues read-only contract calls, one endpoint per chain.
type Client interface {
	Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	HasChain(chainId domain.ChainId) bool
}

type clientImpl struct {
	callers      map[domain.ChainId]bind.ContractCaller
	throttles    map[domain.ChainId]*bEth.Throttle
	attempts     int
	backoffStart time.Duration
	backoffLimit time.Duration
	metrics      metrics.Service
}

// NewClient dials every configured endpoint once. A chain that fails to dial
// is left out and reported through the returned error.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	callers := make(map[domain.ChainId]bind.ContractCaller)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
			}).Warn("failed to dial rpc")
			continue
		}
		callers[chainId] = client
	}
	return NewClientWithCallers(callers, cfg), anyerr
}

func NewClientWithCallers(callers map[domain.ChainId]bind.ContractCaller, cfg *ClientCfg) Client {
	throttles := make(map[domain.ChainId]*bEth.Throttle, len(callers))
	for chainId := range callers {
		n, ok := cfg.Throttle[chainId]
		if !ok {
			n = DefaultThrottle
		}
		throttles[chainId] = bEth.NewThrottle(n)
	}
	c := &clientImpl{
		callers:      callers,
		throttles:    throttles,
		attempts:     cfg.Attempts,
		backoffStart: cfg.BackoffStart,
		backoffLimit: cfg.BackoffLimit,
		metrics:      metrics.New("chain"),
	}
	if c.attempts <= 0 {
		c.attempts = defaultAttempts
	}
	if c.backoffStart <= 0 {
		c.backoffStart = defaultBackoffStart
	}
	if c.backoffLimit <= 0 {
		c.backoffLimit = defaultBackoffLimit
	}
	return c
}

func (c *clientImpl) HasChain(chainId domain.ChainId) bool {
	_, ok := c.callers[chainId]
	return ok
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	caller, ok := c.callers[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	defer c.metrics.BumpTime("call.latency", "chainId", chainId.String(), "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}

	var res []byte
	b := backoff.NewExponential(c.backoffStart, c.backoffLimit)
	err = backoff.Retry(ctx, b, c.attempts, isTransient, func() error {
		release, err := c.throttles[chainId].Acquire(ctx)
		defer release()
		if err != nil {
			return err
		}
		res, err = caller.CallContract(ctx, msg, nil)
		return err
	})
	if err != nil {
		c.metrics.BumpSum("call.err", 1, "chainId", chainId.String(), "method", method)
		return nil, classifyCallError(err, method)
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Debug("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

// isTransient is false for reverts and context errors, which a retry cannot fix.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !isRevert(err)
}

func isRevert(err error) bool {
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		return true
	}
	return strings.Contains(err.Error(), "execution reverted")
}

func revertData(err error) string {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return ""
	}
	s, _ := dataErr.ErrorData().(string)
	return s
}

func classifyCallError(err error, method string) error {
	if !isRevert(err) {
		return xerrors.Errorf("%s: %w", method, err)
	}
	if strings.HasPrefix(strings.ToLower(revertData(err)), offchainLookupSelector) {
		return xerrors.Errorf("%s: %w", method, domain.ErrOffchainLookup)
	}
	return xerrors.Errorf("%s (%v): %w", method, err, ErrReverted)
}

// IsOffchainLookup reports whether a call reverted with OffchainLookup.
func IsOffchainLookup(err error) bool {
	return errors.Is(err, domain.ErrOffchainLookup)
}
