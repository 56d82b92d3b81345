package chain

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/suite"
	baseabi "github.com/x-xyz/ensapi/base/abi"
	bCtx "github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/domain"
)

type fakeCaller struct {
	calls int32
	fn    func(n int32, msg ethereum.CallMsg) ([]byte, error)
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blk *big.Int) ([]byte, error) {
	return []byte{0x60}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	n := atomic.AddInt32(&f.calls, 1)
	return f.fn(n, msg)
}

type revertError struct {
	data string
}

func (e revertError) Error() string          { return "execution reverted" }
func (e revertError) ErrorCode() int         { return 3 }
func (e revertError) ErrorData() interface{} { return e.data }

type clientSuite struct {
	suite.Suite
	ctx    bCtx.Ctx
	caller *fakeCaller
	client Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(clientSuite))
}

func (s *clientSuite) SetupTest() {
	s.ctx = bCtx.Background()
	s.caller = &fakeCaller{}
	s.client = NewClientWithCallers(map[domain.ChainId]bind.ContractCaller{1: s.caller}, &ClientCfg{
		Attempts:     3,
		BackoffStart: time.Millisecond,
		BackoffLimit: time.Millisecond,
	})
}

func (s *clientSuite) call() ([]interface{}, error) {
	return s.client.Call(s.ctx, 1, common.HexToAddress("0x01"), baseabi.ENSResolverABI, baseabi.MethodSupportsInterface, [4]byte{0x90, 0x61, 0xb9, 0x23})
}

func (s *clientSuite) TestUnsupportedChain() {
	_, err := s.client.Call(s.ctx, 10, common.Address{}, baseabi.ENSResolverABI, baseabi.MethodName, common.Hash{})
	s.ErrorIs(err, ErrUnsupportedChain)
	s.True(s.client.HasChain(1))
	s.False(s.client.HasChain(10))
}

func (s *clientSuite) TestCallUnpacks() {
	s.caller.fn = func(n int32, msg ethereum.CallMsg) ([]byte, error) {
		s.Equal("01ffc9a7", common.Bytes2Hex(msg.Data[:4]))
		return common.LeftPadBytes([]byte{1}, 32), nil
	}
	res, err := s.call()
	s.NoError(err)
	s.Equal(true, res[0])
}

func (s *clientSuite) TestCallAcrossChains() {
	other := &fakeCaller{fn: func(n int32, msg ethereum.CallMsg) ([]byte, error) {
		return common.LeftPadBytes([]byte{0}, 32), nil
	}}
	s.caller.fn = func(n int32, msg ethereum.CallMsg) ([]byte, error) {
		return common.LeftPadBytes([]byte{1}, 32), nil
	}
	client := NewClientWithCallers(map[domain.ChainId]bind.ContractCaller{1: s.caller, 8453: other}, &ClientCfg{})

	s.Require().NotPanics(func() {
		res, err := client.Call(s.ctx, 1, common.HexToAddress("0x01"), baseabi.ENSResolverABI, baseabi.MethodSupportsInterface, [4]byte{0x90, 0x61, 0xb9, 0x23})
		s.NoError(err)
		s.Equal(true, res[0])

		res, err = client.Call(s.ctx, 8453, common.HexToAddress("0x01"), baseabi.ENSResolverABI, baseabi.MethodSupportsInterface, [4]byte{0x90, 0x61, 0xb9, 0x23})
		s.NoError(err)
		s.Equal(false, res[0])
	})
	s.Equal(int32(1), s.caller.calls)
	s.Equal(int32(1), other.calls)
}

func (s *clientSuite) TestTransientErrorIsRetried() {
	s.caller.fn = func(n int32, msg ethereum.CallMsg) ([]byte, error) {
		if n < 3 {
			return nil, errors.New("connection reset by peer")
		}
		return common.LeftPadBytes([]byte{1}, 32), nil
	}
	res, err := s.call()
	s.NoError(err)
	s.Equal(true, res[0])
	s.Equal(int32(3), s.caller.calls)
}

func (s *clientSuite) TestRevertIsNotRetried() {
	s.caller.fn = func(n int32, msg ethereum.CallMsg) ([]byte, error) {
		return nil, revertError{data: "0x"}
	}
	_, err := s.call()
	s.ErrorIs(err, ErrReverted)
	s.Equal(int32(1), s.caller.calls)
}

func (s *clientSuite) TestOffchainLookup() {
	s.caller.fn = func(n int32, msg ethereum.CallMsg) ([]byte, error) {
		return nil, revertError{data: "0x556f1830000000000000000000000000"}
	}
	_, err := s.call()
	s.ErrorIs(err, domain.ErrOffchainLookup)
	s.True(IsOffchainLookup(err))
	s.Equal(int32(1), s.caller.calls)
}

func (s *clientSuite) TestCanceledContext() {
	s.caller.fn = func(n int32, msg ethereum.CallMsg) ([]byte, error) {
		return nil, context.Canceled
	}
	_, err := s.call()
	s.ErrorIs(err, context.Canceled)
	s.Equal(int32(1), s.caller.calls)
}
