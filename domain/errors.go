package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput  = errors.New("Given Param is not valid")
	ErrInvalidChainId = errors.New("invalid chain id")

	// request error
	ErrInvalidAddress    = errors.New("Invalid address")
	ErrInvalidName       = errors.New("invalid name")
	ErrNameNotNormalized = errors.New("name is not normalized")
	ErrInvalidCoinType   = errors.New("invalid coin type")
	ErrInvalidLabelHash  = errors.New("invalid label hash")

	// resolution error
	ErrOffchainLookup    = errors.New("resolver requires offchain lookup")
	ErrUnsupportedChain  = errors.New("chain not supported by namespace")
	ErrUnknownNamespace  = errors.New("unknown namespace")
	ErrResolutionTimeout = errors.New("resolution timed out")

	ErrNotImplemented = errors.New("not implemented")
)
