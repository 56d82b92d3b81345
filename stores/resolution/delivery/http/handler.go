package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/delivery"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/domain"
	"github.com/x-xyz/ensapi/domain/ens"
	"github.com/x-xyz/ensapi/middleware"
	"github.com/x-xyz/ensapi/service/chain"
	"github.com/x-xyz/ensapi/service/rainbow"
)

type handler struct {
	resolution ens.ResolutionUsecase
	healer     rainbow.Client
}

func New(
	e *echo.Echo,
	resolution ens.ResolutionUsecase,
	healer rainbow.Client,
	httpCache *middleware.HttpCache,
	cacheTtl time.Duration,
) {
	h := &handler{resolution, healer}

	g := e.Group("/api/resolve")

	g.GET("/records/:name", h.resolveRecords)

	g.GET("/primary-name/:address/:chainId", h.resolvePrimaryName, middleware.IsValidAddress("address"), httpCache.Middleware(cacheTtl))

	g.GET("/primary-names/:address", h.resolvePrimaryNames, middleware.IsValidAddress("address"), httpCache.Middleware(cacheTtl))

	g.GET("/automatic/:input", h.resolveAutomatic)

	e.GET("/api/heal/:labelHash", h.heal)
}

// parseOptions reads accelerate (default true) and trace (default false).
func parseOptions(c echo.Context) (ens.Options, error) {
	opts := ens.DefaultOptions()
	if v := c.QueryParam("accelerate"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, domain.ErrBadParamInput
		}
		opts.Accelerate = b
	}
	if v := c.QueryParam("trace"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, domain.ErrBadParamInput
		}
		if b {
			opts.Trace = ens.NewTrace()
		}
	}
	return opts, nil
}

type recordsResponse struct {
	Records               *ens.Records    `json:"records"`
	AccelerationAttempted bool            `json:"accelerationAttempted"`
	Trace                 []ens.TraceStep `json:"trace,omitempty"`
}

type primaryNameResponse struct {
	Name                  *string         `json:"name"`
	AccelerationAttempted bool            `json:"accelerationAttempted"`
	Trace                 []ens.TraceStep `json:"trace,omitempty"`
}

type primaryNamesResponse struct {
	Names                 map[domain.ChainId]ens.PrimaryNameResult `json:"names"`
	AccelerationAttempted bool                                     `json:"accelerationAttempted"`
	Trace                 []ens.TraceStep                          `json:"trace,omitempty"`
}

// parseSelection reads name, addresses and texts query params. A present
// but empty list selects nothing of that kind, which still shapes the output.
func parseSelection(c echo.Context) (ens.Selection, error) {
	sel := ens.Selection{}
	params := c.QueryParams()

	if v := params.Get("name"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return sel, domain.ErrBadParamInput
		}
		sel.Name = b
	}

	if _, ok := params["addresses"]; ok {
		sel.Addresses = []bEns.CoinType{}
		for _, s := range splitList(params.Get("addresses")) {
			coinType, err := bEns.ParseCoinType(s)
			if err != nil {
				return sel, err
			}
			sel.Addresses = append(sel.Addresses, coinType)
		}
	}

	if _, ok := params["texts"]; ok {
		sel.Texts = splitList(params.Get("texts"))
	}

	if sel.IsEmpty() {
		return sel, domain.ErrBadParamInput
	}
	return sel, nil
}

func splitList(s string) []string {
	res := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

func errStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrNameNotNormalized),
		errors.Is(err, domain.ErrInvalidChainId),
		errors.Is(err, domain.ErrInvalidCoinType),
		errors.Is(err, domain.ErrInvalidLabelHash),
		errors.Is(err, domain.ErrUnsupportedChain):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrResolutionTimeout):
		return http.StatusGatewayTimeout
	case chain.IsOffchainLookup(err):
		// the answer lives behind a CCIP-read gateway this service does not call
		return http.StatusBadGateway
	case errors.Is(err, rainbow.ErrNotHealable):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *handler) resolveRecords(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Name string `param:"name"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sel, err := parseSelection(c)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}

	opts, err := parseOptions(c)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	records, err := h.resolution.ResolveForward(ctx, p.Name, sel, opts)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, recordsResponse{
		Records:               records,
		AccelerationAttempted: opts.Accelerate,
		Trace:                 opts.Trace.Steps(),
	})
}

func (h *handler) resolveAutomatic(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Input string `param:"input"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	sel, err := parseSelection(c)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}

	opts, err := parseOptions(c)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	records, err := h.resolution.ResolveAutomatic(ctx, p.Input, sel, opts)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, recordsResponse{
		Records:               records,
		AccelerationAttempted: opts.Accelerate,
		Trace:                 opts.Trace.Steps(),
	})
}

func (h *handler) resolvePrimaryName(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address domain.Address `param:"address" validate:"required,eth_addr"`
		ChainId string         `param:"chainId" validate:"required,numeric"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	chainId, err := domain.ParseChainId(p.ChainId)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}

	opts, err := parseOptions(c)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	name, err := h.resolution.ResolveReverse(ctx, p.Address, chainId, opts)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, primaryNameResponse{
		Name:                  name,
		AccelerationAttempted: opts.Accelerate,
		Trace:                 opts.Trace.Steps(),
	})
}

func (h *handler) resolvePrimaryNames(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Address  domain.Address `param:"address" validate:"required,eth_addr"`
		ChainIds string         `query:"chainIds"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	var chainIds []domain.ChainId
	for _, s := range splitList(p.ChainIds) {
		chainId, err := domain.ParseChainId(s)
		if err != nil {
			return delivery.MakeJsonResp(c, errStatus(err), err)
		}
		chainIds = append(chainIds, chainId)
	}

	opts, err := parseOptions(c)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	names, err := h.resolution.ResolvePrimaryNames(ctx, p.Address, chainIds, opts)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, primaryNamesResponse{
		Names:                 names,
		AccelerationAttempted: opts.Accelerate,
		Trace:                 opts.Trace.Steps(),
	})
}

// heal recovers a label from its labelhash. Candidate addresses let reverse
// labels heal locally without asking the healer.
func (h *handler) heal(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		LabelHash  string `param:"labelHash" validate:"required,labelhash"`
		Candidates string `query:"candidates"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidLabelHash)
	}

	labelHash := parseLabelHash(p.LabelHash)

	candidates := []domain.Address{}
	for _, s := range splitList(p.Candidates) {
		if !common.IsHexAddress(s) {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
		candidates = append(candidates, domain.Address(s))
	}
	if label, ok := bEns.HealReverseLabel(labelHash, candidates...); ok {
		return delivery.MakeJsonResp(c, http.StatusOK, label)
	}

	label, err := h.healer.Heal(ctx, labelHash)
	if err != nil {
		return delivery.MakeJsonResp(c, errStatus(err), err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, label)
}

// parseLabelHash expects input accepted by the labelhash validation.
func parseLabelHash(s string) bEns.LabelHash {
	if h, ok := bEns.DecodeEncodedLabelHash(s); ok {
		return h
	}
	return common.HexToHash(s)
}
