package rainbow

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/ensapi/base/ctx"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/service/redis"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	// ErrNotHealable is returned when the healer does not know the label
	ErrNotHealable = errors.New("label not healable")
	// ErrLabelMismatch is returned when the healed label does not hash back
	// to the requested labelhash
	ErrLabelMismatch = errors.New("healed label does not match labelhash")
)

// Client heals labelhashes into their labels. Healed labels are for display
// only and never feed resolution.
type Client interface {
	Heal(ctx bCtx.Ctx, labelHash bEns.LabelHash) (string, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Url        string
	Timeout    time.Duration

	// Redis adds a shared cache layer behind the in-process one when set
	Redis    redis.Service
	LocalTtl time.Duration
	RedisTtl time.Duration
}

type HealResponse struct {
	Status    string `json:"status"`
	Label     string `json:"label,omitempty"`
	Error     string `json:"error,omitempty"`
	ErrorCode int    `json:"errorCode,omitempty"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)
