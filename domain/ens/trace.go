package ens

import "sync"

type TraceSource string

const (
	SourceIndex TraceSource = "index"
	SourceRpc   TraceSource = "rpc"
	SourceNone  TraceSource = "none"
)

type TraceStep struct {
	Operation      string                `json:"operation"`
	Name           string                `json:"name,omitempty"`
	ChainId        int32                 `json:"chainId,omitempty"`
	Resolver       *AccountId            `json:"resolver,omitempty"`
	Classification ClassificationKind    `json:"classification,omitempty"`
	Decision       *AccelerationDecision `json:"decision,omitempty"`
	Source         TraceSource           `json:"source,omitempty"`
}

// Trace records resolution steps. A nil *Trace drops everything, so callers
// never need to check whether tracing was requested.
type Trace struct {
	mu    sync.Mutex
	steps []TraceStep
}

func NewTrace() *Trace {
	return &Trace{steps: []TraceStep{}}
}

func (t *Trace) Add(step TraceStep) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.steps = append(t.steps, step)
}

func (t *Trace) Steps() []TraceStep {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]TraceStep(nil), t.steps...)
}
