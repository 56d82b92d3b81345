package ens

import (
	"encoding/json"

	bEns "github.com/x-xyz/ensapi/base/ens"
)

// Records holds resolved values for a Selection. Every selected field is
// present with a nil value until resolved; unselected fields are never
// serialized.
type Records struct {
	selection Selection
	Name      *string
	Addresses map[bEns.CoinType]*string
	Texts     map[string]*string
}

// NewRecords returns all-null records shaped by sel.
func NewRecords(sel Selection) *Records {
	r := &Records{selection: sel}
	if sel.Addresses != nil {
		r.Addresses = make(map[bEns.CoinType]*string, len(sel.Addresses))
		for _, c := range sel.Addresses {
			r.Addresses[c] = nil
		}
	}
	if sel.Texts != nil {
		r.Texts = make(map[string]*string, len(sel.Texts))
		for _, k := range sel.Texts {
			r.Texts[k] = nil
		}
	}
	return r
}

func (r *Records) Selection() Selection {
	return r.selection
}

func (r *Records) SetName(name *string) {
	if r.selection.Name {
		r.Name = name
	}
}

func (r *Records) SetAddress(coinType bEns.CoinType, address *string) {
	if _, ok := r.Addresses[coinType]; ok {
		r.Addresses[coinType] = address
	}
}

func (r *Records) SetText(key string, value *string) {
	if _, ok := r.Texts[key]; ok {
		r.Texts[key] = value
	}
}

func (r *Records) Address(coinType bEns.CoinType) *string {
	return r.Addresses[coinType]
}

func (r *Records) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{}
	if r.selection.Name {
		out["name"] = r.Name
	}
	if r.Addresses != nil {
		out["addresses"] = r.Addresses
	}
	if r.Texts != nil {
		out["texts"] = r.Texts
	}
	return json.Marshal(out)
}

// PrimaryNameStatus distinguishes a found name, a missing one and a failed lookup.
type PrimaryNameStatus string

const (
	PrimaryNameResolved PrimaryNameStatus = "resolved"
	PrimaryNameAbsent   PrimaryNameStatus = "absent"
	PrimaryNameFailed   PrimaryNameStatus = "failed"
)

type PrimaryNameResult struct {
	Status PrimaryNameStatus `json:"status"`
	Name   *string           `json:"name"`
	Error  string            `json:"error,omitempty"`
}

func ResolvedPrimaryName(name string) PrimaryNameResult {
	return PrimaryNameResult{Status: PrimaryNameResolved, Name: &name}
}

func AbsentPrimaryName() PrimaryNameResult {
	return PrimaryNameResult{Status: PrimaryNameAbsent}
}

func FailedPrimaryName(err error) PrimaryNameResult {
	return PrimaryNameResult{Status: PrimaryNameFailed, Error: err.Error()}
}
