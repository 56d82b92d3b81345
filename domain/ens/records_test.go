package ens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bEns "github.com/x-xyz/ensapi/base/ens"
	"github.com/x-xyz/ensapi/base/ptr"
)

func TestRecordsJSON(t *testing.T) {
	tests := []struct {
		name  string
		sel   Selection
		setup func(r *Records)
		want  string
	}{
		{
			name: "nothing selected",
			sel:  Selection{},
			want: `{}`,
		},
		{
			name: "unresolved text stays null",
			sel:  Selection{Texts: []string{"nonexistent-key"}},
			want: `{"texts":{"nonexistent-key":null}}`,
		},
		{
			name: "address resolved",
			sel:  Selection{Addresses: []bEns.CoinType{60}},
			setup: func(r *Records) {
				r.SetAddress(60, ptr.String("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"))
			},
			want: `{"addresses":{"60":"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"}}`,
		},
		{
			name: "name selected but unset",
			sel:  Selection{Name: true, Addresses: []bEns.CoinType{}},
			want: `{"addresses":{},"name":null}`,
		},
		{
			name: "unselected fields are ignored",
			sel:  Selection{Texts: []string{"url"}},
			setup: func(r *Records) {
				r.SetName(ptr.String("vitalik.eth"))
				r.SetAddress(60, ptr.String("0x00"))
				r.SetText("url", ptr.String("https://vitalik.ca"))
				r.SetText("avatar", ptr.String("x"))
			},
			want: `{"texts":{"url":"https://vitalik.ca"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecords(tt.sel)
			if tt.setup != nil {
				tt.setup(r)
			}
			b, err := json.Marshal(r)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestPrimaryNameResultJSON(t *testing.T) {
	b, err := json.Marshal(map[int32]PrimaryNameResult{
		1:    ResolvedPrimaryName("vitalik.eth"),
		10:   AbsentPrimaryName(),
		8453: FailedPrimaryName(assert.AnError),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"1": {"status": "resolved", "name": "vitalik.eth"},
		"10": {"status": "absent", "name": null},
		"8453": {"status": "failed", "name": null, "error": "assert.AnError general error for testing"}
	}`, string(b))
}

func TestIndexedChains(t *testing.T) {
	indexed := IndexedChains{
		PluginSubgraph:         {1},
		PluginReverseResolvers: {},
	}
	assert.True(t, indexed.Enabled(PluginSubgraph))
	assert.True(t, indexed.Indexes(PluginSubgraph, 1))
	assert.False(t, indexed.Indexes(PluginSubgraph, 10))
	assert.True(t, indexed.Enabled(PluginReverseResolvers))
	assert.False(t, indexed.Indexes(PluginReverseResolvers, 1))
	assert.False(t, indexed.Enabled(PluginBasenames))
}

func TestTraceNilSafe(t *testing.T) {
	var tr *Trace
	tr.Add(TraceStep{Operation: "forward"})
	assert.Nil(t, tr.Steps())

	tr = NewTrace()
	tr.Add(TraceStep{Operation: "forward", Source: SourceIndex})
	assert.Len(t, tr.Steps(), 1)
}

func TestAccountId(t *testing.T) {
	a := NewAccountId(1, "0xABCDEF0000000000000000000000000000000001")
	b := NewAccountId(1, "0xabcdef0000000000000000000000000000000001")
	assert.Equal(t, a, b)
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(NewAccountId(10, b.Address)))
	assert.Equal(t, "1:0xabcdef0000000000000000000000000000000001", a.String())
}
