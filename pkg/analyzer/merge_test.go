package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeProps_InterfaceBeatsDestructure(t *testing.T) {
	cands := []propertyCandidate{
		{Name: "variant", Origin: OriginDestructure, Required: true},
		{Name: "variant", Origin: OriginInterface, RawType: "string", Required: false},
	}

	out := dedupeProps(cands)
	require.Len(t, out, 1)
	assert.Equal(t, OriginInterface, out[0].Origin)
	assert.Equal(t, "string", out[0].RawType)
	assert.False(t, out[0].Required, "required comes only from the kept candidate")
}

func TestDedupeProps_LowerPrecedenceDiscardedInFull(t *testing.T) {
	cands := []propertyCandidate{
		{Name: "label", Origin: OriginInterface, RawType: "string", Required: true},
		{Name: "label", Origin: OriginDestructure, Required: false},
	}

	out := dedupeProps(cands)
	require.Len(t, out, 1)
	// The destructure duplicate neither upgrades nor downgrades the record.
	assert.Equal(t, "string", out[0].RawType)
	assert.True(t, out[0].Required)
}

func TestDedupeProps_PreservesFirstSeenOrder(t *testing.T) {
	cands := []propertyCandidate{
		{Name: "b", Origin: OriginDestructure},
		{Name: "a", Origin: OriginDestructure},
		{Name: "b", Origin: OriginInterface},
	}

	out := dedupeProps(cands)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].Name)
	assert.Equal(t, "a", out[1].Name)
}

func TestDedupeProps_EqualRankFirstWins(t *testing.T) {
	cands := []propertyCandidate{
		{Name: "x", Origin: OriginInterface, RawType: "string"},
		{Name: "x", Origin: OriginTypeAlias, RawType: "number"},
	}

	out := dedupeProps(cands)
	require.Len(t, out, 1)
	assert.Equal(t, "string", out[0].RawType)
}

func TestDedupeEvents(t *testing.T) {
	cands := []eventCandidate{
		{Name: "onClick", Origin: OriginMarkup},
		{Name: "onClick", Origin: OriginInterface, ParameterHints: []string{"event"}},
		{Name: "onHover", Origin: OriginMarkup},
	}

	out := dedupeEvents(cands)
	require.Len(t, out, 2)
	assert.Equal(t, "onClick", out[0].Name)
	assert.Equal(t, OriginInterface, out[0].Origin)
	assert.Equal(t, []string{"event"}, out[0].ParameterHints)
	assert.Equal(t, "onHover", out[1].Name)
}
