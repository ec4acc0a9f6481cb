package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderCode_UnmarshalJSON(t *testing.T) {
	var out struct {
		A ProviderCode `json:"a"`
		B ProviderCode `json:"b"`
		C ProviderCode `json:"c"`
	}

	err := json.Unmarshal([]byte(`{"a": 3, "b": "5", "c": null}`), &out)
	require.NoError(t, err)

	assert.EqualValues(t, "3", out.A)
	assert.EqualValues(t, "5", out.B)
	assert.EqualValues(t, "", out.C)
}

func TestProviderCode_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(map[string]ProviderCode{"a": "42", "b": "geo"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 42, "b": "geo"}`, string(data))
}

func TestProviderCode_Normalize(t *testing.T) {
	assert.Equal(t, CodeExpired, ProviderCode("05").Normalize())
	assert.Equal(t, CodeGeoBlocked, ProviderCode(" 3").Normalize())
	assert.Equal(t, ProviderCode("abc"), ProviderCode("abc").Normalize())
	assert.Equal(t, CodeGeoBlocked, ProviderCode("3.0").Normalize())
	assert.Equal(t, CodeGeoBlocked, ProviderCode("3abc").Normalize())
	assert.Equal(t, ProviderCode("-7"), ProviderCode("-7").Normalize())
	assert.Equal(t, ProviderCode("-"), ProviderCode("-").Normalize())
}

func TestProviderCode_NormalizeFloat(t *testing.T) {
	var out struct {
		Code ProviderCode `json:"code"`
	}

	err := json.Unmarshal([]byte(`{"code": 3.0}`), &out)
	require.NoError(t, err)
	assert.Equal(t, CodeGeoBlocked, out.Code.Normalize())
}
