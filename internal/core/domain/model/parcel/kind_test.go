package parcel_test

import (
	"encoding/json"
	"testing"

	"caps/internal/core/domain/model/parcel"
	"caps/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pickup", parcel.Pickup.String())
	assert.Equal(t, "transit", parcel.Transit.String())
	assert.Equal(t, "delivered", parcel.Delivered.String())
	assert.Equal(t, "acknowledge", parcel.Acknowledge.String())
	assert.Equal(t, "reserved", parcel.Reserved.String())
	assert.Equal(t, "unknown", parcel.Unknown.String())
	assert.Equal(t, "unknown", parcel.Kind(42).String())
}

func TestKind_Validate(t *testing.T) {
	for _, k := range parcel.Kinds() {
		require.NoError(t, k.Validate(), k.String())
	}

	err := parcel.Unknown.Validate()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, parcel.Kind(6).Validate())
}

func TestParseKind(t *testing.T) {
	t.Run("should round trip every kind", func(t *testing.T) {
		for _, k := range parcel.Kinds() {
			parsed, err := parcel.ParseKind(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		k, err := parcel.ParseKind("teleport")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, parcel.Unknown, k)
		assert.Contains(t, err.Error(), `"teleport" is not a known event`)
	})

	t.Run("should reject the unknown placeholder itself", func(t *testing.T) {
		_, err := parcel.ParseKind("unknown")
		require.Error(t, err)
	})
}

func TestKind_ErrorEvent(t *testing.T) {
	assert.Equal(t, "acknowledge-error", parcel.Acknowledge.ErrorEvent())
	assert.Equal(t, "delivered-error", parcel.Delivered.ErrorEvent())
}

func TestKind_JSON(t *testing.T) {
	data, err := json.Marshal(parcel.Delivered)
	require.NoError(t, err)
	assert.JSONEq(t, `"delivered"`, string(data))

	var k parcel.Kind
	require.NoError(t, json.Unmarshal([]byte(`"acknowledge"`), &k))
	assert.Equal(t, parcel.Acknowledge, k)

	require.Error(t, json.Unmarshal([]byte(`"nope"`), &k))
	_, err = json.Marshal(parcel.Unknown)
	require.Error(t, err)
}
