package planjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_PreservesObjectKeyOrder(t *testing.T) {
	t.Parallel()

	v, err := DecodeBytes([]byte(`{"zeta":1,"alpha":2,"mid":{"b":true,"a":false}}`))
	require.NoError(t, err)
	require.Equal(t, Object, v.Kind)

	keys := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)

	mid := v.Get("mid")
	require.NotNil(t, mid)
	require.Len(t, mid.Entries, 2)
	assert.Equal(t, "b", mid.Entries[0].Key)
	assert.Equal(t, "a", mid.Entries[1].Key)
}

func TestDecode_Scalars(t *testing.T) {
	t.Parallel()

	v, err := DecodeBytes([]byte(`{"s":"text","n":12.5,"b":true,"z":null,"big":9007199254740993}`))
	require.NoError(t, err)

	assert.Equal(t, "text", v.Get("s").AsString())
	assert.Equal(t, Number, v.Get("n").Kind)
	assert.Equal(t, "12.5", v.Get("n").Num.String())
	assert.Equal(t, Bool, v.Get("b").Kind)
	assert.True(t, v.Get("b").Bool)
	assert.Equal(t, Null, v.Get("z").Kind)
	// Integers beyond float64 precision survive as json.Number.
	assert.Equal(t, "9007199254740993", v.Get("big").Num.String())
}

func TestDecode_Arrays(t *testing.T) {
	t.Parallel()

	v, err := DecodeBytes([]byte(`[1,[2,3],{"k":"v"}]`))
	require.NoError(t, err)
	require.Equal(t, Array, v.Kind)
	require.Equal(t, 3, v.Len())

	assert.Equal(t, Number, v.Index(0).Kind)
	assert.Equal(t, 2, v.Index(1).Len())
	assert.Equal(t, "v", v.Index(2).Get("k").AsString())
	assert.Nil(t, v.Index(3))
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	t.Run("trailing data", func(t *testing.T) {
		_, err := DecodeBytes([]byte(`{} {}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trailing data")
	})

	t.Run("truncated document", func(t *testing.T) {
		_, err := DecodeBytes([]byte(`{"a":`))
		require.Error(t, err)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := DecodeBytes(nil)
		require.Error(t, err)
	})
}

func TestValue_NilSafety(t *testing.T) {
	t.Parallel()

	var v *Value
	assert.Nil(t, v.Get("x"))
	assert.Nil(t, v.Index(0))
	assert.Equal(t, "", v.AsString())
	assert.Equal(t, 0, v.Len())
	assert.False(t, v.IsScalar())

	// Chained navigation over missing keys stays nil instead of panicking.
	root, err := DecodeBytes([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "", root.Get("a").Get("b").Index(2).AsString())
}
