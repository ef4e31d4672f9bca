package money_test

import (
	"encoding/json"
	"testing"

	dec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/df-accountant/internal/money"
)

func TestFromJSONNumber(t *testing.T) {
	d, err := money.FromJSONNumber(json.Number("2250"))
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.NewFromInt(2250)))

	d, err = money.FromJSONNumber(json.Number("149.99"))
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("149.99")))

	_, err = money.FromJSONNumber(json.Number("not-a-number"))
	require.Error(t, err)
}

func TestFromString(t *testing.T) {
	d, err := money.FromString("123456.78")
	require.NoError(t, err)
	assert.True(t, d.Equal(dec.RequireFromString("123456.78")))

	_, err = money.FromString("abc")
	require.Error(t, err)
}

func TestMustFromString(t *testing.T) {
	d := money.MustFromString("999.99")
	assert.True(t, d.Equal(dec.RequireFromString("999.99")))

	assert.Panics(t, func() {
		money.MustFromString("invalid")
	})
}

func TestMul(t *testing.T) {
	cost := dec.NewFromInt(150)
	qty := dec.NewFromInt(30)
	assert.True(t, money.Mul(cost, qty).Equal(dec.NewFromInt(4500)))
}

func TestSum(t *testing.T) {
	values := []dec.Decimal{
		dec.NewFromInt(2250),
		dec.NewFromInt(4500),
	}
	assert.True(t, money.Sum(values).Equal(dec.NewFromInt(6750)))
}

func TestSum_Empty(t *testing.T) {
	assert.True(t, money.Sum(nil).IsZero())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "6750.00 RON", money.Format(dec.NewFromInt(6750)))
	assert.Equal(t, "0.00 RON", money.Format(money.Zero))
	assert.Equal(t, "149.90 RON", money.Format(dec.RequireFromString("149.9")))
}

func TestFormatPlain(t *testing.T) {
	assert.Equal(t, "0.00", money.FormatPlain(money.Zero))
	assert.Equal(t, "2250.00", money.FormatPlain(dec.NewFromInt(2250)))
}

func TestIsNonNegative(t *testing.T) {
	assert.True(t, money.IsNonNegative(money.Zero))
	assert.True(t, money.IsNonNegative(dec.NewFromInt(1)))
	assert.False(t, money.IsNonNegative(dec.NewFromInt(-1)))
}
