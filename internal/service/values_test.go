package service

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueJSON(t *testing.T) {
	payload, err := json.Marshal(map[string]Value{"n": Number(4.5), "t": Text("Нет отзывов")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 4.5, "t": "Нет отзывов"}`, string(payload))
	assert.Equal(t, "4.5", Number(4.5).String())
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 33.33, ratio(decimal.NewFromInt(100).Div(decimal.NewFromInt(3))))
	assert.Equal(t, 0.3, money(decimal.RequireFromString("0.1").Add(decimal.RequireFromString("0.2"))))
	assert.Equal(t, 4.3, rating(decimal.RequireFromString("4.25")))
}

func TestPlaceholdersFor(t *testing.T) {
	assert.Equal(t, "No reviews", PlaceholdersFor("en").NoReviews)
	assert.Equal(t, "Нет отзывов", PlaceholdersFor("ru").NoReviews)
	assert.Equal(t, PlaceholdersFor("ru"), PlaceholdersFor("de"))
}
