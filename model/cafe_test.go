package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafedir/model"
)

func TestCafeJSON(t *testing.T) {
	price := "£2.75"
	cafe := model.Cafe{
		ID:           7,
		Name:         "Abbey",
		MapURL:       "http://maps.example.com/abbey",
		ImgURL:       "http://img.example.com/abbey",
		Location:     "Camden",
		Seats:        "20-30",
		HasToilet:    true,
		HasWifi:      true,
		HasSockets:   false,
		CanTakeCalls: false,
		CoffeePrice:  &price,
	}

	raw, err := json.Marshal(cafe)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": 7,
		"name": "Abbey",
		"map_url": "http://maps.example.com/abbey",
		"img_url": "http://img.example.com/abbey",
		"location": "Camden",
		"seats": "20-30",
		"has_toilet": true,
		"has_wifi": true,
		"has_sockets": false,
		"can_take_calls": false,
		"coffee_price": "£2.75"
	}`, string(raw))
}

func TestCafeJSONNullPrice(t *testing.T) {
	raw, err := json.Marshal(model.Cafe{ID: 1, Name: "Abbey"})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	value, present := decoded["coffee_price"]
	assert.True(t, present)
	assert.Nil(t, value)
}
