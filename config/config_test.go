package config

import (
	"math"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "galleryObjects", cfg.StorageKey)
	assert.Equal(t, DefaultFontURL, cfg.FontURL)
	assert.Equal(t, "../assets", cfg.AssetBase)
	assert.Equal(t, 1.5, cfg.MoveSpeed)
	assert.Equal(t, 5.0, cfg.BoostSpeed)
	assert.InDelta(t, math.Pi/24, cfg.RollSpeed, 1e-12)
	assert.Equal(t, 4.0, cfg.PlaceDistance)
	assert.Equal(t, uint32(0x798cb2), cfg.HighlightColor)
	assert.Equal(t, 2000, cfg.StarCount)
}

func TestFromQueryEmpty(t *testing.T) {
	cfg, err := FromQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestFromQueryOverrides(t *testing.T) {
	values, err := url.ParseQuery("key=mine&font=http%3A%2F%2Flocalhost%2Ffont.json&assets=%2Fstatic%2F&speed=2.5&boost=10&roll=0.2&distance=6&highlight=%23ff0000&stars=10")
	require.NoError(t, err)

	cfg, err := FromQuery(values)
	require.NoError(t, err)
	assert.Equal(t, Config{
		StorageKey:     "mine",
		FontURL:        "http://localhost/font.json",
		AssetBase:      "/static",
		MoveSpeed:      2.5,
		BoostSpeed:     10,
		RollSpeed:      0.2,
		PlaceDistance:  6,
		HighlightColor: 0xff0000,
		StarCount:      10,
	}, cfg)
}

func TestFromQueryInvalid(t *testing.T) {
	tcs := []struct {
		name  string
		query string
	}{
		{name: "speed not a number", query: "speed=fast"},
		{name: "negative distance", query: "distance=-1"},
		{name: "zero boost", query: "boost=0"},
		{name: "infinite roll", query: "roll=Inf"},
		{name: "bad highlight", query: "highlight=zz"},
		{name: "stars not a number", query: "stars=many"},
		{name: "negative stars", query: "stars=-5"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			values, err := url.ParseQuery(tc.query)
			require.NoError(t, err)
			_, err = FromQuery(values)
			assert.Error(t, err)
		})
	}
}

func TestParseColor(t *testing.T) {
	tcs := []struct {
		in   string
		want uint32
	}{
		{in: "#798cb2", want: 0x798cb2},
		{in: "798CB2", want: 0x798cb2},
		{in: "0x0088ff", want: 0x0088ff},
		{in: "#000000", want: 0},
		{in: "#fff", want: 0xffffff},
	}

	for _, tc := range tcs {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
