// Package config reads scene settings from URL query parameters.
package config

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/nobonobo/memory-land/gallery"
)

const DefaultFontURL = "https://cdn.jsdelivr.net/gh/mrdoob/three.js@r146/examples/fonts/helvetiker_regular.typeface.json"

type Config struct {
	StorageKey     string
	FontURL        string
	AssetBase      string
	MoveSpeed      float64
	BoostSpeed     float64
	RollSpeed      float64
	PlaceDistance  float64
	HighlightColor uint32
	StarCount      int
}

func Default() Config {
	return Config{
		StorageKey:     gallery.DefaultStorageKey,
		FontURL:        DefaultFontURL,
		AssetBase:      "../assets",
		MoveSpeed:      1.5,
		BoostSpeed:     5,
		RollSpeed:      math.Pi / 24,
		PlaceDistance:  gallery.DefaultPlaceDistance,
		HighlightColor: gallery.DefaultHighlightColor,
		StarCount:      2000,
	}
}

// FromQuery overrides the defaults with the parameters present in values.
// On error the returned Config still holds every value parsed so far.
func FromQuery(values url.Values) (Config, error) {
	cfg := Default()
	if v := values.Get("key"); v != "" {
		cfg.StorageKey = v
	}
	if v := values.Get("font"); v != "" {
		cfg.FontURL = v
	}
	if v := values.Get("assets"); v != "" {
		cfg.AssetBase = strings.TrimSuffix(v, "/")
	}

	floats := []struct {
		name   string
		target *float64
	}{
		{name: "speed", target: &cfg.MoveSpeed},
		{name: "boost", target: &cfg.BoostSpeed},
		{name: "roll", target: &cfg.RollSpeed},
		{name: "distance", target: &cfg.PlaceDistance},
	}
	for _, f := range floats {
		v := values.Get(f.name)
		if v == "" {
			continue
		}
		value, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s parameter: %w", f.name, err)
		}
		if value <= 0 || math.IsInf(value, 0) || math.IsNaN(value) {
			return cfg, fmt.Errorf("invalid %s parameter: must be positive, got %q", f.name, v)
		}
		*f.target = value
	}

	if v := values.Get("highlight"); v != "" {
		color, err := ParseColor(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid highlight parameter: %w", err)
		}
		cfg.HighlightColor = color
	}

	if v := values.Get("stars"); v != "" {
		count, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid stars parameter: %w", err)
		}
		if count < 0 {
			return cfg, fmt.Errorf("invalid stars parameter: must not be negative, got %d", count)
		}
		cfg.StarCount = count
	}
	return cfg, nil
}

// ParseColor accepts "#rrggbb", "rrggbb" and "0xrrggbb" and returns the
// 24-bit RGB value.
func ParseColor(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, err
	}
	r, g, b := c.RGB255()
	return uint32(r)<<16 | uint32(g)<<8 | uint32(b), nil
}
