// Package config loads the generator and viewer settings from YAML
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lixenwraith/vi-dungeon/bsp"
	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/level"
	"github.com/lixenwraith/vi-dungeon/rng"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

const schemaURL = "https://github.com/lixenwraith/vi-dungeon/config.schema.json"

var schema = jsonschema.MustCompileString(schemaURL, schemaJSON)

type Config struct {
	Seed  uint64 `yaml:"seed"`
	Level Level  `yaml:"level"`
	BSP   BSP    `yaml:"bsp"`
	Audio Audio  `yaml:"audio"`
}

type Level struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	ID     int `yaml:"id"`

	// Ring search radius when seeding entities and items
	MaxPlacementDistance int `yaml:"max_placement_distance"`
	Monsters             int `yaml:"monsters"`
	Items                int `yaml:"items"`
}

type BSP struct {
	MinRegionSize int          `yaml:"min_region_size"`
	MaxRegionSize int          `yaml:"max_region_size"`
	MinRoomSize   int          `yaml:"min_room_size"`
	MaxRoomSize   int          `yaml:"max_room_size"`
	RoomChanceNum int          `yaml:"room_chance_num"`
	RoomChanceDen int          `yaml:"room_chance_den"`
	SplitVariance float64      `yaml:"split_variance"`
	DoorWeights   []DoorWeight `yaml:"door_weights"`
}

// DoorWeight is one entry of the doors-per-room table
type DoorWeight struct {
	Weight int `yaml:"weight"`
	Doors  int `yaml:"doors"`
}

type Audio struct {
	Enabled bool    `yaml:"enabled"`
	// Volume is a beep effects exponent (base 2); 0 leaves samples unchanged
	Volume  float64 `yaml:"volume"`
}

// Default returns the stock configuration
func Default() Config {
	p := bsp.DefaultParams()
	c := Config{
		Seed: 1,
		Level: Level{
			Width:                bsp.DefaultWidth,
			Height:               bsp.DefaultHeight,
			ID:                   1,
			MaxPlacementDistance: 5,
			Monsters:             12,
			Items:                20,
		},
		BSP: BSP{
			MinRegionSize: p.MinRegionSize,
			MaxRegionSize: p.MaxRegionSize,
			MinRoomSize:   p.MinRoomSize,
			MaxRoomSize:   p.MaxRoomSize,
			RoomChanceNum: p.RoomChanceNum,
			RoomChanceDen: p.RoomChanceDen,
			SplitVariance: p.SplitVariance,
		},
		Audio: Audio{Enabled: true},
	}
	for _, w := range p.Weights.Entries() {
		c.BSP.DoorWeights = append(c.BSP.DoorWeights, DoorWeight{Weight: w.Weight, Doors: w.Result})
	}
	return c
}

// Load reads path; an empty path yields Default
// Keys absent from the file keep their default values
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates raw YAML against the schema and decodes it over Default
func Parse(raw []byte) (Config, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("config yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	if err := validate(doc); err != nil {
		return Config{}, err
	}

	c := Default()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("config yaml: %w", err)
	}
	if err := c.Params().Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}

// validate checks the decoded YAML tree in its JSON form
func validate(doc any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	return nil
}

// Params converts the partition settings for a level of the configured size
func (c Config) Params() bsp.Params {
	p := bsp.Params{
		Width:         geom.SizeX(c.Level.Width),
		Height:        geom.SizeY(c.Level.Height),
		MinRegionSize: c.BSP.MinRegionSize,
		MaxRegionSize: c.BSP.MaxRegionSize,
		MinRoomSize:   c.BSP.MinRoomSize,
		MaxRoomSize:   c.BSP.MaxRoomSize,
		RoomChanceNum: c.BSP.RoomChanceNum,
		RoomChanceDen: c.BSP.RoomChanceDen,
		SplitVariance: c.BSP.SplitVariance,
	}
	for _, w := range c.BSP.DoorWeights {
		p.Weights.Add(w.Weight, w.Doors)
	}
	return p
}

// Options returns the level options matching the configuration
func (c Config) Options() []level.Option {
	return []level.Option{level.WithParams(c.Params())}
}

// Source returns a fresh random stream seeded from the configuration
func (c Config) Source() *rng.State {
	return rng.New(c.Seed)
}
