package bsp

import (
	"fmt"

	"github.com/lixenwraith/vi-dungeon/geom"
	"github.com/lixenwraith/vi-dungeon/rng"
)

// Defaults for Params
const (
	DefaultWidth         = 100
	DefaultHeight        = 100
	DefaultMinRegionSize = 3
	DefaultMaxRegionSize = 20
	DefaultMinRoomSize   = 3
	DefaultMaxRoomSize   = 20
	DefaultRoomChanceNum = 60
	DefaultRoomChanceDen = 100
	DefaultSplitVariance = 5.0
)

// Params configures one Generate call
type Params struct {
	Width  geom.SizeX
	Height geom.SizeY

	// Regions are never split below MinRegionSize on either axis
	MinRegionSize int
	// Upper region bound; only checked against MinRegionSize
	MaxRegionSize int

	MinRoomSize int
	MaxRoomSize int

	// A leaf gets a room with probability RoomChanceNum/RoomChanceDen
	RoomChanceNum int
	RoomChanceDen int

	// Auxiliary weighted decisions for the level builder (doors per room)
	Weights rng.WeightList[int]

	// Larger values keep split points closer to the midpoint
	SplitVariance float64
}

// DefaultParams returns the stock 100x100 configuration
func DefaultParams() Params {
	return Params{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MinRegionSize: DefaultMinRegionSize,
		MaxRegionSize: DefaultMaxRegionSize,
		MinRoomSize:   DefaultMinRoomSize,
		MaxRoomSize:   DefaultMaxRoomSize,
		RoomChanceNum: DefaultRoomChanceNum,
		RoomChanceDen: DefaultRoomChanceDen,
		Weights: rng.NewWeightList(
			rng.Weight[int]{Weight: 60, Result: 1},
			rng.Weight[int]{Weight: 30, Result: 2},
			rng.Weight[int]{Weight: 10, Result: 3},
		),
		SplitVariance: DefaultSplitVariance,
	}
}

// Validate reports geometrically infeasible parameters
// Generate panics on the same conditions
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("bsp: size %dx%d must be positive", p.Width, p.Height)
	case p.MinRegionSize < 1:
		return fmt.Errorf("bsp: min region size %d must be >= 1", p.MinRegionSize)
	case p.MinRegionSize > int(p.Width) || p.MinRegionSize > int(p.Height):
		return fmt.Errorf("bsp: min region size %d exceeds %dx%d", p.MinRegionSize, p.Width, p.Height)
	case p.MaxRegionSize < p.MinRegionSize:
		return fmt.Errorf("bsp: max region size %d below min %d", p.MaxRegionSize, p.MinRegionSize)
	case p.MinRoomSize < 1 || p.MaxRoomSize < p.MinRoomSize:
		return fmt.Errorf("bsp: room size range [%d,%d] invalid", p.MinRoomSize, p.MaxRoomSize)
	case p.RoomChanceDen <= 0 || p.RoomChanceNum < 0:
		return fmt.Errorf("bsp: room chance %d/%d invalid", p.RoomChanceNum, p.RoomChanceDen)
	case !(p.SplitVariance > 0):
		return fmt.Errorf("bsp: split variance %v must be positive", p.SplitVariance)
	}
	return nil
}
