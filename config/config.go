// Package config loads simulation tuning from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"conquest/game"
	"conquest/gen"
)

type Config struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Factions    int    `yaml:"factions"`
	WorldKind   string `yaml:"world_kind"`
	PortalPairs int    `yaml:"portal_pairs"`
	Matches     int    `yaml:"matches"`
	MaxRounds   int    `yaml:"max_rounds"`
	Seed        uint64 `yaml:"seed"`

	Flags struct {
		Classic            bool `yaml:"classic"`
		Supply             bool `yaml:"supply"`
		MountainEfficiency bool `yaml:"mountain_efficiency"`
	} `yaml:"flags"`

	Gameplay struct {
		FogRadius           int `yaml:"fog_radius"`
		TowerVisionRadius   int `yaml:"tower_vision_radius"`
		FortressCaptureCost int `yaml:"fortress_capture_cost"`
		BridgeBuildCost     int `yaml:"bridge_build_cost"`
		BridgeCaptureCost   int `yaml:"bridge_capture_cost"`
		ActionsPerTurn      int `yaml:"actions_per_turn"`
	} `yaml:"gameplay"`
}

func Default() Config {
	var c Config
	c.Width = 40
	c.Height = 40
	c.Factions = 4
	c.WorldKind = "standard"
	c.PortalPairs = 1
	c.Matches = 1
	c.MaxRounds = 300
	c.Seed = 1

	gp := game.DefaultGameplay()
	c.Gameplay.FogRadius = gp.FogRadius
	c.Gameplay.TowerVisionRadius = gp.TowerVisionRadius
	c.Gameplay.FortressCaptureCost = gp.FortressCaptureCost
	c.Gameplay.BridgeBuildCost = gp.BridgeBuildCost
	c.Gameplay.BridgeCaptureCost = gp.BridgeCaptureCost
	c.Gameplay.ActionsPerTurn = gp.ActionsPerTurn
	return c
}

func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) GameModeFlags() game.GameModeFlags {
	return game.GameModeFlags{
		Classic:            c.Flags.Classic,
		Supply:             c.Flags.Supply,
		MountainEfficiency: c.Flags.MountainEfficiency,
	}
}

func (c Config) GameplaySettings() game.Gameplay {
	return game.Gameplay{
		FogRadius:           c.Gameplay.FogRadius,
		TowerVisionRadius:   c.Gameplay.TowerVisionRadius,
		FortressCaptureCost: c.Gameplay.FortressCaptureCost,
		BridgeBuildCost:     c.Gameplay.BridgeBuildCost,
		BridgeCaptureCost:   c.Gameplay.BridgeCaptureCost,
		ActionsPerTurn:      c.Gameplay.ActionsPerTurn,
	}
}

// Kind maps the configured world kind name to its generator constant.
func (c Config) Kind() (gen.Kind, error) {
	switch c.WorldKind {
	case "", "standard":
		return gen.Standard, nil
	case "islands":
		return gen.Islands, nil
	case "mountain_madness":
		return gen.MountainMadness, nil
	case "wasteland":
		return gen.Wasteland, nil
	default:
		return gen.Standard, fmt.Errorf("unknown world kind %q", c.WorldKind)
	}
}
