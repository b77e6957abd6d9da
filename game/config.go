package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type fileConfig struct {
	Size                 int        `yaml:"size"`
	Seed                 *int64     `yaml:"seed"`
	MaxPlacementAttempts int        `yaml:"max_placement_attempts"`
	HistoryLength        int        `yaml:"history_length"`
	Fleet                []ShipSpec `yaml:"fleet"`
}

// LoadFile overlays the settings found in a YAML config file. Keys that are
// absent leave the current values alone.
func (config *GameConfig) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	return config.Load(data)
}

func (config *GameConfig) Load(data []byte) error {
	var file fileConfig
	if err := yaml.UnmarshalStrict(data, &file); err != nil {
		return fmt.Errorf("parsing config: %w", err)
	}

	if file.Size != 0 {
		config.Size = file.Size
	}
	if file.Seed != nil {
		config.Seed = *file.Seed
	}
	if file.MaxPlacementAttempts != 0 {
		config.MaxPlacementAttempts = file.MaxPlacementAttempts
	}
	if file.HistoryLength != 0 {
		config.HistoryLength = file.HistoryLength
	}
	if len(file.Fleet) > 0 {
		fleet, err := NewFleet(file.Fleet)
		if err != nil {
			return err
		}
		config.Fleet = fleet
	}

	return nil
}
