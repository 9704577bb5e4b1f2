package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the override document. Sections point at the live
// globals so only keys present in the file are overwritten.
type fileConfig struct {
	Chef        *ChefConfig            `yaml:"chef"`
	Chickens    map[string]yaml.Node   `yaml:"chickens"`
	Combat      *CombatConfig          `yaml:"combat"`
	Traps       map[TrapKind]yaml.Node `yaml:"traps"`
	Temperature *TemperatureConfig     `yaml:"temperature"`
	Waves       *WaveConfig            `yaml:"waves"`
	Physics     *PhysicsConfig         `yaml:"physics"`
	Autopilot   *AutopilotConfig       `yaml:"autopilot"`
}

// LoadFile applies overrides from a YAML file on disk.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// LoadFS applies overrides from a YAML file inside fsys.
func LoadFS(fsys fs.FS, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays a YAML document on the current configuration.
// Chicken and trap entries are merged per key, so a partial entry keeps
// the rest of its defaults.
func Apply(data []byte) error {
	doc := fileConfig{
		Chef:        &Chef,
		Combat:      &Combat,
		Temperature: &Temperature,
		Waves:       &Waves,
		Physics:     &Physics,
		Autopilot:   &Autopilot,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	for name, node := range doc.Chickens {
		t, ok := Chickens[name]
		if !ok {
			t = Chickens["Nugget"]
			t.Name = name
		}
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("chicken %s: %w", name, err)
		}
		Chickens[name] = t
	}

	for kind, node := range doc.Traps {
		t := Traps.Types[kind]
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("trap %s: %w", kind, err)
		}
		Traps.Types[kind] = t
	}
	return nil
}
