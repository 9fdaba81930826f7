// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// weaponOverride — запись файла переопределений. Hard — указатель,
// чтобы отличить «не задано» от явного false.
type weaponOverride struct {
	WeaponDefinition
	Hard *bool `json:"hard"`
}

// LoadArsenal reads a weapon override file and merges it over the built-in
// table. Only the four known weapons can be overridden; entries with an
// unknown id are skipped, and invalid fields keep their built-in values.
func LoadArsenal(path string) (*Arsenal, error) {
	arsenal := NewArsenal()

	file, err := os.ReadFile(path)
	if err != nil {
		return arsenal, fmt.Errorf("failed to read weapon definitions file: %w", err)
	}

	var weaponDefs []weaponOverride
	if err := json.Unmarshal(file, &weaponDefs); err != nil {
		return arsenal, fmt.Errorf("failed to unmarshal weapon definitions: %w", err)
	}

	applied := 0
	for _, def := range weaponDefs {
		base, ok := arsenal.weapons[def.ID]
		if !ok {
			log.Printf("Skipping unknown weapon definition %q", def.ID)
			continue
		}
		arsenal.weapons[def.ID] = merge(base, def)
		applied++
	}

	log.Printf("Loaded %d weapon definitions", applied)
	return arsenal, nil
}

func merge(base WeaponDefinition, over weaponOverride) WeaponDefinition {
	if over.Name != "" {
		base.Name = over.Name
	}
	if over.Damage > 0 {
		base.Damage = over.Damage
	}
	if over.Shake > 0 {
		base.Shake = over.Shake
	}
	if over.Splat.Valid() {
		base.Splat = over.Splat
	}
	if over.PoolIncrement > 0 && over.PoolIncrement <= 1 {
		base.PoolIncrement = over.PoolIncrement
	}
	if over.Droplets > 0 {
		base.Droplets = over.Droplets
	}
	if over.Icon != "" {
		base.Icon = over.Icon
	}
	if over.Hard != nil {
		base.Hard = *over.Hard
	}
	return base
}
