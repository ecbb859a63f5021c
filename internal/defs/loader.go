// internal/defs/loader.go
package defs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	ballsFile    = "balls.yaml"
	enemiesFile  = "enemies.yaml"
	wavesFile    = "waves.yaml"
	upgradesFile = "upgrades.yaml"
)

func init() {
	if err := LoadEmbedded(); err != nil {
		panic(fmt.Sprintf("defs: embedded definitions are broken: %v", err))
	}
}

// LoadEmbedded (re)loads all libraries from the definitions compiled into the binary.
func LoadEmbedded() error {
	read := func(name string) ([]byte, error) {
		return embedded.ReadFile("data/" + name)
	}
	loaders := []struct {
		name string
		load func([]byte) error
	}{
		{ballsFile, loadBalls},
		{enemiesFile, loadEnemies},
		{wavesFile, loadWaves},
		{upgradesFile, loadUpgrades},
	}
	for _, l := range loaders {
		data, err := read(l.name)
		if err != nil {
			return fmt.Errorf("failed to read embedded %s: %w", l.name, err)
		}
		if err := l.load(data); err != nil {
			return fmt.Errorf("%s: %w", l.name, err)
		}
	}
	return nil
}

// LoadBallDefinitions reads a ball definitions file and replaces the BallLibrary.
func LoadBallDefinitions(path string) error {
	return loadFile(path, "ball", loadBalls)
}

// LoadEnemyDefinitions reads an enemy definitions file and replaces the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	return loadFile(path, "enemy", loadEnemies)
}

// LoadWavePatterns reads a wave patterns file and replaces WavePatterns.
func LoadWavePatterns(path string) error {
	return loadFile(path, "wave", loadWaves)
}

// LoadUpgradeDefinitions reads an upgrade catalog file and replaces UpgradeCatalog.
func LoadUpgradeDefinitions(path string) error {
	return loadFile(path, "upgrade", loadUpgrades)
}

// LoadOverrides replaces every library whose file exists in dir and returns
// the names of the files that were applied.
func LoadOverrides(dir string) ([]string, error) {
	if dir == "" {
		return nil, nil
	}
	loaders := map[string]func(string) error{
		ballsFile:    LoadBallDefinitions,
		enemiesFile:  LoadEnemyDefinitions,
		wavesFile:    LoadWavePatterns,
		upgradesFile: LoadUpgradeDefinitions,
	}
	var applied []string
	for _, name := range []string{ballsFile, enemiesFile, wavesFile, upgradesFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := loaders[name](path); err != nil {
			return applied, err
		}
		applied = append(applied, name)
	}
	return applied, nil
}

func loadFile(path, what string, load func([]byte) error) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s definitions file: %w", what, err)
	}
	if err := load(file); err != nil {
		return fmt.Errorf("failed to load %s definitions: %w", what, err)
	}
	return nil
}

func loadBalls(data []byte) error {
	var list []BallDefinition
	if err := yaml.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal ball definitions: %w", err)
	}
	lib, err := buildBallLibrary(list)
	if err != nil {
		return err
	}
	BallLibrary = lib
	return nil
}

func loadEnemies(data []byte) error {
	var list []EnemyDefinition
	if err := yaml.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	lib, err := buildEnemyLibrary(list)
	if err != nil {
		return err
	}
	EnemyLibrary = lib
	return nil
}

func loadWaves(data []byte) error {
	var rows [][]string
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return fmt.Errorf("failed to unmarshal wave patterns: %w", err)
	}
	patterns, err := buildWavePatterns(rows)
	if err != nil {
		return err
	}
	WavePatterns = patterns
	return nil
}

func loadUpgrades(data []byte) error {
	var list []UpgradeDefinition
	if err := yaml.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("failed to unmarshal upgrade definitions: %w", err)
	}
	if err := validateUpgrades(list); err != nil {
		return err
	}
	UpgradeCatalog = list
	return nil
}
