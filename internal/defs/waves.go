package defs

import (
	"fmt"

	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
)

// WavePattern — один ряд врагов, по одному на колонку.
type WavePattern [config.Columns]component.EnemyType

// WavePatterns определяет циклическую последовательность рядов.
var WavePatterns []WavePattern

// PatternForWave returns the row for the given wave index, cycling the list.
func PatternForWave(index int) WavePattern {
	if len(WavePatterns) == 0 {
		return WavePattern{}
	}
	if index < 0 {
		index = 0
	}
	return WavePatterns[index%len(WavePatterns)]
}

func buildWavePatterns(rows [][]string) ([]WavePattern, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no wave patterns defined")
	}
	patterns := make([]WavePattern, 0, len(rows))
	for i, row := range rows {
		if len(row) != config.Columns {
			return nil, fmt.Errorf("wave %d: want %d columns, got %d", i, config.Columns, len(row))
		}
		var p WavePattern
		for col, name := range row {
			kind, ok := component.ParseEnemyType(name)
			if !ok {
				return nil, fmt.Errorf("wave %d column %d: unknown enemy %q", i, col, name)
			}
			p[col] = kind
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}
