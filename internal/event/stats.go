package event

import "go-ball-brawler/internal/component"

// StatsTracker копит счётчики забега по событиям.
type StatsTracker struct {
	KillsByType  map[component.EnemyType]int
	BossesKilled int
	Waves        int
	PowerUps     int
	Throws       int
	Catches      int
	MaxLevel     int
}

func NewStatsTracker() *StatsTracker {
	return &StatsTracker{
		KillsByType: make(map[component.EnemyType]int),
		MaxLevel:    1,
	}
}

// Attach subscribes the tracker to every event it counts.
func (s *StatsTracker) Attach(d *Dispatcher) {
	for _, t := range []EventType{EnemyKilled, BossDefeated, WaveSpawned, PowerUpCollected, BallThrown, BallCaught, LevelUp} {
		d.Subscribe(t, s)
	}
}

func (s *StatsTracker) OnEvent(e Event) {
	switch e.Type {
	case EnemyKilled:
		if data, ok := e.Data.(EnemyKilledData); ok {
			s.KillsByType[data.Type]++
		}
	case BossDefeated:
		s.BossesKilled++
	case WaveSpawned:
		s.Waves++
	case PowerUpCollected:
		s.PowerUps++
	case BallThrown:
		s.Throws++
	case BallCaught:
		s.Catches++
	case LevelUp:
		if data, ok := e.Data.(LevelUpData); ok && data.Level > s.MaxLevel {
			s.MaxLevel = data.Level
		}
	}
}

// TotalKills sums kills over every enemy type.
func (s *StatsTracker) TotalKills() int {
	total := 0
	for _, n := range s.KillsByType {
		total += n
	}
	return total
}
