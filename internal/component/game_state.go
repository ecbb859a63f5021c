package component

// GameState — компонент для хранения состояния игры
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateLevelUp
	StateGameOver
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateLevelUp:
		return "levelup"
	case StateGameOver:
		return "gameover"
	}
	return "unknown"
}

// GameProgress — прогресс забега по секциям.
type GameProgress struct {
	Section         int
	Progress        float64 // 0..100
	EnemiesDefeated int
	BossActive      bool
}

// RunStats — счётчики для экрана окончания игры.
type RunStats struct {
	EnemiesKilled int
	BossesKilled  int
	BallsThrown   int
	TimeSurvived  float64
}
