package event

import "github.com/rs/zerolog"

// LogListener пишет заметные игровые события в лог.
type LogListener struct {
	log zerolog.Logger
}

func NewLogListener(log zerolog.Logger) *LogListener {
	return &LogListener{log: log}
}

func (l *LogListener) OnEvent(e Event) {
	switch data := e.Data.(type) {
	case WaveData:
		l.log.Debug().Str("event", string(e.Type)).Int("wave", data.Index).Int("section", data.Section).Msg("wave spawned")
	case BossData:
		l.log.Info().Str("event", string(e.Type)).Str("boss", data.Name).Int("phase", data.Phase).Msg("boss")
	case LevelUpData:
		l.log.Info().Str("event", string(e.Type)).Int("level", data.Level).Msg("level up")
	case UpgradeData:
		l.log.Info().Str("event", string(e.Type)).Str("upgrade", data.ID).Msg("upgrade chosen")
	case GameOverData:
		l.log.Info().Str("event", string(e.Type)).
			Int("level", data.Level).
			Int("kills", data.Stats.EnemiesKilled).
			Int("bosses", data.Stats.BossesKilled).
			Float64("time", data.Stats.TimeSurvived).
			Msg("game over")
	case EnemyKilledData, PowerUpData, BallData:
		l.log.Trace().Str("event", string(e.Type)).Interface("data", data).Msg("event")
	default:
		l.log.Info().Str("event", string(e.Type)).Msg("event")
	}
}
