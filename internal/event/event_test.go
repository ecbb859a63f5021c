package event

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"go-ball-brawler/internal/component"
)

func TestDispatchOrder(t *testing.T) {
	d := NewDispatcher()
	var got []string
	d.Subscribe(LevelUp, ListenerFunc(func(Event) { got = append(got, "first") }))
	d.Subscribe(LevelUp, ListenerFunc(func(Event) { got = append(got, "second") }))
	d.SubscribeAll(ListenerFunc(func(Event) { got = append(got, "all") }))
	d.Subscribe(GameOver, ListenerFunc(func(Event) { got = append(got, "never") }))

	d.Emit(LevelUp, LevelUpData{Level: 2})
	assert.Equal(t, []string{"first", "second", "all"}, got)
}

func TestStatsTracker(t *testing.T) {
	d := NewDispatcher()
	s := NewStatsTracker()
	s.Attach(d)

	d.Emit(EnemyKilled, EnemyKilledData{Type: component.EnemyTank})
	d.Emit(EnemyKilled, EnemyKilledData{Type: component.EnemyTank})
	d.Emit(EnemyKilled, EnemyKilledData{Type: component.EnemyMelee})
	d.Emit(BossDefeated, BossData{})
	d.Emit(LevelUp, LevelUpData{Level: 4})
	d.Emit(LevelUp, LevelUpData{Level: 3})

	assert.Equal(t, 2, s.KillsByType[component.EnemyTank])
	assert.Equal(t, 3, s.TotalKills())
	assert.Equal(t, 1, s.BossesKilled)
	assert.Equal(t, 4, s.MaxLevel)
}

func TestLogListener(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogListener(zerolog.New(&buf))
	l.OnEvent(Event{Type: BossSpawned, Data: BossData{Name: "The Dark Mage", Phase: 1}})
	assert.Contains(t, buf.String(), "The Dark Mage")
}
