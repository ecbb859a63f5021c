// internal/system/status_effect.go
package system

import "go-ball-brawler/internal/component"

// ApplyStatusEffect вешает эффект на врага. Если эффект такого типа уже есть,
// обновляет длительность и, когда у обоих есть урон, суммирует урон.
func ApplyStatusEffect(e *component.Enemy, effect component.StatusEffect) {
	for i := range e.StatusEffects {
		existing := &e.StatusEffects[i]
		if existing.Type != effect.Type {
			continue
		}
		existing.Duration = effect.Duration
		if effect.Damage > 0 && existing.Damage > 0 {
			existing.Damage += effect.Damage
		}
		return
	}
	e.StatusEffects = append(e.StatusEffects, effect)
}

// Burn, Freeze and Poison build the effects the elemental balls apply.
func Burn(duration, damage float64) component.StatusEffect {
	return component.StatusEffect{Type: component.StatusBurn, Duration: duration, Damage: damage, TickTimer: 1, HasTick: true}
}

func Freeze(duration float64) component.StatusEffect {
	return component.StatusEffect{Type: component.StatusFreeze, Duration: duration}
}

func Poison(duration, damage float64) component.StatusEffect {
	return component.StatusEffect{Type: component.StatusPoison, Duration: duration, Damage: damage, TickTimer: 1, HasTick: true}
}

// tickStatusEffects advances every effect on the enemy. Damage ticks once per
// second of game time; the countdown resets to 1 and drops the overshoot.
func tickStatusEffects(e *component.Enemy, deltaTime float64) {
	kept := e.StatusEffects[:0]
	for _, eff := range e.StatusEffects {
		eff.Duration -= deltaTime
		if eff.Damage > 0 {
			if eff.HasTick {
				eff.TickTimer -= deltaTime
				if eff.TickTimer <= 0 {
					DamageEnemy(e, eff.Damage)
					eff.TickTimer = 1
				}
			} else {
				// урон без таймера: первый тик только заводит таймер
				eff.TickTimer = 1
				eff.HasTick = true
			}
		}
		if eff.Duration > 0 {
			kept = append(kept, eff)
		}
	}
	e.StatusEffects = kept
}

// EffectiveSpeed halves the speed under slow or freeze. Several such effects
// do not compound.
func EffectiveSpeed(e *component.Enemy) float64 {
	if e.HasEffect(component.StatusSlow) || e.HasEffect(component.StatusFreeze) {
		return e.Speed * 0.5
	}
	return e.Speed
}
