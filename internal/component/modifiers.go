// internal/component/modifiers.go
package component

import "math"

// Modifiers — глобальные модификаторы забега, которые копят улучшения.
// Поля меняются только через методы ниже.
type Modifiers struct {
	baseDamageBonus     float64
	ballSpeedMultiplier float64
	ballSizeMultiplier  float64
	ballDamageMul       float64
	xpMagnetMultiplier  float64
	xpMultiplier        float64
	dropRateBonus       float64
	lifeSteal           bool
	secondWind          bool
	secondWindUsed      bool
}

func NewModifiers() Modifiers {
	return Modifiers{
		ballSpeedMultiplier: 1,
		ballSizeMultiplier:  1,
		ballDamageMul:       1,
		xpMagnetMultiplier:  1,
		xpMultiplier:        1,
	}
}

func (m *Modifiers) BaseDamageBonus() float64      { return m.baseDamageBonus }
func (m *Modifiers) BallSpeedMultiplier() float64  { return m.ballSpeedMultiplier }
func (m *Modifiers) BallSizeMultiplier() float64   { return m.ballSizeMultiplier }
func (m *Modifiers) BallDamageMultiplier() float64 { return m.ballDamageMul }
func (m *Modifiers) XPMagnetMultiplier() float64   { return m.xpMagnetMultiplier }
func (m *Modifiers) XPMultiplier() float64         { return m.xpMultiplier }
func (m *Modifiers) DropRateBonus() float64        { return m.dropRateBonus }
func (m *Modifiers) LifeSteal() bool               { return m.lifeSteal }
func (m *Modifiers) HasSecondWind() bool           { return m.secondWind }
func (m *Modifiers) SecondWindUsed() bool          { return m.secondWindUsed }

func (m *Modifiers) AddBaseDamage(amount float64) {
	m.baseDamageBonus += amount
}

func (m *Modifiers) ScaleBallSpeed(f float64) {
	m.ballSpeedMultiplier *= f
}

func (m *Modifiers) ScaleBallSize(f float64) {
	m.ballSizeMultiplier *= f
}

func (m *Modifiers) ScaleBallDamage(f float64) {
	m.ballDamageMul *= f
}

func (m *Modifiers) ScaleXPMagnet(f float64) {
	m.xpMagnetMultiplier *= f
}

func (m *Modifiers) ScaleXP(f float64) {
	m.xpMultiplier *= f
}

// AddDropRate raises the drop bonus; a bonus above 1 can never matter.
func (m *Modifiers) AddDropRate(amount float64) {
	m.dropRateBonus = math.Min(1, m.dropRateBonus+amount)
}

func (m *Modifiers) EnableLifeSteal() {
	m.lifeSteal = true
}

func (m *Modifiers) EnableSecondWind() {
	m.secondWind = true
}

// ConsumeSecondWind uses up the revive, reporting whether one was available.
func (m *Modifiers) ConsumeSecondWind() bool {
	if !m.secondWind || m.secondWindUsed {
		return false
	}
	m.secondWindUsed = true
	return true
}
