// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-ball-brawler/internal/app"
	"go-ball-brawler/internal/component"
	"go-ball-brawler/internal/config"
	"go-ball-brawler/internal/defs"
	"go-ball-brawler/internal/system"
	vec "go-ball-brawler/pkg/utils"
)

const (
	gridCell      = 40
	hpBarHeight   = 4
	aimDash       = 8
	enemyOutline  = 1.5
	playerOutline = 2
)

// Renderer рисует снимок игры. Статический фон рендерится один раз.
type Renderer struct {
	showAim         bool
	backgroundImage *ebiten.Image
}

func NewRenderer(showAim bool) *Renderer {
	r := &Renderer{showAim: showAim}
	r.renderBackgroundImage()
	return r
}

// renderBackgroundImage рисует вертикальный градиент в отдельное изображение.
func (r *Renderer) renderBackgroundImage() {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	for y := 0; y < config.ScreenHeight; y++ {
		c := LerpColor(config.BackgroundTop, config.BackgroundBottom, float64(y)/config.ScreenHeight)
		vector.DrawFilledRect(img, 0, float32(y), config.ScreenWidth, 1, c, false)
	}
	r.backgroundImage = img
}

// Draw renders the playfield. The HUD is drawn separately by the ui package.
func (r *Renderer) Draw(screen *ebiten.Image, s *app.Snapshot) {
	screen.DrawImage(r.backgroundImage, nil)
	r.drawMotes(screen, s.Stars)
	r.drawMotes(screen, s.Dust)
	r.drawGrid(screen, s.GridOffset, s.BossFight)

	for i := range s.XPOrbs {
		o := &s.XPOrbs[i]
		pulse := 1 + 0.2*math.Sin(s.GameTime*8+float64(o.ID))
		vector.DrawFilledCircle(screen, float32(o.Position.X), float32(o.Position.Y), float32(4*pulse), config.XPOrbColor, true)
	}
	for i := range s.PowerUps {
		r.drawPowerUp(screen, &s.PowerUps[i], s.GameTime)
	}
	for i := range s.Enemies {
		r.drawEnemy(screen, &s.Enemies[i])
	}
	if s.Boss != nil {
		r.drawBoss(screen, s.Boss, s.GameTime)
	}
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		vector.DrawFilledCircle(screen, float32(p.Position.X), float32(p.Position.Y), 4, config.ProjectileColor, true)
	}
	if r.showAim && s.State == component.StatePlaying {
		drawAim(screen, s.Aim)
	}
	for i := range s.Balls {
		r.drawBall(screen, &s.Balls[i])
	}
	r.drawPlayer(screen, &s.Player, s.GameTime)
	for i := range s.Particles {
		drawParticle(screen, &s.Particles[i])
	}

	if s.Flash > 0 {
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, WithAlpha(color.RGBA{255, 255, 255, 255}, s.Flash*0.6), false)
	}
}

func (r *Renderer) drawMotes(screen *ebiten.Image, motes []system.Mote) {
	for _, m := range motes {
		c := WithAlpha(color.RGBA{255, 255, 255, 255}, m.Opacity)
		vector.DrawFilledCircle(screen, float32(m.X), float32(m.Y), float32(m.Size/2), c, false)
	}
}

func (r *Renderer) drawGrid(screen *ebiten.Image, offset float64, bossFight bool) {
	c := config.GridColor
	if bossFight {
		c = config.BossGridColor
	}
	for x := 0; x <= config.ScreenWidth; x += gridCell {
		vector.StrokeLine(screen, float32(x), config.HUDHeight, float32(x), config.ScreenHeight, 1, c, false)
	}
	for y := config.HUDHeight + offset; y < config.ScreenHeight; y += gridCell {
		vector.StrokeLine(screen, 0, float32(y), config.ScreenWidth, float32(y), 1, c, false)
	}
}

func (r *Renderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	def := defs.Enemy(e.Type)
	c := enemyColor(def.RGBA, e.StatusEffects)
	half := float32(e.Size / 2)
	x, y := float32(e.Position.X), float32(e.Position.Y)

	vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, DarkenColor(c), true)
	vector.StrokeRect(screen, x-half, y-half, half*2, half*2, enemyOutline, c, true)
	if e.Type == component.EnemyElite {
		vector.StrokeCircle(screen, x, y, half+4, 1, config.SparkleColor, true)
	}

	if e.HP < e.MaxHP {
		drawBar(screen, x-half, y-half-hpBarHeight-2, half*2, hpBarHeight, e.HP/e.MaxHP, config.HealthBarColor)
	}
}

func (r *Renderer) drawBoss(screen *ebiten.Image, b *app.BossView, gameTime float64) {
	def := defs.BossLibrary[b.Type]
	rect := b.Bounds(config.BossWidth, config.BossHeight)
	c := def.Color
	if b.Charging && math.Mod(gameTime, 0.2) < 0.1 {
		c = LerpColor(c, color.RGBA{255, 255, 255, 255}, 0.5)
	}

	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), DarkenColor(c), true)
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), 3, c, true)
	// фазы — точки над боссом
	for i := 0; i < b.Phase; i++ {
		vector.DrawFilledCircle(screen, float32(rect.X)+8+float32(i)*12, float32(rect.Y)-8, 4, c, true)
	}

	for _, o := range b.Orbs {
		vector.DrawFilledCircle(screen, float32(o.Position.X), float32(o.Position.Y), 10, WithAlpha(config.HomingOrbColor, 0.4), true)
		vector.DrawFilledCircle(screen, float32(o.Position.X), float32(o.Position.Y), 6, config.HomingOrbColor, true)
	}
}

func (r *Renderer) drawBall(screen *ebiten.Image, b *component.Ball) {
	c := defs.Ball(b.Type).RGBA
	x, y := float32(b.Position.X), float32(b.Position.Y)
	if b.Type.Phases() {
		c = WithAlpha(c, 0.6)
	}
	vector.DrawFilledCircle(screen, x, y, float32(b.Radius), c, true)
	vector.StrokeCircle(screen, x, y, float32(b.Radius), 1, DarkenColor(c), true)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *component.Player, gameTime float64) {
	// мигание во время неуязвимости
	if p.Stats.Invincible() && math.Mod(gameTime, 0.2) < 0.1 {
		return
	}
	x, y := float32(p.Position.X), float32(p.Position.Y)
	w, h := float32(config.PlayerWidth), float32(config.PlayerHeight)
	vector.DrawFilledRect(screen, x-w/2, y-h/2, w, h, DarkenColor(config.PlayerColor), true)
	vector.StrokeRect(screen, x-w/2, y-h/2, w, h, playerOutline, config.PlayerColor, true)

	paddle := system.PaddleRect(p.Position)
	vector.DrawFilledRect(screen, float32(paddle.X), float32(paddle.Y), float32(paddle.W), float32(paddle.H), config.PaddleColor, true)

	if p.Stats.HasShield() {
		vector.StrokeCircle(screen, x, y, w, 3, config.ShieldColor, true)
	}
}

func (r *Renderer) drawPowerUp(screen *ebiten.Image, p *component.PowerUp, gameTime float64) {
	c := powerUpColor(p.Type)
	// гаснет за последние две секунды
	if p.Lifetime < 2 && math.Mod(gameTime, 0.3) < 0.15 {
		c = WithAlpha(c, 0.4)
	}
	x, y := float32(p.Position.X), float32(p.Position.Y)
	vector.DrawFilledCircle(screen, x, y, 12, DarkenColor(c), true)
	vector.StrokeCircle(screen, x, y, 12, 2, c, true)
}

// drawAim рисует пунктир по точкам траектории.
func drawAim(screen *ebiten.Image, points []vec.Vector2) {
	for i := 1; i < len(points); i++ {
		from, to := points[i-1], points[i]
		seg := to.Sub(from)
		length := seg.Len()
		if length == 0 {
			continue
		}
		dir := seg.Scale(1 / length)
		for d := 0.0; d < length; d += aimDash * 2 {
			a := from.Add(dir.Scale(d))
			b := from.Add(dir.Scale(math.Min(d+aimDash, length)))
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, config.AimGuideColor, true)
		}
	}
}

func drawParticle(screen *ebiten.Image, p *component.Particle) {
	c := WithAlpha(p.Color, p.Alpha)
	half := float32(p.Size / 2)
	vector.DrawFilledRect(screen, float32(p.Position.X)-half, float32(p.Position.Y)-half, half*2, half*2, c, false)
}

// drawBar draws a filled bar with a dark backing; fraction is clamped to 0..1.
func drawBar(screen *ebiten.Image, x, y, w, h float32, fraction float64, c color.RGBA) {
	fraction = vec.Clamp(fraction, 0, 1)
	vector.DrawFilledRect(screen, x, y, w, h, color.RGBA{0, 0, 0, 160}, false)
	vector.DrawFilledRect(screen, x, y, w*float32(fraction), h, c, false)
}
