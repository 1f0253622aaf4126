package playing

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/assets"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorTerrain = color.RGBA{80, 80, 100, 255}
	colorKnight  = color.RGBA{100, 200, 100, 255}
	colorEnemy   = color.RGBA{200, 100, 100, 255}
	colorBlock   = color.RGBA{200, 160, 60, 255}
	colorHitbox  = color.RGBA{255, 255, 255, 160}
)

// camera follows the knight, in world units.
type camera struct {
	x, y float64
}

func (c *camera) follow(target geom.Vec2, viewW, viewH float64, bounds geom.Rect) {
	c.x = clamp(target.X()-viewW/2, bounds.Left(), bounds.Right()-viewW)
	c.y = clamp(target.Y()-viewH/2, bounds.Top(), bounds.Bottom()-viewH)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if p.white == nil {
		p.white = ebiten.NewImage(3, 3)
		p.white.Fill(color.White)
	}

	w := p.session.World()
	k := p.session.Knight()
	p.camera.follow(k.Bounds().Center(), float64(p.screenW)/p.ppu, float64(p.screenH)/p.ppu, p.session.Level().Bounds)

	p.drawBackground(screen, w.Now())

	objs := w.Objects()
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].Base().Layer < objs[j].Base().Layer
	})
	debug := ebiten.IsKeyPressed(ebiten.KeyTab)
	for _, o := range objs {
		p.drawObject(screen, o.Base(), w.Now())
		if debug {
			p.strokeShape(screen, o.Base().Shape, colorHitbox)
		}
	}

	p.drawUI(screen)
}

// drawBackground paints the level backdrop and its parallax bands. A
// sprite without a sheet is drawn as a flat fill of its color.
func (p *Playing) drawBackground(screen *ebiten.Image, now float64) {
	lvl := p.session.Level()
	if lvl == nil || p.sprites == nil {
		return
	}
	if lvl.Background != "" {
		if s := p.sprites.Sprite(lvl.Background); s != nil {
			if img := s.Image(now); img != nil {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Scale(float64(p.screenW)/float64(img.Bounds().Dx()), float64(p.screenH)/float64(img.Bounds().Dy()))
				screen.DrawImage(img, op)
			} else {
				screen.Fill(s.Color)
			}
		}
	}

	for _, layer := range lvl.Parallax {
		s := p.sprites.Sprite(layer.Sprite)
		if s == nil || layer.Height <= 0 {
			continue
		}
		top := (layer.Top - p.camera.y*layer.Factor) * p.ppu
		h := layer.Height * p.ppu
		img := s.Image(now)
		if img == nil {
			ebitenutil.DrawRect(screen, 0, top, float64(p.screenW), h, s.Color)
			continue
		}
		scale := h / float64(img.Bounds().Dy())
		tileW := float64(img.Bounds().Dx()) * scale
		for x := parallaxStart(p.camera.x*layer.Factor*p.ppu, tileW); x < float64(p.screenW); x += tileW {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, top)
			screen.DrawImage(img, op)
		}
	}
}

// parallaxStart returns the screen x of the leftmost visible tile of a band
// of width tileW scrolled by offset pixels.
func parallaxStart(offset, tileW float64) float64 {
	if tileW <= 0 {
		return 0
	}
	x := -math.Mod(offset, tileW)
	if x > 0 {
		x -= tileW
	}
	return x
}

func (p *Playing) drawObject(screen *ebiten.Image, e *entity.Entity, now float64) {
	var s *assets.Sprite
	if e.Anim.Sprite != nil {
		s, _ = e.Anim.Sprite.(*assets.Sprite)
	}

	if s != nil {
		if img := s.Image(now); img != nil && e.Shape.Angle == 0 {
			p.drawImage(screen, img, e)
			return
		}
		p.fillShape(screen, e.Shape, s.Color)
		return
	}
	p.fillShape(screen, e.Shape, kindColor(e.Kind))
}

func (p *Playing) drawImage(screen *ebiten.Image, img *ebiten.Image, e *entity.Entity) {
	b := e.Bounds()
	iw, ih := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	sx, sy := b.Width()*p.ppu/iw, b.Height()*p.ppu/ih
	if !e.Fit {
		sy = sx
	}
	op := &ebiten.DrawImageOptions{}
	if e.Anim.FlipH {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(iw, 0)
	}
	if e.Anim.FlipV {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, ih)
	}
	op.GeoM.Scale(sx, sy)
	x, y := p.toScreen(b.Min)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (p *Playing) toScreen(v geom.Vec2) (float64, float64) {
	return (v.X() - p.camera.x) * p.ppu, (v.Y() - p.camera.y) * p.ppu
}

// fillShape draws a rotated rectangle as two triangles.
func (p *Playing) fillShape(screen *ebiten.Image, r geom.RotRect, c color.RGBA) {
	corners := r.Corners()
	cr, cg, cb, ca := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	vs := make([]ebiten.Vertex, 4)
	for i, pt := range corners {
		x, y := p.toScreen(pt)
		vs[i] = ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	src := p.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, src, nil)
}

func (p *Playing) strokeShape(screen *ebiten.Image, r geom.RotRect, c color.Color) {
	corners := r.Corners()
	for i := range corners {
		x1, y1 := p.toScreen(corners[i])
		x2, y2 := p.toScreen(corners[(i+1)%len(corners)])
		ebitenutil.DrawLine(screen, x1, y1, x2, y2, c)
	}
}

func kindColor(k entity.Kind) color.RGBA {
	switch k {
	case entity.KindPlayer:
		return colorKnight
	case entity.KindEnemy:
		return colorEnemy
	case entity.KindBlock:
		return colorBlock
	default:
		return colorTerrain
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	k := p.session.Knight()
	ebitenutil.DebugPrint(screen, "A/D: Move | W: Jump | Shift: Run | J: Attack | Tab: Hitboxes | ESC: Pause")
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("%s  %s  t=%.2f", p.session.LevelName(), k.State(), p.session.World().Now()),
		4, p.screenH-16)

	switch p.session.State() {
	case state.StatePaused:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
	case state.StateGameOver:
		ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{100, 0, 0, 180})
		ebitenutil.DebugPrintAt(screen, "GAME OVER\n\nPress Z to restart", p.screenW/2-60, p.screenH/2-20)
	}
}
