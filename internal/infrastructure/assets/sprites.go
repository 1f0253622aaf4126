// Package assets resolves sprite and sound ids against the entity config.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// fallbackColor is used when a sprite color cannot be parsed.
var fallbackColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// Sprite is a shared animated sprite. Without a sheet it renders as a flat
// color fill.
type Sprite struct {
	id     string
	frames int
	fps    float64
	fw, fh int
	row    int
	sheet  *ebiten.Image

	Color color.RGBA
}

// ID returns the sprite id.
func (s *Sprite) ID() string { return s.id }

// Frames returns the animation length.
func (s *Sprite) Frames() int { return s.frames }

// Frame returns the animation frame shown t seconds into the animation.
func (s *Sprite) Frame(t float64) int {
	if s.frames <= 1 || s.fps <= 0 || t <= 0 {
		return 0
	}
	return int(math.Floor(t*s.fps)) % s.frames
}

// Image returns the sheet cell for frame t, or nil when the sprite has no
// sheet.
func (s *Sprite) Image(t float64) *ebiten.Image {
	if s.sheet == nil {
		return nil
	}
	x := s.Frame(t) * s.fw
	y := s.row * s.fh
	return s.sheet.SubImage(image.Rect(x, y, x+s.fw, y+s.fh)).(*ebiten.Image)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(hex string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	s := strings.TrimPrefix(hex, "#")
	var err error
	switch len(s) {
	case 6:
		_, err = fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B)
	case 8:
		_, err = fmt.Sscanf(s, "%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return fallbackColor, fmt.Errorf("failed to parse color %q: %w", hex, err)
	}
	return c, nil
}

// SpriteFactory builds sprites on first use and shares them afterwards.
type SpriteFactory struct {
	cfg   map[string]config.SpriteConfig
	fsys  fs.FS
	cache map[string]*Sprite
	log   logrus.FieldLogger
}

// NewSpriteFactory creates a factory over the sprite table. Sheets are read
// from fsys; a nil fsys renders every sprite as a color fill.
func NewSpriteFactory(cfg map[string]config.SpriteConfig, fsys fs.FS, log logrus.FieldLogger) *SpriteFactory {
	return &SpriteFactory{
		cfg:   cfg,
		fsys:  fsys,
		cache: make(map[string]*Sprite),
		log:   log,
	}
}

// Get returns the sprite for id, or nil for an unknown id.
func (f *SpriteFactory) Get(id string) entity.SpriteHandle {
	if s := f.Sprite(id); s != nil {
		return s
	}
	return nil
}

// Sprite is Get with the concrete type.
func (f *SpriteFactory) Sprite(id string) *Sprite {
	if s, ok := f.cache[id]; ok {
		return s
	}
	c, ok := f.cfg[id]
	if !ok {
		f.log.WithField("sprite", id).Warn("unknown sprite")
		f.cache[id] = nil
		return nil
	}

	s := &Sprite{
		id:     id,
		frames: c.Frames,
		fps:    c.FPS,
		fw:     c.FrameWidth,
		fh:     c.FrameHeight,
		row:    c.Row,
	}
	if s.frames < 1 {
		s.frames = 1
	}
	col, err := ParseColor(c.Color)
	if err != nil && c.Color != "" {
		f.log.WithError(err).WithField("sprite", id).Warn("bad sprite color")
	}
	s.Color = col
	if c.Color == "" {
		s.Color = fallbackColor
	}

	if c.Sheet != "" && f.fsys != nil && c.FrameWidth > 0 && c.FrameHeight > 0 {
		img, _, err := ebitenutil.NewImageFromFileSystem(f.fsys, c.Sheet)
		if err != nil {
			f.log.WithError(err).WithField("sprite", id).Warn("sprite sheet unavailable, using color")
		} else {
			s.sheet = img
		}
	}

	f.cache[id] = s
	return s
}
