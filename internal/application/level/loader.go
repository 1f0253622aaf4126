// Package level turns level descriptions into world objects.
package level

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/application/world"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Level categories.
const (
	CategoryTerrain   = "Terrain"
	CategoryBreakable = "Breakable"
	CategoryBlock     = "Block"
	CategoryEnemy     = "Enemy"
	CategorySpawn     = "Spawn"
)

const (
	terrainLayer   = 1
	polylineLayer  = 2
	lineThickness  = 0.1
	terrainSprite  = "terrain"
	breakableBlock = "block"
)

// ErrNoLevel is returned when there is nothing to load.
var ErrNoLevel = errors.New("level: no level description")

// Level is a level loaded into a world.
type Level struct {
	Name       string
	Music      string
	Background string
	Parallax   []config.ParallaxConfig
	Knight     *entity.Knight
	// Bounds covers the level size and every loaded object.
	Bounds geom.Rect
	// Skipped counts malformed objects that were ignored.
	Skipped int
}

// Loader builds world objects from level descriptions.
type Loader struct {
	cfg *config.GameConfig
	log logrus.FieldLogger
}

// NewLoader creates a level loader using cfg for entity tuning.
func NewLoader(cfg *config.GameConfig, log logrus.FieldLogger) *Loader {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Loader{cfg: cfg, log: log}
}

// Load adds the knight and every object of lvl to w. The knight is added
// first so blocks can watch it. Unknown categories and malformed objects
// are skipped.
func (l *Loader) Load(w *world.World, lvl *config.LevelConfig) (*Level, error) {
	if lvl == nil {
		return nil, ErrNoLevel
	}
	log := l.log.WithField("level", lvl.Name)
	frame := geom.Frame{Height: lvl.Size.Height}
	sprites := w.Sprites()

	out := &Level{
		Name:       lvl.Name,
		Music:      lvl.Music,
		Background: lvl.Background,
		Parallax:   lvl.Parallax,
		Bounds:     geom.NewRect(0, 0, lvl.Size.Width, lvl.Size.Height),
	}

	out.Knight = entity.NewKnight(l.spawn(lvl, frame), KnightTuning(l.cfg.Physics, l.cfg.Entities), sprites)
	w.Add(out.Knight)

	add := func(obj entity.Object) {
		w.Add(obj)
		out.Bounds = out.Bounds.Union(obj.Base().Bounds())
	}

	for i, obj := range lvl.Objects {
		category := lvl.Category(obj)
		olog := log.WithFields(logrus.Fields{"object": i, "name": obj.Name, "category": category})

		switch category {
		case CategoryTerrain, CategoryBreakable:
			shapes, ok := terrainShapes(obj, frame)
			if !ok {
				olog.Warn("malformed terrain object skipped")
				out.Skipped++
				continue
			}
			for _, s := range shapes {
				t := entity.NewTerrain(s.shape, entity.Solid(), s.layer)
				t.Name = category
				t.Anim.Sprite = sprites.Get(spriteFor(category))
				add(t)
			}

		case CategoryBlock:
			r, ok := rectOf(obj, frame)
			if !ok {
				olog.Warn("block without a rect skipped")
				out.Skipped++
				continue
			}
			add(entity.NewBlock(r, l.cfg.Entities.Block.Sprite, sprites, out.Knight, terrainLayer))

		case CategoryEnemy:
			r, ok := rectOf(obj, frame)
			if !ok {
				olog.Warn("enemy without a rect skipped")
				out.Skipped++
				continue
			}
			add(entity.NewEnemy(r, EnemyTuning(l.cfg.Physics, l.cfg.Entities), sprites))

		case CategorySpawn:
			// consumed by spawn

		default:
			olog.Debug("unknown category skipped")
		}
	}

	log.WithFields(logrus.Fields{
		"objects": w.Len(),
		"skipped": out.Skipped,
	}).Info("level loaded")
	return out, nil
}

// spawn returns the knight spawn point: the explicit spawn, else the first
// Spawn object, else the origin.
func (l *Loader) spawn(lvl *config.LevelConfig, frame geom.Frame) geom.Vec2 {
	if lvl.Spawn != nil {
		return frame.Point(lvl.Spawn.X, lvl.Spawn.Y, lvl.Spawn.YUp)
	}
	for _, obj := range lvl.Objects {
		if lvl.Category(obj) != CategorySpawn {
			continue
		}
		if r, ok := rectOf(obj, frame); ok {
			return r.Min
		}
		if len(obj.Multiline) > 0 {
			p := obj.Multiline[0]
			return frame.Point(p.X, p.Y, p.YUp)
		}
	}
	return geom.Vec2{}
}

type placedShape struct {
	shape geom.RotRect
	layer int
}

func terrainShapes(obj config.ObjectConfig, frame geom.Frame) ([]placedShape, bool) {
	switch {
	case obj.Rect != nil:
		r, ok := rectOf(obj, frame)
		if !ok {
			return nil, false
		}
		return []placedShape{{geom.FromRect(r), terrainLayer}}, true

	case obj.RotRect != nil:
		rr := obj.RotRect
		if rr.Width <= 0 || rr.Height <= 0 {
			return nil, false
		}
		return []placedShape{{frame.RotRect(rr.CX, rr.CY, rr.Width, rr.Height, rr.Angle, rr.YUp), terrainLayer}}, true

	case len(obj.Multiline) > 0:
		points := make([]geom.Vec2, 0, len(obj.Multiline))
		for _, p := range obj.Multiline {
			points = append(points, frame.Point(p.X, p.Y, p.YUp))
		}
		lines := geom.Chain(points)
		if len(lines) == 0 {
			return nil, false
		}
		out := make([]placedShape, 0, len(lines))
		for _, line := range lines {
			out = append(out, placedShape{geom.FromSegment(line, lineThickness), polylineLayer})
		}
		return out, true
	}
	return nil, false
}

func rectOf(obj config.ObjectConfig, frame geom.Frame) (geom.Rect, bool) {
	r := obj.Rect
	if r == nil || r.Width <= 0 || r.Height <= 0 {
		return geom.Rect{}, false
	}
	return frame.Rect(r.X, r.Y, r.Width, r.Height, r.YUp), true
}

func spriteFor(category string) string {
	if category == CategoryBreakable {
		return breakableBlock
	}
	return terrainSprite
}
