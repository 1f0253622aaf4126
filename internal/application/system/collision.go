package system

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// CollisionConfig tunes the resolution engine.
type CollisionConfig struct {
	// MaxIterations bounds the push-out passes per mover and step.
	MaxIterations int
	// GroundProbe is how far below a mover resting contact is detected.
	GroundProbe float64
	// MaxSlopeDegrees is the steepest surface a mover stands on without
	// sliding.
	MaxSlopeDegrees float64
}

// DefaultCollisionConfig returns the stock resolution settings.
func DefaultCollisionConfig() CollisionConfig {
	return CollisionConfig{
		MaxIterations:   4,
		GroundProbe:     0.05,
		MaxSlopeDegrees: 45,
	}
}

// Contact is a pair of overlapping objects found during resolution. A has
// the lower id; Dir is the side of A that was struck.
type Contact struct {
	A, B entity.Object
	Dir  entity.Direction
}

type pairKey struct {
	lo, hi entity.EntityID
}

// CollisionSystem separates overlapping colliders and reports contacts.
type CollisionSystem struct {
	cfg    CollisionConfig
	broad  BroadPhase
	log    logrus.FieldLogger
	minCos float64

	contacts map[pairKey]Contact
	active   func(entity.Object) bool
}

// NewCollisionSystem creates a collision system. A nil broad phase tests
// every pair.
func NewCollisionSystem(cfg CollisionConfig, broad BroadPhase, log logrus.FieldLogger) *CollisionSystem {
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 1
	}
	if broad == nil {
		broad = NewPairwise()
	}
	return &CollisionSystem{
		cfg:    cfg,
		broad:  broad,
		log:    log,
		minCos: math.Cos(mgl64.DegToRad(cfg.MaxSlopeDegrees)),
	}
}

// Resolve pushes every active mover out of the solids it overlaps and
// returns the contacts found, ordered by (lower id, higher id). objs must be
// in id order. active filters which movers are resolved; nil means all.
func (s *CollisionSystem) Resolve(objs []entity.Object, active func(entity.Object) bool) []Contact {
	s.broad.Sync(objs)
	s.contacts = make(map[pairKey]Contact)
	s.active = active
	if s.active == nil {
		s.active = func(entity.Object) bool { return true }
	}

	for _, obj := range objs {
		e := obj.Base()
		if !e.Mover() || !e.Collidable || e.Removed() || !s.active(obj) {
			continue
		}
		s.resolveMover(obj)
	}

	out := make([]Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.A.Base().ID() != b.A.Base().ID() {
			return a.A.Base().ID() < b.A.Base().ID()
		}
		return a.B.Base().ID() < b.B.Base().ID()
	})
	return out
}

type hit struct {
	other   entity.Object
	contact geom.Contact
	dir     entity.Direction
}

func (s *CollisionSystem) resolveMover(obj entity.Object) {
	e := obj.Base()
	grounded := false

	for i := 0; i < s.cfg.MaxIterations; i++ {
		var best *hit
		for _, other := range s.broad.Candidates(obj, e.Bounds()) {
			o := other.Base()
			if other == obj || !o.Collidable || o.Removed() {
				continue
			}
			c, ok := geom.Collide(e.Shape, o.Shape)
			if !ok {
				continue
			}
			if !o.Mover() {
				c = crossedAxis(e, o, c)
			}
			dir := entity.DirectionOf(c.Normal)
			s.record(obj, other, dir)
			if e.Compenetrable || o.Compenetrable {
				continue
			}
			if best == nil || c.Depth < best.contact.Depth {
				best = &hit{other: other, contact: c, dir: dir}
			}
		}
		if best == nil {
			break
		}
		if s.push(obj, best) {
			grounded = true
		}
		if i == s.cfg.MaxIterations-1 && s.log != nil {
			s.log.WithFields(logrus.Fields{
				"entity": obj.String(),
				"other":  best.other.String(),
				"depth":  best.contact.Depth,
			}).Trace("resolution iterations exhausted")
		}
	}

	if !grounded && !e.Compenetrable && e.Motion.Vel.Y() >= 0 {
		grounded = s.probeGround(obj)
	}
	e.Motion.SetGrounded(grounded)
}

// crossedAxis resolves a mover against an axis-aligned static collider
// along the axis the mover crossed during its last move. A floor made of
// adjacent tiles then never catches a walking mover on a tile's side edge,
// nor does a wall of stacked tiles catch a mover sliding down it. When both
// axes were clear the one entered last wins, ties going to the vertical.
// Any other case keeps the separating-axis contact.
func crossedAxis(e, o *entity.Entity, c geom.Contact) geom.Contact {
	if e.Shape.Angle != 0 || o.Shape.Angle != 0 {
		return c
	}
	prev, ok := e.LastBounds()
	if !ok {
		return c
	}
	a, b := e.Bounds(), o.Bounds()
	eps := geom.Epsilon
	above := prev.Bottom() <= b.Top()+eps
	below := prev.Top() >= b.Bottom()-eps
	left := prev.Right() <= b.Left()+eps
	right := prev.Left() >= b.Right()-eps

	var vertical, horizontal geom.Contact
	var ty, tx float64
	switch {
	case above:
		vertical = axisContact(geom.V(0, -1), a.Bottom()-b.Top())
		ty = entry(b.Top()-prev.Bottom(), a.Top()-prev.Top())
	case below:
		vertical = axisContact(geom.V(0, 1), b.Bottom()-a.Top())
		ty = entry(prev.Top()-b.Bottom(), a.Top()-prev.Top())
	}
	switch {
	case left:
		horizontal = axisContact(geom.V(-1, 0), a.Right()-b.Left())
		tx = entry(b.Left()-prev.Right(), a.Left()-prev.Left())
	case right:
		horizontal = axisContact(geom.V(1, 0), b.Right()-a.Left())
		tx = entry(prev.Left()-b.Right(), a.Left()-prev.Left())
	}

	yClear, xClear := above || below, left || right
	switch {
	case yClear && xClear && tx > ty:
		return horizontal
	case yClear:
		return vertical
	case xClear:
		return horizontal
	}
	return c
}

// entry returns the fraction of a move of length disp spent closing gap.
func entry(gap, disp float64) float64 {
	d := math.Abs(disp)
	if d <= geom.Epsilon {
		return 0
	}
	return math.Max(gap, 0) / d
}

func axisContact(normal geom.Vec2, depth float64) geom.Contact {
	return geom.Contact{MTV: normal.Mul(depth), Normal: normal, Depth: depth}
}

// push separates obj from h.other and reports whether obj now stands on it.
func (s *CollisionSystem) push(obj entity.Object, h *hit) bool {
	e := obj.Base()
	share := 1.0
	o := h.other.Base()
	if o.Mover() && s.active(h.other) {
		share = 0.5
	}

	delta := h.contact.MTV.Mul(share)
	n := h.contact.Normal
	if h.dir == entity.DirDown && -n.Y() >= s.minCos {
		// Stand on walkable slopes instead of sliding down them.
		delta = geom.V(0, -h.contact.Depth*share/-n.Y())
	}

	e.Shape = e.Shape.Translate(delta)
	e.Motion.Block(h.dir)
	s.broad.Moved(obj)

	if share < 1 {
		o.Shape = o.Shape.Translate(h.contact.MTV.Mul(-share))
		o.Motion.Block(h.dir.Opposite())
		s.broad.Moved(h.other)
	}
	return h.dir == entity.DirDown
}

func (s *CollisionSystem) probeGround(obj entity.Object) bool {
	e := obj.Base()
	probe := e.Shape.Translate(geom.V(0, s.cfg.GroundProbe))
	area := probe.Bounds()
	for _, other := range s.broad.Candidates(obj, area) {
		o := other.Base()
		if other == obj || !o.Collidable || o.Compenetrable || o.Removed() {
			continue
		}
		if e.Shape.Angle == 0 && o.Shape.Angle == 0 {
			// Flat floors: standing on top is enough, whichever tile of a
			// row the probe overlaps least.
			if area.Overlaps(o.Bounds()) && e.Bounds().Bottom() <= o.Bounds().Top()+geom.Epsilon {
				return true
			}
			continue
		}
		c, ok := geom.Collide(probe, o.Shape)
		if ok && entity.DirectionOf(c.Normal) == entity.DirDown {
			return true
		}
	}
	return false
}

func (s *CollisionSystem) record(obj, other entity.Object, dir entity.Direction) {
	a, b := obj, other
	if b.Base().ID() < a.Base().ID() {
		a, b = b, a
		dir = dir.Opposite()
	}
	key := pairKey{lo: a.Base().ID(), hi: b.Base().ID()}
	if _, ok := s.contacts[key]; ok {
		return
	}
	s.contacts[key] = Contact{A: a, B: b, Dir: dir}
}

// Dispatch delivers each contact to both participants. A contact is
// skipped once either side stopped being collidable or was removed.
func (s *CollisionSystem) Dispatch(ctx entity.Context, contacts []Contact) {
	for _, c := range contacts {
		if !live(c.A) || !live(c.B) {
			continue
		}
		c.A.Collision(ctx, c.B, c.Dir)
		if !c.B.Base().Removed() {
			c.B.Collision(ctx, c.A, c.Dir.Opposite())
		}
	}
}

func live(o entity.Object) bool {
	e := o.Base()
	return e.Collidable && !e.Removed()
}
