package system

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// BroadPhase narrows down which colliders a mover may touch. Candidates are
// returned in id order so every implementation resolves identically.
type BroadPhase interface {
	// Sync registers the current set of objects, in id order.
	Sync(objs []entity.Object)
	// Moved tells the broad phase that obj changed position.
	Moved(obj entity.Object)
	// Candidates returns the collidable objects that may overlap area.
	Candidates(obj entity.Object, area geom.Rect) []entity.Object
}

// Pairwise tests every mover against every collider.
type Pairwise struct {
	objs []entity.Object
}

// NewPairwise creates the exhaustive broad phase.
func NewPairwise() *Pairwise {
	return &Pairwise{}
}

func (p *Pairwise) Sync(objs []entity.Object) { p.objs = objs }

func (p *Pairwise) Moved(entity.Object) {}

func (p *Pairwise) Candidates(obj entity.Object, _ geom.Rect) []entity.Object {
	out := make([]entity.Object, 0, len(p.objs))
	for _, o := range p.objs {
		if o != obj && o.Base().Collidable && !o.Base().Removed() {
			out = append(out, o)
		}
	}
	return out
}

// gridPad widens every proxy, in space units, so that resting contacts and
// the ground probe stay inside shared cells.
const gridPad = 2

// Grid buckets colliders into a resolv cell space. Objects that reach
// outside the space are kept on a side list and tested against everything.
type Grid struct {
	space   *resolv.Space
	scale   float64
	origin  geom.Vec2
	width   float64
	height  float64
	proxies map[entity.EntityID]*resolv.Object
	outside map[entity.EntityID]entity.Object
	objs    []entity.Object
	seen    map[entity.EntityID]bool
}

// NewGrid creates a grid covering bounds with square cells cellSize world
// units wide. scale converts world units into the integer space units used
// by resolv.
func NewGrid(bounds geom.Rect, cellSize, scale float64) *Grid {
	if scale <= 0 {
		scale = 16
	}
	cell := int(math.Max(1, math.Round(cellSize*scale)))
	w := int(math.Ceil(bounds.Width()*scale)) + 2*cell
	h := int(math.Ceil(bounds.Height()*scale)) + 2*cell
	origin := bounds.Min.Sub(geom.V(float64(cell), float64(cell)).Mul(1 / scale))

	return &Grid{
		space:   resolv.NewSpace(w, h, cell, cell),
		scale:   scale,
		origin:  origin,
		width:   float64(w),
		height:  float64(h),
		proxies: make(map[entity.EntityID]*resolv.Object),
		outside: make(map[entity.EntityID]entity.Object),
		seen:    make(map[entity.EntityID]bool),
	}
}

func (g *Grid) Sync(objs []entity.Object) {
	g.objs = objs
	for id := range g.seen {
		delete(g.seen, id)
	}
	for _, o := range objs {
		e := o.Base()
		if !e.Collidable || e.Removed() {
			continue
		}
		g.seen[e.ID()] = true
		g.place(o)
	}
	for id, p := range g.proxies {
		if !g.seen[id] {
			g.space.Remove(p)
			delete(g.proxies, id)
		}
	}
	for id := range g.outside {
		if !g.seen[id] {
			delete(g.outside, id)
		}
	}
}

func (g *Grid) Moved(obj entity.Object) {
	if _, ok := g.proxies[obj.Base().ID()]; ok {
		g.place(obj)
	}
}

func (g *Grid) Candidates(obj entity.Object, area geom.Rect) []entity.Object {
	x, y, w, h := g.toSpace(area)
	if !g.inside(x, y, w, h) {
		return NewPairwiseFrom(g.objs).Candidates(obj, area)
	}

	probe := resolv.NewObject(x, y, w, h)
	probe.SetShape(resolv.NewRectangle(0, 0, w, h))
	g.space.Add(probe)
	defer g.space.Remove(probe)

	found := make(map[entity.EntityID]entity.Object)
	if c := probe.Check(0, 0); c != nil {
		for _, ro := range c.Objects {
			other, ok := ro.Data.(entity.Object)
			if !ok || other == obj {
				continue
			}
			found[other.Base().ID()] = other
		}
	}
	for id, other := range g.outside {
		if other != obj {
			found[id] = other
		}
	}

	out := make([]entity.Object, 0, len(found))
	for _, o := range found {
		if o.Base().Collidable && !o.Base().Removed() {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Base().ID() < out[j].Base().ID() })
	return out
}

// NewPairwiseFrom creates a pairwise broad phase over objs.
func NewPairwiseFrom(objs []entity.Object) *Pairwise {
	return &Pairwise{objs: objs}
}

func (g *Grid) place(o entity.Object) {
	e := o.Base()
	x, y, w, h := g.toSpace(e.Bounds())
	if !g.inside(x, y, w, h) {
		if p, ok := g.proxies[e.ID()]; ok {
			g.space.Remove(p)
			delete(g.proxies, e.ID())
		}
		g.outside[e.ID()] = o
		return
	}
	delete(g.outside, e.ID())

	p, ok := g.proxies[e.ID()]
	if !ok {
		p = resolv.NewObject(x, y, w, h)
		p.SetShape(resolv.NewRectangle(0, 0, w, h))
		p.Data = o
		g.proxies[e.ID()] = p
		g.space.Add(p)
		return
	}
	if p.X == x && p.Y == y && p.W == w && p.H == h {
		return
	}
	p.X, p.Y, p.W, p.H = x, y, w, h
	p.SetShape(resolv.NewRectangle(0, 0, w, h))
	p.Update()
}

func (g *Grid) toSpace(r geom.Rect) (x, y, w, h float64) {
	x = math.Floor((r.Left()-g.origin.X())*g.scale) - gridPad
	y = math.Floor((r.Top()-g.origin.Y())*g.scale) - gridPad
	w = math.Ceil(r.Width()*g.scale) + 2*gridPad + 1
	h = math.Ceil(r.Height()*g.scale) + 2*gridPad + 1
	return x, y, w, h
}

func (g *Grid) inside(x, y, w, h float64) bool {
	return x >= 0 && y >= 0 && x+w < g.width && y+h < g.height
}
