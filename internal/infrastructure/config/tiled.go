package config

import (
	"fmt"
	"io/fs"
	"math"

	"github.com/lafriks/go-tiled"
)

// LoadTiledLevel converts a Tiled map into a level. Each object group is a
// category named after the group; rectangles, rotated rectangles and
// polylines map to rect, rotRect and multiline objects. Pixel coordinates
// are divided by the map tile width.
func LoadTiledLevel(fsys fs.FS, path string) (*LevelConfig, error) {
	m, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("failed to load tiled map %s: %w", path, err)
	}

	unit := float64(m.TileWidth)
	if unit <= 0 {
		unit = 1
	}
	lvl := &LevelConfig{
		Name: path,
		Size: SizeConfig{
			Width:  float64(m.Width*m.TileWidth) / unit,
			Height: float64(m.Height*m.TileHeight) / unit,
		},
	}

	index := make(map[string]int)
	for _, group := range m.ObjectGroups {
		cat, ok := index[group.Name]
		if !ok {
			cat = len(lvl.Categories)
			index[group.Name] = cat
			lvl.Categories = append(lvl.Categories, group.Name)
		}
		for _, o := range group.Objects {
			lvl.Objects = append(lvl.Objects, tiledObject(cat, o, unit))
		}
	}
	return lvl, nil
}

func tiledObject(cat int, o *tiled.Object, unit float64) ObjectConfig {
	obj := ObjectConfig{Category: cat, Name: o.Name}
	switch {
	case len(o.PolyLines) > 0:
		for _, pl := range o.PolyLines {
			if pl.Points == nil {
				continue
			}
			for _, p := range *pl.Points {
				obj.Multiline = append(obj.Multiline, PointConfig{
					X: (o.X + p.X) / unit,
					Y: (o.Y + p.Y) / unit,
				})
			}
		}
	case o.Rotation != 0:
		// Tiled rotates clockwise around the top-left corner.
		rad := o.Rotation * math.Pi / 180
		hw, hh := o.Width/2, o.Height/2
		cx := o.X + hw*math.Cos(rad) - hh*math.Sin(rad)
		cy := o.Y + hw*math.Sin(rad) + hh*math.Cos(rad)
		obj.RotRect = &RotRectConfig{
			CX:     cx / unit,
			CY:     cy / unit,
			Width:  o.Width / unit,
			Height: o.Height / unit,
			Angle:  o.Rotation,
		}
	default:
		obj.Rect = &RectConfig{
			X:      o.X / unit,
			Y:      o.Y / unit,
			Width:  o.Width / unit,
			Height: o.Height / unit,
		}
	}
	return obj
}
