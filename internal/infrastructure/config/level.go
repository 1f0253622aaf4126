package config

// LevelConfig is the root config for level JSON files. Coordinates are in
// world units.
type LevelConfig struct {
	Name  string     `json:"name"`
	Size  SizeConfig `json:"size"`
	Music string     `json:"music,omitempty"`
	// Background is a sprite id drawn behind everything, fixed to the screen.
	Background string           `json:"background,omitempty"`
	Parallax   []ParallaxConfig `json:"parallax,omitempty"`
	// Spawn overrides the knight spawn point; a "Spawn" object does too.
	Spawn      *PointConfig   `json:"spawn,omitempty"`
	Categories []string       `json:"categories"`
	Objects    []ObjectConfig `json:"objects"`
}

// ParallaxConfig is a scenery band scrolling at Factor times the camera
// speed. Top and Height are in world units.
type ParallaxConfig struct {
	Sprite string  `json:"sprite"`
	Factor float64 `json:"factor"`
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ObjectConfig is one level object. Exactly one of Rect, RotRect and
// Multiline is expected.
type ObjectConfig struct {
	Category  int            `json:"category"`
	Name      string         `json:"name,omitempty"`
	Rect      *RectConfig    `json:"rect,omitempty"`
	RotRect   *RotRectConfig `json:"rotRect,omitempty"`
	Multiline []PointConfig  `json:"multiline,omitempty"`
}

type RectConfig struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	YUp    bool    `json:"yUp,omitempty"`
}

type RotRectConfig struct {
	CX     float64 `json:"cx"`
	CY     float64 `json:"cy"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Angle in degrees.
	Angle float64 `json:"angle"`
	YUp   bool    `json:"yUp,omitempty"`
}

type PointConfig struct {
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	YUp bool    `json:"yUp,omitempty"`
}

// Category returns the category name of obj, or "" when out of range.
func (l *LevelConfig) Category(obj ObjectConfig) string {
	if obj.Category < 0 || obj.Category >= len(l.Categories) {
		return ""
	}
	return l.Categories[obj.Category]
}
