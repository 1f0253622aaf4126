package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Sprites map[string]SpriteConfig `json:"sprites"`
	Knight  KnightVisualConfig      `json:"knight"`
	Enemy   EnemyVisualConfig       `json:"enemy"`
	Block   BlockVisualConfig       `json:"block"`
	Audio   AudioConfig             `json:"audio"`
}

// SpriteConfig describes one animated sprite. Color is used as a flat fill
// ("#rrggbb") when no sheet is available.
type SpriteConfig struct {
	Sheet       string  `json:"sheet,omitempty"`
	FrameWidth  int     `json:"frameWidth,omitempty"`
	FrameHeight int     `json:"frameHeight,omitempty"`
	Row         int     `json:"row,omitempty"`
	Frames      int     `json:"frames"`
	FPS         float64 `json:"fps"`
	Color       string  `json:"color"`
}

type KnightVisualConfig struct {
	// Sprites maps knight states (stand, walk, skid, jump, die, attack) to
	// sprite ids.
	Sprites    map[string]string `json:"sprites"`
	JumpSound  string            `json:"jumpSound"`
	DeathSound string            `json:"deathSound"`
}

type EnemyVisualConfig struct {
	Sprite     string `json:"sprite"`
	SmashSound string `json:"smashSound"`
}

type BlockVisualConfig struct {
	Sprite string `json:"sprite"`
}

// AudioConfig maps sound and music ids to WAV files.
type AudioConfig struct {
	SampleRate int               `json:"sampleRate"`
	Sounds     map[string]string `json:"sounds"`
	Music      map[string]string `json:"music"`
}

// DefaultEntities returns the stock sprite and sound table.
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Sprites: map[string]SpriteConfig{
			"knight_stand": {Frames: 1, Color: "#3b6fd8"},
			"knight_walk":  {Frames: 4, FPS: 10, Color: "#3b6fd8"},
			"knight_skid":  {Frames: 1, Color: "#6f8fe0"},
			"knight_jump":  {Frames: 1, Color: "#5a8cff"},
			"mario_die":    {Frames: 1, Color: "#d83b3b"},
			"mario_attack": {Frames: 3, FPS: 12, Color: "#f2c94c"},
			"enemy_walk":   {Frames: 2, FPS: 6, Color: "#8b5a2b"},
			"block":        {Frames: 1, Color: "#c98b2b"},
			"terrain":      {Frames: 1, Color: "#4a7a3a"},
			"sky_bg":       {Frames: 1, Color: "#5c94fc"},
			"castle_bg":    {Frames: 1, Color: "#7a86b8a0"},
			"trees1_bg":    {Frames: 1, Color: "#3c8a4c"},
			"trees2_bg":    {Frames: 1, Color: "#2f6e3b"},
		},
		Knight: KnightVisualConfig{
			Sprites: map[string]string{
				"stand":  "knight_stand",
				"walk":   "knight_walk",
				"skid":   "knight_skid",
				"jump":   "knight_jump",
				"die":    "mario_die",
				"attack": "mario_attack",
			},
			JumpSound:  "jump-small",
			DeathSound: "death",
		},
		Enemy: EnemyVisualConfig{Sprite: "enemy_walk", SmashSound: "kick"},
		Block: BlockVisualConfig{Sprite: "block"},
		Audio: AudioConfig{
			SampleRate: 44100,
			Sounds:     map[string]string{},
			Music:      map[string]string{},
		},
	}
}
