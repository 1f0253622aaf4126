package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Entities *EntitiesConfig
}

// Default returns the built-in configuration.
func Default() *GameConfig {
	return &GameConfig{
		Physics:  DefaultPhysics(),
		Entities: DefaultEntities(),
	}
}

// Loader loads game configuration from JSON files using fs.FS interface.
// Fields missing from a file keep their default values.
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// FS returns the filesystem the loader reads from.
func (l *Loader) FS() fs.FS {
	return l.fsys
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	cfg := DefaultPhysics()
	if err := l.readJSON("physics.json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEntities loads entities.json
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	cfg := DefaultEntities()
	if err := l.readJSON("entities.json", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLevel loads levels/<name>.json, or levels/<name> when name carries a
// .tmx extension.
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	if strings.HasSuffix(name, ".tmx") {
		return LoadTiledLevel(l.fsys, path.Join("levels", name))
	}

	var cfg LevelConfig
	if err := l.readJSON(path.Join("levels", name+".json"), &cfg); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (physics, entities)
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Entities: entities,
	}, nil
}

func (l *Loader) readJSON(name string, v interface{}) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}
