package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Simulation SimulationConfig `json:"simulation"`
	Collision  CollisionConfig  `json:"collision"`
	Knight     KnightConfig     `json:"knight"`
	Enemy      EnemyConfig      `json:"enemy"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
	// PixelsPerUnit converts world units into screen pixels.
	PixelsPerUnit int `json:"pixelsPerUnit"`
}

type SimulationConfig struct {
	// BroadPhase is "pairwise" or "grid".
	BroadPhase string  `json:"broadPhase"`
	GridCell   float64 `json:"gridCell"`
	GridScale  float64 `json:"gridScale"`
}

type CollisionConfig struct {
	MaxIterations   int     `json:"maxIterations"`
	GroundProbe     float64 `json:"groundProbe"`
	MaxSlopeDegrees float64 `json:"maxSlopeDegrees"`
}

// KnightConfig holds the player movement constants, in world units and
// seconds.
type KnightConfig struct {
	OffsetX float64 `json:"offsetX"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`

	WalkVelMax    float64 `json:"walkVelMax"`
	WalkMoveForce float64 `json:"walkMoveForce"`
	RunVelMax     float64 `json:"runVelMax"`
	RunMoveForce  float64 `json:"runMoveForce"`
	StopForce     float64 `json:"stopForce"`
	SkidForce     float64 `json:"skidForce"`
	Gravity       float64 `json:"gravity"`
	MaxFallSpeed  float64 `json:"maxFallSpeed"`

	Jump  JumpConfig  `json:"jump"`
	Death DeathConfig `json:"death"`

	AttackDuration float64 `json:"attackDuration"`
}

type JumpConfig struct {
	Impulse         float64 `json:"impulse"`
	SpeedThreshold  float64 `json:"speedThreshold"`
	GravitySlow     float64 `json:"gravitySlow"`
	GravityFast     float64 `json:"gravityFast"`
	FastFallGravity float64 `json:"fastFallGravity"`
}

type DeathConfig struct {
	DyingDelay float64 `json:"dyingDelay"`
	DeadDelay  float64 `json:"deadDelay"`
	Gravity    float64 `json:"gravity"`
}

type EnemyConfig struct {
	WalkVelMax       float64 `json:"walkVelMax"`
	WalkMoveForce    float64 `json:"walkMoveForce"`
	Gravity          float64 `json:"gravity"`
	MaxFallSpeed     float64 `json:"maxFallSpeed"`
	Stomp            bool    `json:"stomp"`
	StompBounce      float64 `json:"stompBounce"`
	SmashHop         float64 `json:"smashHop"`
	DeathGravity     float64 `json:"deathGravity"`
	SmashRemoveDelay float64 `json:"smashRemoveDelay"`
}

// DefaultPhysics returns the stock physics configuration.
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:   480,
			ScreenHeight:  270,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 16,
		},
		Simulation: SimulationConfig{
			BroadPhase: "pairwise",
			GridCell:   4,
			GridScale:  16,
		},
		Collision: CollisionConfig{
			MaxIterations:   4,
			GroundProbe:     0.05,
			MaxSlopeDegrees: 45,
		},
		Knight: KnightConfig{
			OffsetX:       1.0/16 + 0.2,
			Width:         1.8,
			Height:        2 - 1.0/16,
			WalkVelMax:    6,
			WalkMoveForce: 8,
			RunVelMax:     10,
			RunMoveForce:  13,
			StopForce:     10,
			SkidForce:     25,
			Gravity:       25,
			MaxFallSpeed:  20,
			Jump: JumpConfig{
				Impulse:         16,
				SpeedThreshold:  9,
				GravitySlow:     25,
				GravityFast:     21,
				FastFallGravity: 100,
			},
			Death: DeathConfig{
				DyingDelay: 0.5,
				DeadDelay:  3,
				Gravity:    25,
			},
			AttackDuration: 0.3,
		},
		Enemy: EnemyConfig{
			WalkVelMax:       2,
			WalkMoveForce:    20,
			Gravity:          25,
			MaxFallSpeed:     20,
			Stomp:            true,
			StompBounce:      10,
			SmashHop:         8,
			DeathGravity:     25,
			SmashRemoveDelay: 2,
		},
	}
}
