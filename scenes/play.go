package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/stardive/components"
	cfg "github.com/automoto/stardive/config"
	"github.com/automoto/stardive/engine"
	"github.com/automoto/stardive/loop"
	"github.com/automoto/stardive/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayScene runs the game world behind the input/timing core: the input
// bridge feeds the normalizer, the scheduler pulls fixed steps out of the
// frame queue, and the world consumes the discrete protocol through its
// boundary.
type PlayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger

	boundary  *systems.WorldBoundary
	bridge    *systems.InputBridge
	scheduler *loop.Scheduler
	clock     *loop.SystemClock
	frames    *loop.FrameQueue
	store     engine.Store

	once sync.Once
}

// NewPlayScene creates a new play scene
func NewPlayScene(sc SceneChanger) *PlayScene {
	return &PlayScene{sceneChanger: sc}
}

func (ps *PlayScene) Update() {
	ps.once.Do(ps.configure)

	// Raw events first, in host delivery order, then the frame callback.
	ps.bridge.Pump()
	ps.frames.RunPending(ps.clock.NowMillis())

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.finish()
	}
}

func (ps *PlayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlayScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	// Audio system runs first so queued SFX from the same tick play promptly
	e.AddSystem(systems.UpdateAudio)

	// Pad edges must be derived before any system reads the pad
	e.AddSystem(systems.UpdatePad)
	e.AddSystem(systems.UpdateShip)
	e.AddSystem(systems.UpdateShots)
	e.AddSystem(systems.UpdateStars)
	e.AddSystem(systems.UpdateStickView)

	e.AddRenderer(cfg.Default, systems.DrawStars)
	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawHUD)

	systems.SpawnWorld(e)

	ps.store = systems.SaveStore{}
	if entry, ok := components.Score.First(e.World); ok {
		components.Score.Get(entry).HiScore = systems.LoadHiScore(ps.store)
	}

	ps.ecs = e
	ps.boundary = systems.NewWorldBoundary(e)
	ps.bridge = systems.NewInputBridge(ps.boundary, systems.NewStickView(e))
	ps.clock = loop.NewSystemClock()
	ps.frames = &loop.FrameQueue{}
	ps.scheduler = loop.New(ps.boundary, ps.frames,
		cfg.Timing.StepMs, cfg.Timing.MaxCatchUp, cfg.Timing.MarginMs)
	ps.scheduler.Start(ps.clock.NowMillis())
}

func (ps *PlayScene) finish() {
	if entry, ok := components.Score.First(ps.ecs.World); ok {
		score := components.Score.Get(entry)
		systems.SaveHiScore(ps.store, score.Score)
	}
	ps.sceneChanger.ChangeScene(NewTitleScene(ps.sceneChanger))
}
