package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/stardive/config"
	"github.com/automoto/stardive/fonts"
	"github.com/automoto/stardive/systems"
	"github.com/automoto/stardive/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene is the cover screen: title, persisted high score, start button.
type TitleScene struct {
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI

	// blinking "push key" prompt
	blink       *gween.Sequence
	promptAlpha float64

	started bool
	once    sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)

	ts.titleUI.UI.Update()

	alpha, _, seqDone := ts.blink.Update(1.0 / 60.0)
	ts.promptAlpha = float64(alpha)
	if seqDone {
		ts.blink.Reset()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ts.start()
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if ts.titleUI == nil {
		return
	}
	ts.titleUI.UI.Draw(screen)

	prompt := "PUSH SPACE KEY"
	if systems.TouchCapable() {
		prompt = "TAP START"
	}
	face := fonts.Arcade.Get()
	bounds := text.BoundString(face, prompt)
	x := (cfg.C.Width - bounds.Dx()) / 2
	y := cfg.C.Height - 32
	a := uint8(ts.promptAlpha * 255)
	text.Draw(screen, prompt, face, x, y, color.RGBA{a, a, a, a})
}

func (ts *TitleScene) configure() {
	systems.PreloadAllSFX()
	systems.PlayMusic(cfg.Sound.TitleMusic)

	hiScore := systems.LoadHiScore(systems.SaveStore{})
	ts.titleUI = ui.NewTitleUI(hiScore, ts.start)

	ts.blink = gween.NewSequence(
		gween.New(1, 0.2, 0.7, ease.InOutQuad),
		gween.New(0.2, 1, 0.7, ease.InOutQuad),
	)
}

func (ts *TitleScene) start() {
	if ts.started {
		return
	}
	ts.started = true

	systems.PlaySFX(cfg.SoundMenuSelect)
	systems.StopMusic()
	ts.sceneChanger.ChangeScene(NewPlayScene(ts.sceneChanger))
}
