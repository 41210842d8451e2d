package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the cover screen
type TitleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart func()

	hiScoreLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
}

// NewTitleUI creates the cover screen UI with a start button and the
// persisted high score.
func NewTitleUI(hiScore int, onStart func()) *TitleUI {
	tui := &TitleUI{
		OnStart: onStart,
	}

	tui.loadFonts()
	tui.buildUI(hiScore)

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   24,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (tui *TitleUI) buildUI(hiScore int) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("STARDIVE", &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{80, 200, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	tui.hiScoreLabel = widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("HI SCORE %06d", hiScore), &tui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 80, 80, 255},
		}),
	)
	contentContainer.AddChild(tui.hiScoreLabel)

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(110, 26),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text("START", &tui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if tui.OnStart != nil {
				tui.OnStart()
			}
		}),
	)
	contentContainer.AddChild(startButton)

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetHiScore refreshes the high score label.
func (tui *TitleUI) SetHiScore(hiScore int) {
	tui.hiScoreLabel.Label = fmt.Sprintf("HI SCORE %06d", hiScore)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 60, 100, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 80, 130, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 45, 80, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}
