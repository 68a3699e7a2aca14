package scenes

import (
	"image/color"

	"github.com/cbodonnell/tetris/client/fonts"
	"github.com/cbodonnell/tetris/client/objects"
	"github.com/cbodonnell/tetris/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

type MenuScene struct {
	*BaseScene

	onStart      func() error
	onToggleMute func() bool
	muted        bool
	ui           *ebitenui.UI
	startErr     string
}

type MenuSceneOptions struct {
	// OnStart is called when the start button is pressed.
	OnStart func() error
	// OnToggleMute is called when the sound button is pressed. It returns whether sound is now muted.
	OnToggleMute func() bool
	// Muted is the initial state of the sound button.
	Muted bool
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onStart:      opts.OnStart,
		onToggleMute: opts.OnToggleMute,
		muted:        opts.Muted,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

// SoundLabel is the text of the sound button.
func SoundLabel(muted bool) string {
	if muted {
		return "Sound: off"
	}
	return "Sound: on"
}

func (s *MenuScene) renderUI() {
	neutralButtonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}
	positiveButtonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 80, G: 170, B: 80, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 65, G: 135, B: 65, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 50, G: 100, B: 50, A: 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
	buttonPadding := widget.Insets{
		Left:   30,
		Right:  30,
		Top:    5,
		Bottom: 5,
	}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{
		Position: widget.RowLayoutPositionCenter,
		Stretch:  true,
	})

	fontFace := fonts.TTFNormalFont

	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    110,
				Left:   200,
				Right:  200,
				Bottom: 90,
			}))),
	)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("TETRIS", fonts.TTFLargeFont, color.White),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(centered),
	))

	startButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.Image(positiveButtonImage),
		widget.ButtonOpts.Text("Start", fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			s.start()
		}),
	)
	rootContainer.AddChild(startButton)

	soundButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.Image(neutralButtonImage),
		widget.ButtonOpts.Text(SoundLabel(s.muted), fontFace, buttonTextColor),
		widget.ButtonOpts.TextPadding(buttonPadding),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if s.onToggleMute != nil {
				s.muted = s.onToggleMute()
			}
			s.renderUI()
		}),
	)
	rootContainer.AddChild(soundButton)

	rootContainer.AddChild(widget.NewText(
		widget.TextOpts.Text("Press Enter to start", fonts.TTFSmallFont, objects.LabelColor),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(centered),
	))

	if s.startErr != "" {
		rootContainer.AddChild(widget.NewText(
			widget.TextOpts.Text(s.startErr, fontFace, color.NRGBA{R: 255, G: 0, B: 0, A: 255}),
			widget.TextOpts.WidgetOpts(centered),
		))
		s.startErr = ""
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

// start calls the start handler, keeping the menu up with a message if it fails.
func (s *MenuScene) start() {
	if s.onStart == nil {
		return
	}
	if err := s.onStart(); err != nil {
		log.Error("Failed to start game: %v", err)
		s.startErr = "Failed to start game. Please try again."
		s.renderUI()
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(objects.BackgroundColor)
	s.ui.Draw(screen)
	objects.DrawTree(s.Root, screen)
}
