package ui

import (
	"image/color"

	cfg "github.com/automoto/herofield/config"
	"github.com/automoto/herofield/fonts"
	"github.com/automoto/herofield/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// LandingUI holds the ebitenui widgets below the hero block: the waitlist
// form, the token address panel and the feature list.
type LandingUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnSubmit func(email string) error
	OnCopy   func()

	emailInput  *widget.TextInput
	joinButton  *widget.Button
	statusLabel *widget.Label
	copyButton  *widget.Button

	scale float64
	top   float64

	headingFace text.Face
	bodyFace    text.Face
	smallFace   text.Face
	monoFace    text.Face
}

// NewLandingUI builds the page widgets. scale is device pixels per logical
// pixel and top is the device-pixel row where the widgets start. Fonts must
// be loaded at the same scale.
func NewLandingUI(scale, top float64, onSubmit func(string) error, onCopy func()) *LandingUI {
	lui := &LandingUI{
		OnSubmit: onSubmit,
		OnCopy:   onCopy,
		scale:    scale,
		top:      top,
	}

	lui.loadFonts()
	lui.buildUI()

	return lui
}

func (lui *LandingUI) loadFonts() {
	lui.headingFace = fonts.Heading.UIFace()
	lui.bodyFace = fonts.Body.UIFace()
	lui.smallFace = fonts.Small.UIFace()
	lui.monoFace = fonts.Mono.UIFace()
}

func (lui *LandingUI) px(v float64) int {
	return int(v * lui.scale)
}

func (lui *LandingUI) buildUI() {
	// Transparent root so the particle field shows through
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: int(lui.top), Left: lui.px(16), Right: lui.px(16), Bottom: lui.px(16)}
	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(lui.px(float64(cfg.Landing.SectionSpacing))),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	contentContainer.AddChild(lui.buildWaitlistForm())
	contentContainer.AddChild(lui.buildTokenPanel())
	contentContainer.AddChild(lui.buildFeatures())

	rootContainer.AddChild(contentContainer)

	lui.UI = &ebitenui.UI{Container: rootContainer}
}

func (lui *LandingUI) buildWaitlistForm() *widget.Container {
	form := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(lui.px(6)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(lui.px(8)),
		)),
	)

	lui.emailInput = widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(lui.px(320), lui.px(40))),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(cfg.Landing.InputColor.Opaque()),
			Disabled: image.NewNineSliceColor(cfg.Landing.PanelColor.Opaque()),
		}),
		widget.TextInputOpts.Face(&lui.bodyFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.Landing.TextColor.Opaque(),
			Disabled:      cfg.Landing.MutedColor.Opaque(),
			Caret:         cfg.Landing.AccentColor.Opaque(),
			DisabledCaret: cfg.Landing.MutedColor.Opaque(),
		}),
		widget.TextInputOpts.Placeholder(cfg.Landing.EmailPlaceholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(lui.px(10))),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			lui.submit(args.InputText)
		}),
	)
	row.AddChild(lui.emailInput)

	lui.joinButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(lui.px(180), lui.px(40))),
		widget.ButtonOpts.Image(lui.accentButtonImage()),
		widget.ButtonOpts.Text(cfg.Landing.JoinLabel, &lui.bodyFace, &widget.ButtonTextColor{
			Idle:     cfg.Landing.TextColor.Opaque(),
			Hover:    cfg.Landing.TextColor.Opaque(),
			Pressed:  cfg.Landing.TextColor.WithAlpha(0.8),
			Disabled: cfg.Landing.MutedColor.Opaque(),
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			lui.submit(lui.emailInput.GetText())
		}),
	)
	row.AddChild(lui.joinButton)
	form.AddChild(row)

	lui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &lui.smallFace, &widget.LabelColor{
			Idle: cfg.Landing.ErrorColor.Opaque(),
		}),
	)
	form.AddChild(lui.statusLabel)

	return form
}

func (lui *LandingUI) buildTokenPanel() *widget.Container {
	padding := widget.NewInsetsSimple(lui.px(20))
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Landing.PanelColor.WithAlpha(cfg.Landing.PanelAlpha))),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(padding),
			widget.RowLayoutOpts.Spacing(lui.px(10)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(lui.px(float64(cfg.Landing.PanelWidth)), 0),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)

	panel.AddChild(lui.label(cfg.Landing.TokenHeader, &lui.headingFace, cfg.Landing.TextColor.Opaque()))
	panel.AddChild(lui.label(cfg.Landing.TokenDescription, &lui.smallFace, cfg.Landing.MutedColor.Opaque()))

	addressBox := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Landing.PageColor.WithAlpha(cfg.Landing.PanelAlpha))),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(lui.px(10))),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Stretch: true}),
		),
	)
	addressBox.AddChild(lui.label(cfg.Landing.TokenAddress, &lui.monoFace, cfg.Landing.AccentColor.Opaque()))
	panel.AddChild(addressBox)

	lui.copyButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(lui.px(160), lui.px(36)),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionEnd}),
		),
		widget.ButtonOpts.Image(lui.accentButtonImage()),
		widget.ButtonOpts.Text(cfg.Landing.CopyLabel, &lui.smallFace, &widget.ButtonTextColor{
			Idle:     cfg.Landing.TextColor.Opaque(),
			Hover:    cfg.Landing.TextColor.Opaque(),
			Pressed:  cfg.Landing.TextColor.WithAlpha(0.8),
			Disabled: cfg.Landing.MutedColor.Opaque(),
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if lui.OnCopy != nil {
				lui.OnCopy()
			}
		}),
	)
	panel.AddChild(lui.copyButton)

	panel.AddChild(lui.label(cfg.Landing.TokenVerified, &lui.smallFace, cfg.Landing.AccentColor.Opaque()))

	return panel
}

func (lui *LandingUI) buildFeatures() *widget.Container {
	section := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(lui.px(8)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
	)

	section.AddChild(lui.label(cfg.Landing.FeaturesHeader, &lui.headingFace, cfg.Landing.TextColor.Opaque()))
	for _, feature := range cfg.Landing.Features {
		section.AddChild(lui.label("• "+feature, &lui.bodyFace, cfg.Landing.MutedColor.Opaque()))
	}

	return section
}

func (lui *LandingUI) label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: clr, Disabled: clr}),
	)
}

func (lui *LandingUI) accentButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(cfg.Landing.AccentColor.Opaque()),
		Hover:    image.NewNineSliceColor(cfg.DeepEmerald.Opaque()),
		Pressed:  image.NewNineSliceColor(cfg.DeepEmerald.WithAlpha(0.8)),
		Disabled: image.NewNineSliceColor(cfg.Landing.InputColor.Opaque()),
	}
}

func (lui *LandingUI) submit(email string) {
	if lui.OnSubmit == nil {
		return
	}
	if err := lui.OnSubmit(email); err == nil {
		lui.emailInput.SetText("")
	}
}

// Sync copies the landing state into the widget labels.
func (lui *LandingUI) Sync(state systems.LandingState) {
	if textWidget := lui.joinButton.Text(); textWidget != nil {
		textWidget.Label = systems.WaitlistButtonLabel(state.Waitlist)
	}
	if textWidget := lui.copyButton.Text(); textWidget != nil {
		textWidget.Label = systems.AddressButtonLabel(state.Address)
	}
	lui.statusLabel.Label = state.Waitlist.Status
}

// Typing reports whether the email input has keyboard focus.
func (lui *LandingUI) Typing() bool {
	return lui.emailInput.IsFocused()
}

// Email returns the current input text.
func (lui *LandingUI) Email() string {
	return lui.emailInput.GetText()
}

// SetEmail restores input text, for example after a rebuild.
func (lui *LandingUI) SetEmail(s string) {
	lui.emailInput.SetText(s)
}

// DrawAcknowledgements outlines the buttons whose acknowledgement is
// showing, at the toast's fade alpha.
func (lui *LandingUI) DrawAcknowledgements(screen *ebiten.Image, state systems.LandingState) {
	lui.outline(screen, lui.joinButton, state.Waitlist.Submitted.Alpha)
	lui.outline(screen, lui.copyButton, state.Address.Copied.Alpha)
}

func (lui *LandingUI) outline(screen *ebiten.Image, b *widget.Button, alpha float32) {
	if alpha <= 0 {
		return
	}
	r := b.GetWidget().Rect
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()),
		float32(2*lui.scale), cfg.Landing.TextColor.WithAlpha(float64(alpha)), true)
}
