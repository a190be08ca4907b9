package ui

import (
	"bytes"
	"fmt"

	cfg "github.com/automoto/fireworks/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// optionRow is one cycling setting of the panel
type optionRow struct {
	title string
	value func(o *cfg.Options) string
	cycle func(o *cfg.Options)
	label *widget.Label
}

// OptionsUI holds the ebitenui interface for the options panel
type OptionsUI struct {
	UI      *ebitenui.UI
	Options *cfg.Options

	// Callbacks
	OnStart func()

	rows []*optionRow

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	initialized bool
}

// NewOptionsUI creates the options panel editing opts in place
func NewOptionsUI(opts *cfg.Options, onStart func()) (*OptionsUI, error) {
	oui := &OptionsUI{
		Options: opts,
		OnStart: onStart,
	}

	if err := oui.loadFonts(); err != nil {
		return nil, err
	}
	oui.rows = []*optionRow{
		{
			title: "Quality",
			value: func(o *cfg.Options) string { return o.Quality.String() },
			cycle: (*cfg.Options).CycleQuality,
		},
		{
			title: "Shell Type",
			value: func(o *cfg.Options) string { return string(o.ShellType) },
			cycle: (*cfg.Options).CycleShellType,
		},
		{
			title: "Shell Size",
			value: func(o *cfg.Options) string { return cfg.ShellSizeName(o.ShellSize) },
			cycle: (*cfg.Options).CycleShellSize,
		},
		{
			title: "Auto Launch",
			value: func(o *cfg.Options) string { return cfg.OnOff(o.AutoLaunch) },
			cycle: func(o *cfg.Options) { o.AutoLaunch = !o.AutoLaunch },
		},
		{
			title: "Scale",
			value: func(o *cfg.Options) string { return fmt.Sprintf("%.2fx", o.ScaleFactor) },
			cycle: (*cfg.Options).CycleScaleFactor,
		},
		{
			title: "Sky Lighting",
			value: func(o *cfg.Options) string { return cfg.SkyLightingName(o.SkyLighting) },
			cycle: (*cfg.Options).CycleSkyLighting,
		},
		{
			title: "Speed",
			value: func(o *cfg.Options) string { return fmt.Sprintf("%.1fx", o.SimSpeed) },
			cycle: (*cfg.Options).CycleSimSpeed,
		},
		{
			title: "HUD",
			value: func(o *cfg.Options) string { return cfg.OnOff(o.ShowHUD) },
			cycle: func(o *cfg.Options) { o.ShowHUD = !o.ShowHUD },
		},
	}
	oui.buildUI()

	return oui, nil
}

func (oui *OptionsUI) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load options font: %w", err)
	}

	oui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.TitleFontSize,
	}
	oui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.PanelFontSize,
	}
	oui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   cfg.HUD.PanelSmallSize,
	}
	return nil
}

func (oui *OptionsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.OptionsPanel.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("FIREWORKS", &oui.titleFace, &widget.LabelColor{
			Idle: cfg.OptionsPanel.TitleColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	for _, row := range oui.rows {
		contentContainer.AddChild(oui.buildRow(row))
	}

	contentContainer.AddChild(oui.buildStartButton())

	hint := widget.NewLabel(
		widget.LabelOpts.Text("Click to launch   Space pause   [ ] speed   A auto   H HUD   Esc back", &oui.smallFace, &widget.LabelColor{
			Idle: cfg.OptionsPanel.LabelColor,
		}),
	)
	contentContainer.AddChild(hint)

	rootContainer.AddChild(contentContainer)

	oui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (oui *OptionsUI) buildRow(row *optionRow) *widget.Container {
	padding := widget.Insets{Top: 3, Bottom: 3, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.OptionsPanel.RowColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(row.title+":", &oui.normalFace, &widget.LabelColor{
			Idle: cfg.OptionsPanel.LabelColor,
		}),
	)
	container.AddChild(titleLabel)

	row.label = widget.NewLabel(
		widget.LabelOpts.Text(row.value(oui.Options), &oui.normalFace, &widget.LabelColor{
			Idle: cfg.OptionsPanel.ValueColor,
		}),
	)
	container.AddChild(row.label)

	r := row // Capture for closure
	changeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(70, 22)),
		widget.ButtonOpts.Image(oui.buttonImage()),
		widget.ButtonOpts.Text("Change", &oui.smallFace, &widget.ButtonTextColor{
			Idle:    cfg.OptionsPanel.LabelColor,
			Hover:   cfg.OptionsPanel.ValueColor,
			Pressed: cfg.OptionsPanel.LabelColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			r.cycle(oui.Options)
			oui.UpdateUI()
		}),
	)
	container.AddChild(changeButton)

	return container
}

func (oui *OptionsUI) buildStartButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 32)),
		widget.ButtonOpts.Image(oui.startButtonImage()),
		widget.ButtonOpts.Text("START SHOW", &oui.normalFace, &widget.ButtonTextColor{
			Idle:    cfg.OptionsPanel.LabelColor,
			Hover:   cfg.OptionsPanel.ValueColor,
			Pressed: cfg.OptionsPanel.LabelColor,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if oui.OnStart != nil {
				oui.OnStart()
			}
		}),
	)
}

func (oui *OptionsUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.OptionsPanel.ButtonIdle),
		Hover:   image.NewNineSliceColor(cfg.OptionsPanel.ButtonHover),
		Pressed: image.NewNineSliceColor(cfg.OptionsPanel.ButtonPressed),
	}
}

func (oui *OptionsUI) startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(cfg.OptionsPanel.StartIdle),
		Hover:   image.NewNineSliceColor(cfg.OptionsPanel.StartHover),
		Pressed: image.NewNineSliceColor(cfg.OptionsPanel.StartPressed),
	}
}

// UpdateUI refreshes every value label from the options
func (oui *OptionsUI) UpdateUI() {
	for _, row := range oui.rows {
		if row.label != nil {
			row.label.Label = row.value(oui.Options)
		}
	}
}

// Update calls the UI's Update method
func (oui *OptionsUI) Update() {
	oui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !oui.initialized {
		oui.initialized = true
		oui.UpdateUI()
	}
}
