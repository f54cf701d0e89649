package ui

import (
	"bytes"
	"image/color"
	"log"
	"strings"

	cfg "github.com/automoto/pixelrun/config"
	"github.com/automoto/pixelrun/shared/messages"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ConnectRequest is what the player filled in on the connect screen.
type ConnectRequest struct {
	Address string
	Name    string
	Codec   messages.Codec
}

// ConnectUI is the relay connect screen: address, name and wire codec.
type ConnectUI struct {
	UI *ebitenui.UI

	OnConnect func(req ConnectRequest)
	OnGoBack  func()

	addressInput *widget.TextInput
	nameInput    *widget.TextInput
	codecBtn     *widget.Button
	statusLabel  *widget.Label
	connectBtn   *widget.Button
	codec        messages.Codec

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewConnectUI(codec messages.Codec, onConnect func(req ConnectRequest), onGoBack func()) *ConnectUI {
	if codec == nil {
		codec = messages.JSON
	}
	ui := &ConnectUI{
		OnConnect: onConnect,
		OnGoBack:  onGoBack,
		codec:     codec,
	}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *ConnectUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 18}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *ConnectUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	contentContainer.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PLAY ONLINE", &ui.titleFace, &widget.LabelColor{
			Idle: cfg.Menu.TitleColor,
		}),
	))

	contentContainer.AddChild(ui.buildFormPanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.buildButtons())
	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *ConnectUI) buildFormPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	ui.addressInput = ui.newTextInput(cfg.Network.DefaultRelayAddress)
	panel.AddChild(ui.labeledRow("Relay:", ui.addressInput))

	ui.nameInput = ui.newTextInput("player")
	panel.AddChild(ui.labeledRow("Name: ", ui.nameInput))

	ui.codecBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{70, 70, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(ui.codec.Name(), &ui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.toggleCodec()
		}),
	)
	panel.AddChild(ui.labeledRow("Codec:", ui.codecBtn))

	ui.connectBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 26)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
		}),
		widget.ButtonOpts.Text("Connect", &ui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{200, 255, 200, 255},
			Pressed:  color.RGBA{150, 200, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnConnect != nil {
				ui.OnConnect(ui.request())
			}
		}),
	)
	panel.AddChild(ui.connectBtn)

	return panel
}

func (ui *ConnectUI) labeledRow(label string, w widget.PreferredSizeLocateableWidget) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(w)
	return row
}

func (ui *ConnectUI) newTextInput(placeholder string) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(160, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
		}),
		widget.TextInputOpts.Face(&ui.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          color.RGBA{255, 255, 255, 255},
			Disabled:      color.RGBA{128, 128, 128, 255},
			Caret:         color.RGBA{255, 255, 255, 255},
			DisabledCaret: color.RGBA{128, 128, 128, 255},
		}),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
}

func (ui *ConnectUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	backButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(80, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Back", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnGoBack != nil {
				ui.OnGoBack()
			}
		}),
	)
	container.AddChild(backButton)

	return container
}

func (ui *ConnectUI) toggleCodec() {
	if ui.codec.Name() == messages.JSON.Name() {
		ui.codec = messages.Msgpack
	} else {
		ui.codec = messages.JSON
	}
	if textWidget := ui.codecBtn.Text(); textWidget != nil {
		textWidget.Label = ui.codec.Name()
	}
}

func (ui *ConnectUI) request() ConnectRequest {
	address := strings.TrimSpace(ui.addressInput.GetText())
	if address == "" {
		address = cfg.Network.DefaultRelayAddress
	}
	name := strings.TrimSpace(ui.nameInput.GetText())
	if name == "" {
		name = "player"
	}
	return ConnectRequest{Address: address, Name: name, Codec: ui.codec}
}

func (ui *ConnectUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *ConnectUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

func (ui *ConnectUI) Update() {
	ui.UI.Update()
}
