package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/automoto/dragonfight/components"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const offerSlots = 3

type offerCard struct {
	name        *widget.Label
	description *widget.Label
	button      *widget.Button
}

// UpgradeUI is the between-phase picker offering permanent upgrades.
type UpgradeUI struct {
	UI *ebitenui.UI

	OnChoose func(index int)

	cards [offerSlots]offerCard

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewUpgradeUI(onChoose func(index int)) *UpgradeUI {
	ui := &UpgradeUI{OnChoose: onChoose}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *UpgradeUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 20}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (ui *UpgradeUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	for i := range ui.cards {
		row.AddChild(ui.buildCard(i))
	}
	rootContainer.AddChild(row)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *UpgradeUI) buildCard(index int) *widget.Container {
	card := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 70, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(10),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(220, 160)),
	)

	c := &ui.cards[index]
	c.name = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 215, 0, 255},
		}),
	)
	card.AddChild(c.name)

	c.description = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	card.AddChild(c.description)

	c.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 32)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(color.RGBA{80, 80, 120, 255}),
			Hover:    image.NewNineSliceColor(color.RGBA{110, 110, 160, 255}),
			Pressed:  image.NewNineSliceColor(color.RGBA{60, 60, 100, 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
		}),
		widget.ButtonOpts.Text(fmt.Sprintf("Choose [%d]", index+1), &ui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Disabled: color.RGBA{80, 80, 80, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnChoose != nil {
				ui.OnChoose(index)
			}
		}),
	)
	card.AddChild(c.button)

	return card
}

// SetOffers shows the upgrades on offer, disabling unused cards.
func (ui *UpgradeUI) SetOffers(offers []components.UpgradeType) {
	for i := range ui.cards {
		c := &ui.cards[i]
		if i >= len(offers) {
			c.name.Label = ""
			c.description.Label = ""
			c.button.GetWidget().Disabled = true
			continue
		}
		c.name.Label = offers[i].String()
		c.description.Label = offers[i].Description()
		c.button.GetWidget().Disabled = false
	}
}

func (ui *UpgradeUI) Update() {
	ui.UI.Update()
}

func (ui *UpgradeUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
