package main

import (
	"errors"
	"image"
	"image/color"
	"path/filepath"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"git.sr.ht/~whereswaldon/chartcore/backend"
	"git.sr.ht/~whereswaldon/chartcore/chart"
	"git.sr.ht/~whereswaldon/chartcore/coords"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var openIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.FileFolderOpen)
	return icon
}()

var fitIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionAspectRatio)
	return icon
}()

var zoomInIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionZoomIn)
	return icon
}()

var zoomOutIcon = func() *widget.Icon {
	icon, _ := widget.NewIcon(icons.ActionZoomOut)
	return icon
}()

// Options configure how loaded data is charted.
type Options struct {
	Load        backend.LoadOptions
	LogY        bool
	Orientation coords.Orientation
}

// UI is responsible for holding the state of and drawing the top-level UI.
type UI struct {
	ws   backend.WindowState
	expl *explorer.Explorer
	opts Options

	chart *chart.Chart
	view  *ChartView

	openBtn    widget.Clickable
	fitBtn     widget.Clickable
	zoomInBtn  widget.Clickable
	zoomOutBtn widget.Clickable
	logY       widget.Bool
	vertical   widget.Bool
	opening    chan error
	errMsg     string

	th        *material.Theme
	snapshots *stream.Stream[backend.Snapshot]
	snapshot  backend.Snapshot
}

func NewUI(ws backend.WindowState, expl *explorer.Explorer, opts Options) *UI {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	c := chart.New()
	c.SetOrientation(opts.Orientation)
	ui := &UI{
		ws:        ws,
		th:        th,
		expl:      expl,
		opts:      opts,
		chart:     c,
		view:      NewChartView(c),
		logY:      widget.Bool{Value: opts.LogY},
		vertical:  widget.Bool{Value: opts.Orientation == coords.Vertical},
		snapshots: stream.New(ws.Controller, ws.Bundle.Datasource.Stream),
	}
	return ui
}

func (ui *UI) Loaded() bool {
	return len(ui.chart.AllSeries()) > 0
}

// Update the state of the UI.
func (ui *UI) Update(gtx C) {
	if snap, ok := ui.snapshots.ReadNew(gtx); ok {
		ui.load(snap)
	}
	select {
	case err := <-ui.opening:
		ui.opening = nil
		if err != nil && !errors.Is(err, explorer.ErrUserDecline) {
			ui.errMsg = err.Error()
		}
	default:
	}
	if ui.openBtn.Clicked(gtx) && ui.opening == nil {
		ui.opening = make(chan error, 1)
		go func(done chan<- error) {
			done <- ui.ws.Bundle.Datasource.LoadFromFile(ui.expl)
			ui.ws.Window.Invalidate()
		}(ui.opening)
	}
	if ui.fitBtn.Clicked(gtx) {
		ui.view.AutoScale()
	}
	if ui.zoomInBtn.Clicked(gtx) {
		ui.view.ZoomIn()
	}
	if ui.zoomOutBtn.Clicked(gtx) {
		ui.view.ZoomOut()
	}
	if ui.logY.Update(gtx) {
		ui.opts.LogY = ui.logY.Value
		ui.applyScale()
	}
	if ui.vertical.Update(gtx) {
		ui.opts.Orientation = coords.Horizontal
		if ui.vertical.Value {
			ui.opts.Orientation = coords.Vertical
		}
		ui.chart.SetOrientation(ui.opts.Orientation)
	}
}

func (ui *UI) load(snap backend.Snapshot) {
	ui.snapshot = snap
	if snap.Err != nil {
		ui.errMsg = snap.Err.Error()
		return
	}
	ui.errMsg = ""
	if err := backend.LoadInto(ui.chart, snap.Table, ui.opts.Load); err != nil {
		ui.errMsg = err.Error()
	}
	ui.applyScale()
	if ui.view.Follow.Value {
		ui.view.AutoScale()
	}
}

// applyScale switches the first Y axis between linear and log scale.
func (ui *UI) applyScale() {
	scale := axis.Linear
	if ui.opts.LogY {
		scale = axis.Log
	}
	r, err := ui.chart.Range(axis.Y, 0)
	if err != nil || r.Scale == scale {
		return
	}
	if err := ui.chart.SetScaleAndFit(axis.Y, 0, scale); err != nil {
		ui.errMsg = err.Error()
	}
}

func (ui *UI) layoutToolbar(gtx C) D {
	button := func(btn *widget.Clickable, icon *widget.Icon, description string) layout.FlexChild {
		return layout.Rigid(func(gtx C) D {
			b := material.IconButton(ui.th, btn, icon, description)
			b.Size = unit.Dp(20)
			b.Inset = layout.UniformInset(6)
			return layout.UniformInset(2).Layout(gtx, b.Layout)
		})
	}
	name := "No file"
	if ui.snapshot.Path != "" {
		name = filepath.Base(ui.snapshot.Path)
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		button(&ui.openBtn, openIcon, "Open CSV"),
		button(&ui.fitBtn, fitIcon, "Fit to data"),
		button(&ui.zoomInBtn, zoomInIcon, "Zoom in"),
		button(&ui.zoomOutBtn, zoomOutIcon, "Zoom out"),
		layout.Rigid(material.CheckBox(ui.th, &ui.view.Follow, "Follow").Layout),
		layout.Rigid(material.CheckBox(ui.th, &ui.logY, "Log Y").Layout),
		layout.Rigid(material.CheckBox(ui.th, &ui.vertical, "Vertical").Layout),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Flexed(1, func(gtx C) D {
			l := material.Body2(ui.th, name)
			l.MaxLines = 1
			l.Alignment = text.End
			return l.Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
	)
}

func (ui *UI) layoutMainArea(gtx C) D {
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(ui.layoutToolbar),
		layout.Rigid(func(gtx C) D {
			if len(ui.errMsg) == 0 {
				return D{}
			}
			l := material.Body1(ui.th, ui.errMsg)
			l.Color = color.NRGBA{R: 150, A: 255}
			return l.Layout(gtx)
		}),
		layout.Flexed(1, func(gtx C) D {
			return ui.view.Layout(gtx, ui.th)
		}),
	)
}

func (ui *UI) layoutStartScreen(gtx C) D {
	msg := "No data yet."
	if ui.snapshot.Path != "" {
		msg = "No plottable columns in " + filepath.Base(ui.snapshot.Path) + " yet."
	}
	return layout.Flex{
		Axis:      layout.Vertical,
		Alignment: layout.Middle,
		Spacing:   layout.SpaceAround,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body1(ui.th, msg).Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			if ui.opening != nil {
				gtx = gtx.Disabled()
			}
			return material.Button(ui.th, &ui.openBtn, "Open CSV").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Min = image.Point{}
			return material.Body2(ui.th, ui.errMsg).Layout(gtx)
		}),
	)
}

// Layout the UI into the provided context.
func (ui *UI) Layout(gtx C) D {
	ui.Update(gtx)
	if ui.Loaded() {
		return ui.layoutMainArea(gtx)
	}
	return ui.layoutStartScreen(gtx)
}
