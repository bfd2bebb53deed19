package main

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"strconv"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"golang.org/x/exp/constraints"

	"git.sr.ht/~whereswaldon/chartcore/axis"
	"git.sr.ht/~whereswaldon/chartcore/chart"
	"git.sr.ht/~whereswaldon/chartcore/compress"
	"git.sr.ht/~whereswaldon/chartcore/coords"
	"git.sr.ht/~whereswaldon/chartcore/series"
)

// ChartView draws a chart.Chart and turns pointer and keyboard input into
// operations on it.
type ChartView struct {
	chart   *chart.Chart
	Enabled map[string]*widget.Bool
	// Follow re-fits the axes whenever new data arrives.
	Follow   widget.Bool
	zoom     gesture.Scroll
	keyTable component.GridState
	size     image.Point
	// hover gesture state
	pos       f32.Point
	isHovered bool
	// selection gesture state
	dragStart f32.Point
	dragging  bool
}

func NewChartView(c *chart.Chart) *ChartView {
	return &ChartView{
		chart:   c,
		Enabled: make(map[string]*widget.Bool),
		Follow:  widget.Bool{Value: true},
	}
}

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

func ceil[T constraints.Integer | constraints.Float](a T) T {
	return T(math.Ceil(float64(a)))
}

func clamp[T constraints.Ordered](lo, v, hi T) T {
	return max(lo, min(v, hi))
}

func toCoords(p f32.Point) coords.Point {
	return coords.Point{X: float64(p.X), Y: float64(p.Y)}
}

func toF32(p coords.Point) f32.Point {
	return f32.Pt(float32(p.X), float32(p.Y))
}

func logErr(action string, err error) {
	if err != nil {
		log.Printf("%s: %v", action, err)
	}
}

func (c *ChartView) enabled(s *series.Series) *widget.Bool {
	b, ok := c.Enabled[s.ID()]
	if !ok {
		b = &widget.Bool{Value: s.Visible()}
		c.Enabled[s.ID()] = b
	}
	return b
}

// AutoScale fits every axis to the visible data.
func (c *ChartView) AutoScale() {
	logErr("autoscale", c.chart.AutoScaleAll())
}

func (c *ChartView) ZoomIn() {
	c.Follow.Value = false
	logErr("zoom in", c.chart.ZoomInAll(axis.DefaultZoomFactor))
}

func (c *ChartView) ZoomOut() {
	c.Follow.Value = false
	logErr("zoom out", c.chart.ZoomOutAll(axis.DefaultZoomFactor))
}

func (c *ChartView) Update(gtx C) {
	for id := range c.Enabled {
		if c.chart.Series(id) == nil {
			delete(c.Enabled, id)
		}
	}
	for _, s := range c.chart.AllSeries() {
		b := c.enabled(s)
		if b.Update(gtx) {
			s.SetVisible(b.Value)
			c.chart.OnDataOrRangeChanged()
			if c.Follow.Value {
				c.AutoScale()
			}
		}
	}
	if c.Follow.Update(gtx) && c.Follow.Value {
		c.AutoScale()
	}

	if dist := c.zoom.Update(gtx.Metric, gtx.Source, gtx.Now, gesture.Vertical, image.Rect(0, -1e6, 0, 1e6)); dist != 0 {
		c.Follow.Value = false
		if dist < 0 {
			logErr("zoom in", c.chart.ZoomInAllAt(toCoords(c.pos), axis.DefaultZoomFactor))
		} else {
			logErr("zoom out", c.chart.ZoomOutAllAt(toCoords(c.pos), axis.DefaultZoomFactor))
		}
	}

	for {
		ev, ok := gtx.Event(
			key.FocusFilter{Target: c},
			key.Filter{Focus: c, Name: key.NameUpArrow, Optional: key.ModCtrl},
			key.Filter{Focus: c, Name: key.NameDownArrow, Optional: key.ModCtrl},
			key.Filter{Focus: c, Name: key.NameLeftArrow},
			key.Filter{Focus: c, Name: key.NameRightArrow},
			pointer.Filter{
				Target: c,
				Kinds:  pointer.Enter | pointer.Leave | pointer.Move | pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
			},
		)
		if !ok {
			break
		}
		switch ev := ev.(type) {
		case key.Event:
			if ev.State != key.Press {
				continue
			}
			c.Follow.Value = false
			logErr("key "+string(ev.Name), c.handleKey(ev))
		case pointer.Event:
			switch ev.Kind {
			case pointer.Enter:
				c.isHovered = true
				c.pos = ev.Position
			case pointer.Leave:
				c.isHovered = false
			case pointer.Cancel:
				c.isHovered = false
				c.dragging = false
			case pointer.Move:
				c.pos = ev.Position
			case pointer.Press:
				gtx.Execute(key.FocusCmd{Tag: c})
				c.pos = ev.Position
				c.dragStart = ev.Position
				c.dragging = true
			case pointer.Drag:
				c.pos = ev.Position
			case pointer.Release:
				c.pos = ev.Position
				if !c.dragging {
					break
				}
				c.dragging = false
				d := ev.Position.Sub(c.dragStart)
				if math.Hypot(float64(d.X), float64(d.Y)) < float64(gtx.Dp(4)) {
					break
				}
				c.Follow.Value = false
				logErr("select", c.chart.Select(toCoords(c.dragStart), toCoords(ev.Position)))
			}
		}
	}
}

// handleKey applies the arrow keys: up and down scroll the axes drawn
// vertically, left and right the ones drawn horizontally. Holding ctrl
// with up or down zooms every axis instead.
func (c *ChartView) handleKey(ev key.Event) error {
	ctrl := ev.Modifiers.Contain(key.ModCtrl)
	switch ev.Name {
	case key.NameUpArrow:
		if ctrl {
			return c.chart.ZoomInAll(axis.DefaultZoomFactor)
		}
		return c.chart.ScrollScreen(false, true)
	case key.NameDownArrow:
		if ctrl {
			return c.chart.ZoomOutAll(axis.DefaultZoomFactor)
		}
		return c.chart.ScrollScreen(false, false)
	case key.NameLeftArrow:
		return c.chart.ScrollScreen(true, false)
	case key.NameRightArrow:
		return c.chart.ScrollScreen(true, true)
	}
	return nil
}

func (c *ChartView) Layout(gtx C, th *material.Theme) D {
	c.Update(gtx)
	if len(c.chart.AllSeries()) < 1 {
		return D{Size: gtx.Constraints.Max}
	}
	origConstraints := gtx.Constraints
	gtx.Constraints.Min = image.Point{}

	// Determine the amount of space to reserve for axis labels.
	labelDims, _ := rec(gtx, material.Body2(th, "-0.000e+00").Layout)

	// Determine the space occupied by the key.
	keyConstraints := gtx.Constraints
	keyConstraints.Max.Y = min(keyConstraints.Max.Y/3, gtx.Dp(200))
	gtx.Constraints = keyConstraints
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	keyDims, keyCall := rec(gtx, func(gtx C) D { return c.layoutKey(gtx, th) })
	gtx.Constraints = origConstraints

	yLabelWidth := labelDims.Size.X
	plotSize := origConstraints.Max.Sub(image.Pt(yLabelWidth, labelDims.Size.Y+keyDims.Size.Y))
	plotSize.X = max(plotSize.X, 0)
	plotSize.Y = max(plotSize.Y, 0)
	if plotSize != c.size {
		c.size = plotSize
		c.chart.OnPlotAreaResized(plotSize.X, plotSize.Y)
	}

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					gtx.Constraints = layout.Exact(image.Pt(yLabelWidth, plotSize.Y))
					return c.layoutTicks(gtx, th, false, plotSize.Y)
				}),
				layout.Rigid(func(gtx C) D {
					gtx.Constraints = layout.Exact(plotSize)
					return c.layoutPlot(gtx, th)
				}),
			)
		}),
		layout.Rigid(func(gtx C) D {
			defer op.Offset(image.Pt(yLabelWidth, 0)).Push(gtx.Ops).Pop()
			gtx.Constraints = layout.Exact(image.Pt(plotSize.X, labelDims.Size.Y))
			c.layoutTicks(gtx, th, true, plotSize.X)
			return D{Size: image.Pt(origConstraints.Max.X, labelDims.Size.Y)}
		}),
		layout.Rigid(func(gtx C) D {
			keyCall.Add(gtx.Ops)
			return keyDims
		}),
	)
}

// screenAxis returns the first axis drawn along the given screen direction.
func (c *ChartView) screenAxis(horizontal bool) *axis.Axis {
	for _, a := range c.chart.Axes().Axes() {
		if coords.ScreenAxis(a.Direction(), c.chart.Orientation()) == horizontal {
			return a
		}
	}
	return nil
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}

// tickLabel returns the text for the tick at v along a.
func tickLabel(a *axis.Axis, v float64) (string, bool) {
	if a.Scale() != axis.Category {
		return formatValue(v), true
	}
	labels := a.Categories()
	i := int(math.Round(v))
	if i < 0 || i >= len(labels) {
		return "", false
	}
	return labels[i], true
}

// tickCount is how many ticks fit along an axis length pixels long.
func tickCount(gtx C, length int) int {
	return clamp(2, length/max(gtx.Dp(80), 1), 10)
}

// layoutTicks labels the axis along one edge of the plot area, which is
// length pixels long.
func (c *ChartView) layoutTicks(gtx C, th *material.Theme, horizontal bool, length int) D {
	a := c.screenAxis(horizontal)
	if a == nil || length <= 0 {
		return D{Size: gtx.Constraints.Max}
	}
	r := a.Range()
	gtx.Constraints.Min = image.Point{}
	used := math.MinInt
	for _, v := range r.Ticks(tickCount(gtx, length)) {
		label, ok := tickLabel(a, v)
		if !ok {
			continue
		}
		l := material.Body2(th, label)
		l.MaxLines = 1
		dims, call := rec(gtx, l.Layout)
		var off image.Point
		pos := int(coords.ValueToPixel(v, r, length))
		if horizontal {
			off.X = clamp(0, pos-dims.Size.X/2, max(length-dims.Size.X, 0))
			if off.X < used {
				continue
			}
			used = off.X + dims.Size.X + gtx.Dp(8)
		} else {
			off.Y = clamp(0, length-pos-dims.Size.Y/2, max(length-dims.Size.Y, 0))
			off.X = max(gtx.Constraints.Max.X-dims.Size.X-gtx.Dp(4), 0)
		}
		stack := op.Offset(off).Push(gtx.Ops)
		call.Add(gtx.Ops)
		stack.Pop()
	}
	return D{Size: gtx.Constraints.Max}
}

// layoutGrid draws the plot border and a line across the plot at every tick
// of the first axis along each screen direction.
func (c *ChartView) layoutGrid(gtx C) {
	size := gtx.Constraints.Max
	oneDp := gtx.Dp(1)
	line := func(horizontal bool, pos int, alpha uint8) {
		x := clamp(0, pos, size.X-oneDp)
		r := clip.Rect{Min: image.Pt(x, 0), Max: image.Pt(x+oneDp, size.Y)}
		if !horizontal {
			y := clamp(0, size.Y-pos, size.Y-oneDp)
			r = clip.Rect{Min: image.Pt(0, y), Max: image.Pt(size.X, y+oneDp)}
		}
		paint.FillShape(gtx.Ops, color.NRGBA{A: alpha}, r.Op())
	}
	line(true, 0, 100)
	line(true, size.X-oneDp, 100)
	line(false, 0, 100)
	line(false, size.Y, 100)
	for _, horizontal := range []bool{true, false} {
		a := c.screenAxis(horizontal)
		if a == nil {
			continue
		}
		length := size.Y
		if horizontal {
			length = size.X
		}
		r := a.Range()
		for _, v := range r.Ticks(tickCount(gtx, length)) {
			line(horizontal, int(coords.ValueToPixel(v, r, length)), 50)
		}
	}
}

func (c *ChartView) layoutPlot(gtx C, th *material.Theme) D {
	size := gtx.Constraints.Max
	defer clip.Rect{Max: size}.Push(gtx.Ops).Pop()
	event.Op(gtx.Ops, c)
	c.zoom.Add(gtx.Ops)

	// Draw grid underneath plot.
	c.layoutGrid(gtx)
	c.layoutSeries(gtx)

	if c.dragging {
		sel := image.Rectangle{
			Min: c.dragStart.Round(),
			Max: c.pos.Round(),
		}.Canon()
		paint.FillShape(gtx.Ops, color.NRGBA{B: 0x80, A: 40}, clip.Rect(sel).Op())
	} else if c.isHovered {
		c.layoutHover(gtx, th)
	}
	return D{Size: size}
}

func (c *ChartView) layoutSeries(gtx C) {
	all := c.chart.AllSeries()
	layers := make([]op.CallOp, 0, len(all))
	for i, s := range all {
		if !s.Visible() {
			continue
		}
		m, err := c.chart.Mapper(s.XAxisID(), s.YAxisID())
		if err != nil {
			continue
		}
		points, _ := s.RenderPoints()
		if len(points) == 0 {
			continue
		}
		col := colors[i%len(colors)]
		macro := op.Record(gtx.Ops)
		switch {
		case s.Type() == series.Bar:
			c.layoutBars(gtx, s, m, points, col)
		case s.StackEnabled():
			c.layoutArea(gtx, m, points, col)
		default:
			c.layoutLine(gtx, m, points, col)
		}
		layers = append(layers, macro.Stop())
	}
	// Stacked layers grow upward, so draw the later (taller) ones first.
	for i := len(layers) - 1; i >= 0; i-- {
		layers[i].Add(gtx.Ops)
	}
}

// baseline is the Y value that bars and areas grow from.
func baseline(r axis.Range) float64 {
	if r.Scale == axis.Log {
		return r.Lower
	}
	return clamp(r.Lower, 0, r.Upper)
}

func (c *ChartView) layoutLine(gtx C, m coords.Mapper, points []compress.Point, col color.NRGBA) {
	if len(points) == 1 {
		r := float32(gtx.Dp(2))
		px := toF32(m.DataToPixel(points[0].X, points[0].Y))
		paint.FillShape(gtx.Ops, col, clip.Ellipse{
			Min: px.Sub(f32.Pt(r, r)).Round(),
			Max: px.Add(f32.Pt(r, r)).Round(),
		}.Op(gtx.Ops))
		return
	}
	var p clip.Path
	p.Begin(gtx.Ops)
	for i, pt := range points {
		px := toF32(m.DataToPixel(pt.X, pt.Y))
		if i == 0 {
			p.MoveTo(px)
		} else {
			p.LineTo(px)
		}
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{
		Path:  p.End(),
		Width: float32(gtx.Dp(2)),
	}.Op())
}

func (c *ChartView) layoutArea(gtx C, m coords.Mapper, points []compress.Point, col color.NRGBA) {
	base := baseline(m.Y)
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(toF32(m.DataToPixel(points[0].X, base)))
	for _, pt := range points {
		p.LineTo(toF32(m.DataToPixel(pt.X, pt.Y)))
	}
	p.LineTo(toF32(m.DataToPixel(points[len(points)-1].X, base)))
	p.Close()
	stack := clip.Outline{
		Path: p.End(),
	}.Op().Push(gtx.Ops)
	paint.Fill(gtx.Ops, col)
	stack.Pop()
}

func (c *ChartView) layoutBars(gtx C, s *series.Series, m coords.Mapper, points []compress.Point, col color.NRGBA) {
	x := c.chart.Axes().XAxis(s.XAxisID())
	if x == nil {
		return
	}
	risers := max(x.NumRisers(), 1)
	riser, _ := s.RiserIndex()
	horizontal := c.chart.Orientation() == coords.Horizontal
	length := c.size.X
	if !horizontal {
		length = c.size.Y
	}
	slots := float64(len(points))
	if m.X.Scale == axis.Category {
		slots = m.X.Upper - m.X.Lower + 1
	}
	slot := float32(length) / float32(max(slots, 1)) * 0.8
	width := max(slot/float32(risers), 1)
	base := baseline(m.Y)
	for _, pt := range points {
		top := m.DataToPixel(pt.X, pt.Y)
		bottom := m.DataToPixel(pt.X, base)
		var r image.Rectangle
		if horizontal {
			left := float32(top.X) - slot/2 + float32(riser)*width
			r = image.Rect(int(left), int(top.Y), int(ceil(left+width)), int(bottom.Y))
		} else {
			lower := float32(top.Y) + slot/2 - float32(riser+1)*width
			r = image.Rect(int(bottom.X), int(lower), int(top.X), int(ceil(lower+width)))
		}
		paint.FillShape(gtx.Ops, col, clip.Rect(r).Op())
	}
}

func (c *ChartView) layoutHover(gtx C, th *material.Theme) {
	hit, ok := c.chart.FindNearestPoint(toCoords(c.pos), float64(gtx.Dp(12)))
	if !ok {
		return
	}
	s := c.chart.Series(hit.SeriesID)
	px, err := c.chart.DataToPixel(s.XAxisID(), s.YAxisID(), s.X(hit.Index), s.Y(hit.Index))
	if err != nil {
		return
	}
	colorIdx := 0
	for i, other := range c.chart.AllSeries() {
		if other == s {
			colorIdx = i
		}
	}
	col := colors[colorIdx%len(colors)]
	dot := toF32(px)
	r := float32(gtx.Dp(4))
	paint.FillShape(gtx.Ops, col, clip.Ellipse{
		Min: dot.Sub(f32.Pt(r, r)).Round(),
		Max: dot.Add(f32.Pt(r, r)).Round(),
	}.Op(gtx.Ops))

	xText := formatValue(s.X(hit.Index))
	if x := c.chart.Axes().XAxis(s.XAxisID()); x != nil && x.Scale() == axis.Category {
		labels := x.Categories()
		if i := int(s.X(hit.Index)); i >= 0 && i < len(labels) {
			xText = labels[i]
		}
	}
	yText := formatValue(s.YValues()[hit.Index])
	if s.StackEnabled() {
		yText += fmt.Sprintf(" (stacked %s)", formatValue(s.Y(hit.Index)))
	}

	origConstraints := gtx.Constraints
	gtx.Constraints.Min = image.Point{}
	hoverInfoDims, hoverInfoCall := rec(gtx, func(gtx C) D {
		return layout.Background{}.Layout(gtx,
			func(gtx C) D {
				paint.FillShape(gtx.Ops, color.NRGBA{R: 255, G: 255, B: 255, A: 200}, clip.Rect{Max: gtx.Constraints.Min}.Op())
				return D{Size: gtx.Constraints.Min}
			},
			func(gtx C) D {
				return layout.UniformInset(8).Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
								layout.Rigid(func(gtx C) D {
									size := image.Pt(gtx.Dp(8), gtx.Dp(8))
									paint.FillShape(gtx.Ops, col, clip.Ellipse{Max: size}.Op(gtx.Ops))
									return D{Size: size}
								}),
								layout.Rigid(layout.Spacer{Width: 8}.Layout),
								layout.Rigid(material.Body2(th, fmt.Sprintf("%s [%d]", s.ID(), hit.Index)).Layout),
							)
						}),
						layout.Rigid(material.Body2(th, "x: "+xText).Layout),
						layout.Rigid(material.Body2(th, "y: "+yText).Layout),
					)
				})
			},
		)
	})
	gtx.Constraints = origConstraints

	pos := image.Point{}
	gap := gtx.Dp(8)
	if int(dot.X) > gtx.Constraints.Max.X-int(dot.X) {
		pos.X = max(int(dot.X)-hoverInfoDims.Size.X-gap, 0)
	} else {
		pos.X = min(int(dot.X)+gap, gtx.Constraints.Max.X-hoverInfoDims.Size.X)
	}
	pos.Y = clamp(0, int(dot.Y), max(gtx.Constraints.Max.Y-hoverInfoDims.Size.Y, 0))
	transform := op.Offset(pos).Push(gtx.Ops)
	hoverInfoCall.Add(gtx.Ops)
	transform.Pop()
}

func (c *ChartView) layoutKey(gtx C, th *material.Theme) D {
	all := c.chart.AllSeries()
	table := component.Table(th, &c.keyTable)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Track.MinorPadding = 0
	colorColWidth := gtx.Dp(50)
	numColWidth := gtx.Dp(80)
	nameColWidth := max(gtx.Constraints.Max.X-colorColWidth-4*numColWidth-gtx.Dp(table.VScrollbarStyle.Width()), numColWidth)
	rowHeight := gtx.Sp(20)
	const (
		colorCol = iota
		seriesNameCol
		typeCol
		pointsCol
		drawnCol
		axesCol
		numCols
	)
	return table.Layout(gtx, len(all), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			var size int
			switch index {
			case colorCol:
				size = colorColWidth
			case seriesNameCol:
				size = nameColWidth
			default:
				size = numColWidth
			}
			return min(size, constraint)
		},
		func(gtx C, index int) D {
			var l material.LabelStyle
			switch index {
			case colorCol:
				l = material.Body1(th, "Show")
			case seriesNameCol:
				l = material.Body1(th, "Data Series Name")
				l.Alignment = text.Middle
			case typeCol:
				l = material.Body1(th, "Type")
			case pointsCol:
				l = material.Body1(th, "Points")
				l.Alignment = text.End
			case drawnCol:
				l = material.Body1(th, "Drawn")
				l.Alignment = text.End
			case axesCol:
				l = material.Body1(th, "Axes")
				l.Alignment = text.End
			default:
				l = material.Body1(th, "???")
			}
			l.Color = th.ContrastFg
			return layout.Background{}.Layout(gtx,
				func(gtx C) D {
					paint.FillShape(gtx.Ops, th.ContrastBg, clip.Rect{Max: gtx.Constraints.Max}.Op())
					return D{Size: gtx.Constraints.Min}
				}, l.Layout,
			)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			if row >= len(all) {
				return D{Size: gtx.Constraints.Min}
			}
			s := all[row]
			toggle := c.enabled(s)
			enabled := toggle.Value
			disabledAlpha := uint8(100)
			body := func(txt string, align text.Alignment) D {
				l := material.Body2(th, txt)
				l.Alignment = align
				l.MaxLines = 1
				if !enabled {
					l.Color.A = disabledAlpha
				}
				return l.Layout(gtx)
			}
			dims = layout.UniformInset(2).Layout(gtx, func(gtx C) D {
				switch col {
				case colorCol:
					return toggle.Layout(gtx, func(gtx C) D {
						return layout.Center.Layout(gtx, func(gtx C) D {
							sideLen := gtx.Dp(10)
							sz := image.Pt(sideLen, sideLen)
							fullColor := colors[row%len(colors)]
							if !enabled {
								fullColor.A = disabledAlpha
							}
							paint.FillShape(gtx.Ops, fullColor, clip.Rect{Max: sz}.Op())
							return D{Size: sz}
						})
					})
				case seriesNameCol:
					return body(s.ID(), text.Start)
				case typeCol:
					typ := s.Type().String()
					if s.StackEnabled() {
						typ += " (stacked)"
					}
					return body(typ, text.Start)
				case pointsCol:
					return body(strconv.Itoa(s.Len()), text.End)
				case drawnCol:
					points, _ := s.RenderPoints()
					return body(strconv.Itoa(len(points)), text.End)
				case axesCol:
					return body(fmt.Sprintf("x%d y%d", s.XAxisID(), s.YAxisID()), text.End)
				default:
					return D{Size: gtx.Constraints.Max}
				}
			})
			if row&1 != 0 {
				col := colors[row%len(colors)]
				col.A = 50
				paint.FillShape(gtx.Ops, col, clip.Rect{Max: gtx.Constraints.Max}.Op())
			}
			return dims
		})
}
