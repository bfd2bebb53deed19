package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/x/explorer"

	"git.sr.ht/~whereswaldon/chartcore/backend"
	"git.sr.ht/~whereswaldon/chartcore/coords"
	"git.sr.ht/~whereswaldon/chartcore/series"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `%[1]s: interactive chart of csv data
Usage:

 %[1]s [flags] [file.csv]

The first column is used as the X value when its heading starts with "x".
Non-numeric X values become category labels. The file is followed as it
grows, so the output of a running program can be charted live:

 some-program > trace.csv & %[1]s trace.csv

`, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	bars := flag.Bool("bars", false, "Draw every column as bars instead of lines")
	stack := flag.Bool("stack", false, "Stack the columns on top of each other")
	logY := flag.Bool("log-y", false, "Use a logarithmic Y axis")
	vertical := flag.Bool("vertical", false, "Draw the X axis vertically")
	flag.Parse()

	opts := Options{
		Load: backend.LoadOptions{
			Type:  series.Line,
			Stack: *stack,
		},
		LogY:        *logY,
		Orientation: coords.Horizontal,
	}
	if *bars {
		opts.Load.Type = series.Bar
	}
	if *vertical {
		opts.Orientation = coords.Vertical
	}

	bundle := backend.NewBundle()
	if path := flag.Arg(0); path != "" {
		bundle.Datasource.Open(path)
	}

	go func() {
		w := app.NewWindow(app.Title("chartcore"))
		if err := loop(w, bundle, opts); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

func loop(w *app.Window, bundle backend.Bundle, opts Options) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	expl := explorer.NewExplorer(w)
	ws := backend.NewWindowState(ctx, bundle, w)
	ui := NewUI(ws, expl, opts)
	var ops op.Ops
	for {
		ev := w.NextEvent()
		expl.ListenEvents(ev)
		switch ev := ev.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, ev)
			ui.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}
