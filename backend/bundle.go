package backend

import (
	"context"

	"gioui.org/app"
	"git.sr.ht/~gioverse/skel/stream"
)

// WindowState is everything a window needs from the backend.
type WindowState struct {
	Bundle
	Window     *app.Window
	Controller *stream.Controller
}

func NewWindowState(ctx context.Context, bundle Bundle, win *app.Window) WindowState {
	return WindowState{
		Bundle:     bundle,
		Window:     win,
		Controller: stream.NewController(ctx, win.Invalidate),
	}
}

// Bundle holds the application-wide backend services shared by windows.
type Bundle struct {
	Datasource *Datasource
}

func NewBundle() Bundle {
	return Bundle{
		Datasource: NewDatasource(),
	}
}
