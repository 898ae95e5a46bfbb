package main

import (
	"flag"
	"fmt"

	"github.com/example/memesmith/internal/config"
	"github.com/example/memesmith/internal/imagefile"
	"github.com/example/memesmith/internal/input"
	"github.com/example/memesmith/internal/overlay"
	"github.com/example/memesmith/internal/surface"
	"github.com/example/memesmith/internal/theme"
	"github.com/example/memesmith/internal/ui"
	"github.com/sirupsen/logrus"
)

// runApp is swapped out in tests so no window is opened.
var runApp = func(a *ui.App) { a.Run() }

type editCmd struct {
	*root
	fs *flag.FlagSet

	imagePath string
	top       string
	bottom    string
	font      string
	size      float64
	color     string
	shadow    bool
	static    bool
}

func (e *editCmd) Program() string { return e.root.subProgram("edit") }

func (e *editCmd) FlagSet() *flag.FlagSet { return e.fs }

func parseEditCmd(args []string, r *root) (*editCmd, error) {
	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	c := &editCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)

	cfg := r.cfg()
	fs.StringVar(&c.imagePath, "image", "", "image file to caption (png, jpeg, gif, webp, bmp, tiff)")
	fs.StringVar(&c.top, "top", "", "top caption text")
	fs.StringVar(&c.bottom, "bottom", "", "bottom caption text")
	fs.StringVar(&c.font, "font", cfg.Caption.Font, "caption font family")
	fs.Float64Var(&c.size, "size", cfg.Caption.Size, "caption font size in pixels (16-64)")
	fs.StringVar(&c.color, "color", cfg.Caption.Color, "caption color name or #RRGGBB")
	fs.BoolVar(&c.shadow, "shadow", cfg.Caption.Shadow, "draw a drop shadow under captions")
	fs.BoolVar(&c.static, "static", cfg.Static, "fix captions at their default positions")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.imagePath == "" && fs.NArg() == 1 {
		c.imagePath = fs.Arg(0)
	}
	if c.imagePath == "" || fs.NArg() > 1 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (e *editCmd) style() (overlay.Style, error) {
	cfg := *e.root.cfg()
	cfg.Caption = config.Caption{Font: e.font, Size: e.size, Color: e.color, Shadow: e.shadow}
	st, err := cfg.Style()
	if err != nil {
		return st, fmt.Errorf("caption style: %w", err)
	}
	return st, nil
}

func (e *editCmd) theme() *theme.Theme {
	if e.root == nil || e.root.activeTheme == nil {
		return theme.Default()
	}
	return e.root.activeTheme
}

func (e *editCmd) newApp() (*ui.App, error) {
	st, err := e.style()
	if err != nil {
		return nil, err
	}
	img, err := imagefile.Load(e.imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", e.imagePath, err)
	}

	log := logrus.WithFields(logrus.Fields{"component": "edit", "image": e.imagePath})
	app := ui.New(
		ui.WithTheme(e.theme()),
		ui.WithTitle(windowTitle(e.imagePath)),
		ui.WithOnClose(func() { log.Info("editor closed") }),
	)
	opts := []surface.Option{
		surface.WithStyle(st),
		surface.WithStatic(e.static),
		surface.WithOnChange(app.NotifyChanged),
	}
	if !e.static {
		opts = append(opts, surface.WithScope(input.NewScope()))
	}
	s := surface.New(opts...)
	s.SetImage(img)
	s.SetCaption(overlay.Top, e.top)
	s.SetCaption(overlay.Bottom, e.bottom)
	app.Surface = s
	return app, nil
}

func (e *editCmd) Run() error {
	app, err := e.newApp()
	if err != nil {
		return err
	}
	runApp(app)
	return nil
}
