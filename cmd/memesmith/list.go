package main

import (
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/example/memesmith/internal/render"
	"github.com/example/memesmith/internal/theme"
)

type listCmd struct {
	*root
	fs   *flag.FlagSet
	name string
	list func(io.Writer) error
}

func (l *listCmd) Program() string { return l.root.subProgram(l.name) }

func (l *listCmd) FlagSet() *flag.FlagSet { return l.fs }

func (l *listCmd) Run() error { return l.list(l.root.out()) }

func parseListCmd(name string, args []string, r *root, list func(io.Writer) error) (*listCmd, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	cmd := &listCmd{root: r, fs: fs, name: name, list: list}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func parseFontsCmd(args []string, r *root) (*listCmd, error) {
	return parseListCmd("fonts", args, r, r.listFonts)
}

func parseColorsCmd(args []string, r *root) (*listCmd, error) {
	return parseListCmd("colors", args, r, r.listColors)
}

func parseThemesCmd(args []string, r *root) (*listCmd, error) {
	return parseListCmd("themes", args, r, r.listThemes)
}

func marker(on bool) string {
	if on {
		return "*"
	}
	return " "
}

func (r *root) listFonts(w io.Writer) error {
	current, _ := render.CanonicalFamily(r.cfg().Caption.Font)
	fmt.Fprintln(w, "caption fonts (* marks the configured font):")
	for _, name := range render.Families() {
		fmt.Fprintf(w, "%s %s\n", marker(name == current), name)
	}
	fmt.Fprintf(w, "sizes: %d-%d px\n", render.MinFontSize, render.MaxFontSize)
	return nil
}

func (r *root) listColors(w io.Writer) error {
	current, _ := render.ParseColor(r.cfg().Caption.Color)
	fmt.Fprintln(w, "caption colors (* marks the configured color):")
	for _, entry := range render.CaptionColors() {
		c := entry.Color
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", c.R, c.G, c.B)
		fmt.Fprintf(w, "%s %-8s %s %s\n", marker(c == current), entry.Name, theme.Hex(c), block)
	}
	return nil
}

func (r *root) listThemes(w io.Writer) error {
	active := "default"
	if r != nil && r.activeName != "" {
		active = r.activeName
	}
	fmt.Fprintln(w, "themes (* marks the active theme):")
	for _, name := range theme.Builtin() {
		fmt.Fprintf(w, "%s %s\n", marker(name == active), name)
	}
	var custom []string
	for name := range r.cfg().Themes {
		custom = append(custom, name)
	}
	sort.Strings(custom)
	for _, name := range custom {
		fmt.Fprintf(w, "%s %s (config)\n", marker(name == active), name)
	}
	return nil
}
