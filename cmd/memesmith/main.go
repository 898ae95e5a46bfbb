package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/example/memesmith/internal/config"
	"github.com/example/memesmith/internal/theme"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	config      *config.Config
	themeName   string
	logLevel    string
	activeTheme *theme.Theme
	activeName  string
	stdout      io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func (r *root) out() io.Writer {
	if r == nil || r.stdout == nil {
		return os.Stdout
	}
	return r.stdout
}

func (r *root) cfg() *config.Config {
	if r == nil || r.config == nil {
		return config.New()
	}
	return r.config
}

func (r *root) subProgram(name string) string {
	program := "memesmith"
	if r != nil {
		program = r.program
	}
	return strings.TrimSpace(strings.Join([]string{program, name}, " "))
}

func newRoot() *root {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logrus.WithError(err).Warn("failed to load .env")
	}
	loader := config.NewLoader(version, configPathOverride)
	cfg, err := loader.Load()
	if err != nil {
		logrus.WithError(err).Warn("failed to load config")
		cfg = config.New()
	}
	return newRootWith(cfg)
}

func newRootWith(cfg *config.Config) *root {
	r := &root{
		fs:      flag.NewFlagSet("memesmith", flag.ContinueOnError),
		program: "memesmith",
		config:  cfg,
	}
	// Precedence: CLI > Env > Config > Default. Empty flag values fall through.
	r.fs.StringVar(&r.themeName, "theme", "", "window theme ("+strings.Join(theme.Builtin(), ", ")+")")
	r.fs.StringVar(&r.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	if err := configureLogging(r.resolveLogLevel()); err != nil {
		return err
	}
	r.activeName, r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "edit":
		cmd, err = parseEditCmd(subArgs, r)
	case "fonts":
		cmd, err = parseFontsCmd(subArgs, r)
	case "colors":
		cmd, err = parseColorsCmd(subArgs, r)
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func (r *root) resolveLogLevel() string {
	if r.logLevel != "" {
		return r.logLevel
	}
	if v := os.Getenv("MEMESMITH_LOG_LEVEL"); v != "" {
		return v
	}
	return r.cfg().LogLevel
}

// resolveTheme returns the key the theme was found under and the theme.
func (r *root) resolveTheme() (string, *theme.Theme) {
	themeName := r.themeName
	if themeName == "" {
		themeName = os.Getenv("MEMESMITH_THEME")
	}
	if themeName == "" {
		themeName = r.cfg().Theme
	}
	if themeName == "" {
		return "default", theme.Default()
	}

	if t, ok := r.cfg().Themes[themeName]; ok {
		return themeName, t
	}
	t, err := theme.NewLoader().Load(themeName)
	if err != nil {
		logrus.WithError(err).WithField("theme", themeName).Warn("using default theme")
		return "default", theme.Default()
	}
	return themeName, t
}

func configureLogging(level string) error {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level == "" {
		logrus.SetLevel(logrus.InfoLevel)
		return nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(lvl)
	return nil
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		switch {
		case errors.Is(err, flag.ErrHelp):
		case errors.As(err, &uerr):
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		default:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
