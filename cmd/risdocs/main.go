package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"

	"github.com/jorge-barreto/risdocs/internal/catalog"
	"github.com/jorge-barreto/risdocs/internal/config"
	"github.com/jorge-barreto/risdocs/internal/logger"
	"github.com/jorge-barreto/risdocs/internal/navigator"
	"github.com/jorge-barreto/risdocs/internal/prefs"
	"github.com/jorge-barreto/risdocs/internal/render"
	"github.com/jorge-barreto/risdocs/internal/scaffold"
	"github.com/jorge-barreto/risdocs/internal/server"
	"github.com/jorge-barreto/risdocs/internal/theme"
	"github.com/jorge-barreto/risdocs/internal/tui"
	"github.com/jorge-barreto/risdocs/internal/ux"
)

func main() {
	app := &cli.Command{
		Name:        "risdocs",
		Usage:       "Browse and search the RIS language documentation",
		Description: "Run without a command to open the interactive browser.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Config file (default: nearest " + config.FileName + ")"},
			&cli.StringFlag{Name: "catalog", Usage: "YAML catalog to browse instead of the built-in docs"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: "theme", Usage: "light, dark or auto"},
		},
		Commands: []*cli.Command{
			browseCmd(),
			listCmd(),
			searchCmd(),
			showCmd(),
			serveCmd(),
			initCmd(),
		},
		Action: browse,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ux.Error(os.Stderr, err)
		os.Exit(1)
	}
}

// env is the state every command starts from.
type env struct {
	cfg       *config.Config
	cat       *catalog.Catalog
	prefs     *prefs.Prefs
	prefsPath string
	mode      theme.Mode
}

func (e *env) navigator() (*navigator.Engine, error) {
	return navigator.New(e.cat, e.cfg.DefaultSection)
}

// setup loads config, logging, catalog and the theme preference. Interactive
// commands log to the configured file only, since the screen is taken.
func setup(cmd *cli.Command, interactive bool) (*env, error) {
	path := cmd.String("config")
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = config.Find(wd); err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v := cmd.String("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v := cmd.String("catalog"); v != "" {
		cfg.Catalog = v
	}
	if v := cmd.String("theme"); v != "" {
		cfg.Theme = v
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	if interactive && cfg.LogFile == "" {
		logger.Discard()
	} else if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, err
	}
	if path != "" {
		logger.Debug("config loaded", "path", path)
	}

	cat := catalog.Builtin()
	if cfg.Catalog != "" {
		if cat, err = catalog.LoadFile(cfg.Catalog); err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	}
	if err := config.ValidateAgainst(cfg, cat); err != nil {
		return nil, err
	}

	e := &env{cfg: cfg, cat: cat, prefsPath: cfg.PrefsFile}
	if e.prefsPath == "" {
		if e.prefsPath, err = prefs.DefaultPath(); err != nil {
			logger.Warn("no preferences directory", "err", err)
		}
	}
	e.prefs = &prefs.Prefs{}
	if e.prefsPath != "" {
		if p, err := prefs.Load(e.prefsPath); err != nil {
			logger.Warn("ignoring preferences", "path", e.prefsPath, "err", err)
		} else {
			e.prefs = p
		}
	}

	// An explicit --theme wins over the saved preference, which wins over config.
	if stored, ok := e.prefs.Mode(); ok && !cmd.IsSet("theme") {
		e.mode = stored
	} else if e.mode, err = theme.ParseMode(cfg.Theme); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *env) saveTheme(m theme.Mode) error {
	if e.prefsPath == "" {
		return errors.New("no preferences file")
	}
	e.prefs.SetMode(m)
	return e.prefs.Save(e.prefsPath)
}

func browseCmd() *cli.Command {
	return &cli.Command{
		Name:   "browse",
		Usage:  "Open the interactive documentation browser",
		Action: browse,
	}
}

func browse(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(cmd, true)
	if err != nil {
		return err
	}
	nav, err := e.navigator()
	if err != nil {
		return err
	}
	m := tui.New(nav, tui.Options{
		Theme:   theme.NewFlag(e.mode),
		OnTheme: e.saveTheme,
	})
	return tui.Run(m)
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List documentation sections",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "query", Aliases: []string{"q"}, Usage: "Only list sections matching this text"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			nav, err := e.navigator()
			if err != nil {
				return err
			}
			nav.SetQuery(cmd.String("query"))
			ux.RenderList(os.Stdout, e.cat, nav.Visible(), nav.Selection(), nav.Query())
			fmt.Println("Run 'risdocs show <id>' to read a section.")
			return nil
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Print the IDs of sections matching a query",
		ArgsUsage: "<query>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			ux.RenderIDs(os.Stdout, navigator.Match(e.cat, strings.Join(cmd.Args().Slice(), " ")))
			return nil
		},
	}
}

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a documentation section",
		ArgsUsage: "[id]",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "plain", Usage: "Render without colors"},
			&cli.IntFlag{Name: "width", Value: 80, Usage: "Wrap width"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			nav, err := e.navigator()
			if err != nil {
				return err
			}
			if id := cmd.Args().First(); id != "" {
				if err := nav.SetSelection(id); err != nil {
					return fmt.Errorf("%w; run 'risdocs list' to see available sections", err)
				}
			}
			active, err := nav.Active()
			if err != nil {
				return err
			}

			style := theme.GlamourStyle(e.mode)
			if cmd.Bool("plain") {
				style = render.PlainStyle
			}
			r, err := render.New(style, int(cmd.Int("width")))
			if err != nil {
				return err
			}
			out, err := r.Section(active)
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the documentation over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address (default from config)"},
			&cli.BoolFlag{Name: "allow-all-origins", Usage: "Allow CORS requests from any origin"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			e, err := setup(cmd, false)
			if err != nil {
				return err
			}
			addr := e.cfg.Server.Addr
			if v := cmd.String("addr"); v != "" {
				addr = v
			}
			srv := server.New(server.Config{
				Addr:           addr,
				AllowAll:       e.cfg.Server.AllowAllOrigins || cmd.Bool("allow-all-origins"),
				DefaultSection: e.cfg.DefaultSection,
				DefaultTheme:   e.mode,
				SessionTTL:     e.cfg.Server.SessionTTL,
			}, e.cat)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
			defer stop()

			errc := make(chan error, 1)
			go func() { errc <- srv.Start() }()
			ux.Listening(os.Stdout, addr, e.cat.Len())

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example config and an editable copy of the docs",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(os.Stdout, dir, catalog.Builtin())
		},
	}
}
