package main

import (
	"fmt"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/mathpad/internal/assets"
	"github.com/ha1tch/mathpad/internal/config"
	applog "github.com/ha1tch/mathpad/internal/log"
	"github.com/ha1tch/mathpad/internal/paint"
	"github.com/ha1tch/mathpad/internal/version"
)

const title = "MathPad"

func usage() {
	fmt.Println("MathPad", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mathpad            Open the drawing window")
	fmt.Println("  mathpad version    Show version")
	fmt.Println("  mathpad config     Print the effective configuration")
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		applog.Init(applog.FromEnv())
		applog.L().Error("config", slog.Any("err", err))
		os.Exit(1)
	}
	applog.Init(cfg.Logging.LogOptions())
	defer applog.Close()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println(title, version.String())
			return
		case "config":
			out, err := config.Marshal(cfg)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			os.Stdout.Write(out)
			return
		default:
			usage()
			os.Exit(2)
		}
	}

	if err := run(cfg); err != nil {
		applog.L().Error("fatal", slog.Any("err", err))
		applog.Close()
		os.Exit(1)
	}
}

// App owns the window resources and the editing session.
type App struct {
	session *paint.Session
	screen  *rlSurface
	canvas  *rlCanvas
	icons   map[string]rl.Texture2D
	input   input
	bg      rl.Color
	log     *slog.Logger
}

// NewApp loads icons and creates the canvas. The window must be open.
func NewApp(cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	toolbar := paint.NewToolbar(paint.WindowHeight)
	palette := cfg.Colors.Palette()

	src, err := assets.Source(cfg.Assets.Dir)
	if err != nil {
		return nil, err
	}
	specs := make([]assets.Spec, 0, len(toolbar.Buttons))
	for _, ic := range toolbar.Icons() {
		specs = append(specs, assets.Spec{Name: ic.Name, Width: ic.Width, Height: ic.Height})
	}
	imgs, err := assets.Load(src, specs)
	if err != nil {
		return nil, fmt.Errorf("load icons: %w", err)
	}
	icons, err := loadTextures(imgs)
	if err != nil {
		return nil, err
	}

	canvas, err := newCanvas(paint.WindowWidth, paint.WindowHeight, palette.Background, icons)
	if err != nil {
		unloadTextures(icons)
		return nil, err
	}

	return &App{
		session: paint.NewSession(toolbar, palette, applog.WithComponent("session")),
		screen:  &rlSurface{icons: icons},
		canvas:  canvas,
		icons:   icons,
		bg:      rl.Color(palette.Background),
		log:     logger,
	}, nil
}

// Frame runs one iteration of the loop and reports whether to continue.
func (app *App) Frame() bool {
	rl.BeginDrawing()
	rl.ClearBackground(app.bg)
	app.canvas.Composite()

	running := app.session.Update(app.input.poll())
	app.session.Draw(app.screen, app.canvas)

	rl.EndDrawing()
	return running
}

func (app *App) Close() {
	app.canvas.Unload()
	unloadTextures(app.icons)
	app.log.Debug("textures released", slog.Int("icons", len(app.icons)))
}

func run(cfg config.AppConfig) error {
	l := applog.WithComponent("main")

	rl.SetTraceLogLevel(rl.LogWarning)
	if cfg.Display.MSAA {
		rl.SetConfigFlags(rl.FlagMsaa4xHint)
	}
	rl.InitWindow(paint.WindowWidth, paint.WindowHeight, title)
	if !rl.IsWindowReady() {
		return fmt.Errorf("open %dx%d window", paint.WindowWidth, paint.WindowHeight)
	}
	defer rl.CloseWindow()
	rl.SetExitKey(0) // only the window close button or Quit end the session
	rl.SetTargetFPS(int32(cfg.Display.TargetFPS))

	app, err := NewApp(cfg, l)
	if err != nil {
		return err
	}
	defer app.Close()

	l.Info("window open",
		slog.Int("width", paint.WindowWidth),
		slog.Int("height", paint.WindowHeight),
		slog.Int("fps", cfg.Display.TargetFPS),
		slog.String("assets", assetLabel(cfg.Assets.Dir)))

	for app.Frame() {
	}

	l.Info("shutting down")
	return nil
}

func assetLabel(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
