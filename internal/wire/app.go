package wire

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/discard"
	"github.com/apex/log/handlers/text"
	"github.com/spf13/viper"

	"github.com/mithrel/gyani/internal/clip"
	"github.com/mithrel/gyani/internal/config"
	"github.com/mithrel/gyani/internal/controller"
	"github.com/mithrel/gyani/internal/remote"
	"github.com/mithrel/gyani/pkg/models"
)

// App aggregates the major services for easy injection.
type App struct {
	Cfg       *viper.Viper
	Log       *log.Logger
	Client    *remote.Client
	Catalog   *models.Catalog
	Clipboard clip.Writer

	logFile io.Closer
}

// Option overrides a dependency BuildApp would otherwise construct.
type Option func(*App)

// WithClipboard replaces the system clipboard.
func WithClipboard(w clip.Writer) Option {
	return func(a *App) { a.Clipboard = w }
}

// BuildApp wires dependencies with the provided config.
func BuildApp(ctx context.Context, v *viper.Viper, opts ...Option) (*App, error) {
	logger, closer, err := NewLogger(v.GetString("log.output"), v.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	client := remote.New(
		v.GetString("base_url"),
		config.Duration(v, "request.timeout", 0),
		remote.WithLogger(logger),
	)
	app := &App{
		Cfg:       v,
		Log:       logger,
		Client:    client,
		Catalog:   models.Default(),
		Clipboard: clip.System{},
		logFile:   closer,
	}
	for _, o := range opts {
		o(app)
	}
	return app, nil
}

// NewController returns a fresh controller bound to the app's services.
func (a *App) NewController() *controller.Controller {
	return controller.New(a.Client, a.Catalog, a.Clipboard, controller.WithLogger(a.Log))
}

// Quiet silences stderr logging, for full-screen use. File logging is kept.
func (a *App) Quiet() {
	if _, ok := a.Log.Handler.(*cli.Handler); ok {
		a.Log.Handler = discard.New()
	}
}

// Close releases the log file, if any.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	return a.logFile.Close()
}

// NewLogger builds an apex logger writing to stderr ("stderr"), nowhere
// ("discard") or appending to a file path.
func NewLogger(output, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, nil, fmt.Errorf("log.level %q: %w", level, err)
	}
	l := &log.Logger{Level: lvl}
	switch out := strings.TrimSpace(output); out {
	case "", "stderr":
		l.Handler = cli.New(os.Stderr)
		return l, nil, nil
	case "discard":
		l.Handler = discard.New()
		return l, nil, nil
	default:
		if err := os.MkdirAll(filepath.Dir(out), 0o700); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		l.Handler = text.New(f)
		l.WithField("at", time.Now().Format(time.RFC3339)).Debug("log opened")
		return l, f, nil
	}
}
