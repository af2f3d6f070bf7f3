package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global logger. Verbosity 0 logs info and above,
// 1 adds debug, 2 or more adds trace. Console output goes to out; when
// logFile is non-empty every record is also appended there as JSON.
func Setup(verbosity int, out io.Writer, logFile string) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	console := zerolog.ConsoleWriter{
		Out:         out,
		NoColor:     !isTerminal(out),
		PartsOrder:  []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
		FormatLevel: newMarkers(lipgloss.NewRenderer(out)).format,
	}

	writers := []io.Writer{console}
	var fileErr error
	if logFile != "" {
		f, err := openLogFile(logFile)
		if err == nil {
			writers = append(writers, f)
		}
		fileErr = err
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	if fileErr != nil {
		log.Debug().Err(fileErr).Str("path", logFile).Msg("Logging to console only")
	}
}

// Get returns a logger tagged with the component name.
func Get(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// markers renders the level marker: info green, warn yellow, error red.
// The renderer drops colour when out is not a terminal.
type markers struct {
	info, warn, fail lipgloss.Style
}

func newMarkers(r *lipgloss.Renderer) markers {
	flavor := catppuccin.Mocha
	return markers{
		info: r.NewStyle().Foreground(lipgloss.Color(flavor.Green().Hex)),
		warn: r.NewStyle().Foreground(lipgloss.Color(flavor.Yellow().Hex)),
		fail: r.NewStyle().Foreground(lipgloss.Color(flavor.Red().Hex)),
	}
}

func (m markers) format(i any) string {
	lvl, _ := i.(string)
	switch lvl {
	case zerolog.LevelInfoValue:
		return m.info.Render("•")
	case zerolog.LevelWarnValue:
		return m.warn.Render("!")
	case zerolog.LevelErrorValue, zerolog.LevelFatalValue, zerolog.LevelPanicValue:
		return m.fail.Render("✗")
	case "":
		return ""
	default:
		return fmt.Sprintf("[%s]", lvl)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, nil
}
