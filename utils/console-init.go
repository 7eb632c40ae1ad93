package utils

import (
	"fmt"
	"github.com/logrusorgru/aurora"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/term"
	"io"
	"os"
	"runtime"
	"strings"
)

// ConsoleInit sets up the global zerolog logger for a terminal session and
// returns a logger tagged with the app name. Colours are only used when
// stdout is a terminal.
func ConsoleInit(name string, verbose bool) (zerolog.Logger, aurora.Aurora) {
	colors := term.IsTerminal(int(os.Stdout.Fd()))
	logsInit(os.Stderr, verbose, colors)

	if name != "" {
		return zlog.With().Str("app", name).Logger(), aurora.NewAurora(colors)
	}

	return zlog.Logger, aurora.NewAurora(colors)
}

func logsInit(out io.Writer, verbose bool, colors bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	zlog.Logger = zlog.
		Output(zerolog.ConsoleWriter{Out: out, TimeFormat: "02/01 15:04:05", NoColor: !colors}).
		Hook(LineInfoHook{})
}

type LineInfoHook struct{}

func (h LineInfoHook) Run(e *zerolog.Event, l zerolog.Level, msg string) {
	if l >= zerolog.InfoLevel {
		_, file, line, ok := runtime.Caller(3)
		if ok {
			e.Str("line", fmt.Sprintf("%s:%d", shortFileName(file), line))
		}
	}
}

func shortFileName(file string) string {
	if idx := strings.Index(file, "news-agent/"); idx != -1 {
		return file[idx+len("news-agent/"):]
	}

	return file
}
