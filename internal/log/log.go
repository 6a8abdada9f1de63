// Package log provides the structured loggers used across the parser,
// canonicalizer, and resolver packages.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/golang-cz/devslog"
	"github.com/phsym/console-slog"
	slogformatter "github.com/samber/slog-formatter"

	"github.com/go-urlcore/urlcore/internal/constraints"
)

var newHandler = slogformatter.NewFormatterHandler(
	slogformatter.ErrorFormatter("error"),
)

// Def is the default logger, used at decision points in the dispatch and
// canonicalization pipeline (mode selection, best-effort fallback).
var Def = slog.New(newHandler(
	console.NewHandler(os.Stdout, &console.HandlerOptions{
		AddSource:  true,
		Level:      slog.LevelWarn,
		TimeFormat: time.RFC3339Nano,
	}),
))

// Dev is a verbose developer logger for tracing every canonicalizer step.
var Dev = slog.New(newHandler(
	devslog.NewHandler(os.Stdout, &devslog.Options{
		HandlerOptions: &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		},
		SortKeys:   true,
		TimeFormat: time.RFC3339Nano,
	}),
))

type noopHandler struct{}

func (noopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (noopHandler) Handle(context.Context, slog.Record) error { return nil }

func (h noopHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h noopHandler) WithGroup(string) slog.Handler { return h }

// Noop discards everything.
var Noop = slog.New(noopHandler{})

type fmtValue struct {
	v        any
	goSyntax bool
}

func (v fmtValue) LogValue() slog.Value {
	if v.goSyntax {
		return slog.StringValue(fmt.Sprintf("%#v", v.v))
	}
	return slog.StringValue(fmt.Sprintf("%+v", v.v))
}

// FmtValue returns a value logger that formats values using '%+v' or '%#v' syntax.
func FmtValue(v any, goSyntax bool) slog.LogValuer { return fmtValue{v, goSyntax} }

type calcValue struct{ fn func() any }

func (v calcValue) LogValue() slog.Value {
	cv := v.fn()
	switch cv := cv.(type) {
	case slog.Value:
		return cv
	default:
		return slog.AnyValue(cv)
	}
}

// CalcValue returns a value logger that computes a value lazily, so it
// costs nothing when the log level is disabled.
func CalcValue(fn func() any) slog.LogValuer { return calcValue{fn} }

type stringValue[T constraints.Codeunit] struct {
	v T
}

func (v stringValue[T]) LogValue() slog.Value {
	switch x := any(v.v).(type) {
	case string:
		return slog.StringValue(x)
	case []byte:
		return slog.StringValue(string(x))
	case []uint16:
		return slog.StringValue(fmt.Sprintf("%v", x))
	default:
		return slog.AnyValue(v.v)
	}
}

// StringValue returns a value logger that renders a width-generic input
// sequence as a string, without formatting it eagerly when disabled.
func StringValue[T constraints.Codeunit](v T) slog.LogValuer { return stringValue[T]{v} }
