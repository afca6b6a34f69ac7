package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// LocalsKey is the fiber.Ctx locals key holding the request-scoped logger.
const LocalsKey = "logger"

var Log zerolog.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

type requestIDKey struct{}

func Init(level, format string) {
	InitWithWriter(os.Stdout, level, format)
}

func InitWithWriter(w io.Writer, level, format string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if format == "json" {
		l = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(lvl)
	}

	Log = l
	zlog.Logger = l
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Log.With().Str("component", name).Logger()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Ctx returns a logger with Request-ID context if available
func Ctx(ctx context.Context) *zerolog.Logger {
	if reqID := RequestID(ctx); reqID != "" {
		l := Log.With().Str("request_id", reqID).Logger()
		return &l
	}
	return &Log
}

// FromFiber returns the request-scoped logger set by the request middleware,
// or the global logger outside of a request.
func FromFiber(c *fiber.Ctx) *zerolog.Logger {
	if l, ok := c.Locals(LocalsKey).(*zerolog.Logger); ok {
		return l
	}
	return &Log
}
