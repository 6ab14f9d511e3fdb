package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}

// Errors groups the non-nil errors under "errors", keyed by position.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.String(strconv.Itoa(i), err.Error()))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Ref records a content reference (path or object key).
func Ref(ref string) slog.Attr {
	return slog.String("ref", ref)
}

func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Reason records a rejection reason. Empty reasons produce an empty Attr.
func Reason(reason string) slog.Attr {
	if reason == "" {
		return slog.Attr{}
	}
	return slog.String("reason", reason)
}

func RunID(id string) slog.Attr {
	return slog.String("run_id", id)
}

func Probe(name string) slog.Attr {
	return slog.String("probe", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}
