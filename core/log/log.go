// Package log provides a small context-carried logging facade. It is a
// condensed form of this codebase's usual logging package: enough to filter
// by severity, attach a structured "object" value to a record, and redirect
// output through a swappable Handler — which is what the user-transform
// module ABI's LogMessage hook needs to bridge into a host process's own
// logging.
package log

import (
	"context"
	"fmt"
	"os"
)

// Record is a single log entry.
type Record struct {
	Severity Severity
	Message  string
	Object   interface{} // optional structured payload, e.g. a dropped command
}

// Handler receives log records. The default handler writes to stderr.
type Handler func(Record)

type loggerKeyTy string

const loggerKey = loggerKeyTy("vktrace-log-handler")

// Put attaches a Handler to ctx, returning the derived context.
func Put(ctx context.Context, h Handler) context.Context {
	return context.WithValue(ctx, loggerKey, h)
}

func handlerFrom(ctx context.Context) Handler {
	if h, ok := ctx.Value(loggerKey).(Handler); ok && h != nil {
		return h
	}
	return defaultHandler
}

func defaultHandler(r Record) {
	if r.Object != nil {
		fmt.Fprintf(os.Stderr, "[%s] %s (%+v)\n", r.Severity, r.Message, r.Object)
		return
	}
	fmt.Fprintf(os.Stderr, "[%s] %s\n", r.Severity, r.Message)
}

func emit(ctx context.Context, sev Severity, obj interface{}, format string, args ...interface{}) {
	handlerFrom(ctx)(Record{Severity: sev, Message: fmt.Sprintf(format, args...), Object: obj})
}

// D logs a debug-severity message.
func D(ctx context.Context, format string, args ...interface{}) { emit(ctx, Debug, nil, format, args...) }

// I logs an info-severity message.
func I(ctx context.Context, format string, args ...interface{}) { emit(ctx, Info, nil, format, args...) }

// W logs a warning-severity message.
func W(ctx context.Context, format string, args ...interface{}) {
	emit(ctx, Warning, nil, format, args...)
}

// E logs an error-severity message: recoverable, the triggering call is dropped.
func E(ctx context.Context, format string, args ...interface{}) {
	emit(ctx, Error, nil, format, args...)
}

// EObj logs an error-severity message with a structured object attached —
// used when the state block drops a deserialised call against an unknown
// handle (§7: "logged as an error; the call is dropped").
func EObj(ctx context.Context, obj interface{}, format string, args ...interface{}) {
	emit(ctx, Error, obj, format, args...)
}

// F logs a critical-severity message and aborts the process, matching the
// "fatal errors abort the process" propagation policy of §7.
func F(ctx context.Context, format string, args ...interface{}) {
	emit(ctx, Critical, nil, format, args...)
	panic(fmt.Sprintf(format, args...))
}
