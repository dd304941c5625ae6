package logger

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/pterm/pterm"

	"github.com/slicingmelon/weburl"
)

// Logger is a small wrapper around pterm's prefix printers, adding a
// process-wide debug/verbose toggle and a structured Event builder.
// Grounded on core/utils/logger/logger.go, generalized from the
// bypass-module/debug-token fields to a component/url field pair that
// fits this package's diagnostics (validation errors, probe results).
type Logger struct {
	mu      sync.Mutex
	verbose bool
	debug   bool
}

var DefaultLogger *Logger

func init() {
	DefaultLogger = &Logger{}

	pterm.EnableDebugMessages()

	safeWriter := NewSafeWriter(os.Stdout)
	pterm.Info = *pterm.Info.WithWriter(safeWriter)
	pterm.Debug = *pterm.Debug.WithWriter(safeWriter)
	pterm.Error = *pterm.Error.WithWriter(safeWriter)
	pterm.Warning = *pterm.Warning.WithWriter(safeWriter)
	pterm.Success = *pterm.Success.WithWriter(safeWriter)
}

// Event is a single in-flight log line being built up before it is
// printed; fields are optional and attached via chained setters.
type Event struct {
	logger    *Logger
	printer   pterm.PrefixPrinter
	component string
	url       string
	metadata  map[string]string
}

// SafeWriter serializes writes and normalizes line endings so concurrent
// probe/parse goroutines never interleave partial lines.
type SafeWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewSafeWriter(w io.Writer) *SafeWriter {
	return &SafeWriter{w: w}
}

func (sw *SafeWriter) Write(p []byte) (n int, err error) {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	newP := make([]byte, 0, len(p)+2)
	newP = append(newP, '\r')
	newP = append(newP, p...)
	if !bytes.HasSuffix(newP, []byte("\n")) {
		newP = append(newP, '\n')
	}
	return sw.w.Write(newP)
}

func (l *Logger) newEvent(printer pterm.PrefixPrinter) *Event {
	return &Event{logger: l, printer: printer, metadata: make(map[string]string)}
}

func Info() *Event    { return DefaultLogger.newEvent(pterm.Info) }
func Success() *Event { return DefaultLogger.newEvent(pterm.Success) }
func Error() *Event   { return DefaultLogger.newEvent(pterm.Error) }
func Warning() *Event { return DefaultLogger.newEvent(pterm.Warning) }

func Debug() *Event {
	if !DefaultLogger.IsDebugEnabled() {
		return nil
	}
	return DefaultLogger.newEvent(pterm.Debug)
}

func Verbose() *Event {
	if !DefaultLogger.IsVerboseEnabled() {
		return nil
	}
	return DefaultLogger.newEvent(pterm.Info)
}

// Msgf formats and prints the event. A nil Event (from a disabled Debug
// or Verbose call) is a no-op, letting call sites chain without guards.
func (e *Event) Msgf(format string, args ...any) {
	if e == nil {
		return
	}
	e.logger.mu.Lock()
	defer e.logger.mu.Unlock()

	var meta string
	for k, v := range e.metadata {
		meta += " " + pterm.Bold.Sprint(k) + "=" + v
	}

	var componentStr string
	if e.component != "" {
		componentStr = pterm.FgCyan.Sprintf("[%s] ", e.component)
	}
	var urlStr string
	if e.url != "" {
		urlStr = pterm.FgYellow.Sprintf("[%s] ", e.url)
	}

	message := componentStr + urlStr + format + meta
	e.printer.Printfln(message, args...)
}

func (e *Event) Component(name string) *Event {
	if e == nil {
		return nil
	}
	e.component = name
	return e
}

func (e *Event) URL(u string) *Event {
	if e == nil {
		return nil
	}
	e.url = u
	return e
}

func (e *Event) Metadata(key, value string) *Event {
	if e == nil {
		return nil
	}
	e.metadata[key] = value
	return e
}

// Validation attaches a weburl.ValidationError's code and byte offset as
// structured metadata, so a parse diagnostic keeps its machine-readable
// shape (spec §6.5) instead of being flattened into a single string at
// the call site.
func (e *Event) Validation(ve weburl.ValidationError) *Event {
	if e == nil {
		return nil
	}
	e.metadata["code"] = ve.Code
	e.metadata["offset"] = strconv.Itoa(ve.Offset)
	return e
}

// ValidationMsg logs ve in one call: Validation plus ve.Message as the
// line itself. Intended for use as a weburl.ValidationSink, e.g.
// weburl.ParseWithValidation(raw, base, logger.Warning().ValidationMsg).
func (e *Event) ValidationMsg(ve weburl.ValidationError) {
	if e == nil {
		return
	}
	e.Validation(ve).Msgf("%s", ve.Message)
}

func (l *Logger) EnableDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug = true
}

func (l *Logger) EnableVerbose() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.verbose = true
}

func (l *Logger) IsDebugEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

func (l *Logger) IsVerboseEnabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.verbose
}

func EnableDebug()        { DefaultLogger.EnableDebug() }
func EnableVerbose()      { DefaultLogger.EnableVerbose() }
func IsDebugEnabled() bool   { return DefaultLogger.IsDebugEnabled() }
func IsVerboseEnabled() bool { return DefaultLogger.IsVerboseEnabled() }
