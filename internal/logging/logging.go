package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logfile *os.File
var logger = zap.NewNop()
var verbose bool
var stderr io.Writer = os.Stderr

// DefaultPath is the log file used when the config leaves log_file empty.
func DefaultPath(cfgDir string) string {
	return filepath.Join(cfgDir, "logs", "clipsearch.log")
}

// Init opens path for appending and routes all log calls to it as JSON lines.
// Standard output is never written to.
func Init(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	Close()
	logfile = f
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	logger = zap.New(zapcore.NewCore(enc, zapcore.AddSync(f), zapcore.DebugLevel))
	return nil
}

func Close() {
	_ = logger.Sync()
	logger = zap.NewNop()
	if logfile != nil {
		_ = logfile.Close()
		logfile = nil
	}
}

// color wraps s in an ANSI sequence only when stderr is a terminal. Alfred's
// debugger shows script stderr verbatim.
func color(code, s string) string {
	if !isTerminal(stderr) {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func Info(msg string, fields ...zap.Field) {
	logger.Info(msg, fields...)
}

// Error writes msg to stderr and to the log file.
func Error(msg string, fields ...zap.Field) {
	_, _ = fmt.Fprintln(stderr, color("31", msg))
	logger.Error(msg, fields...)
}

// SetVerbose toggles mirroring of debug lines to stderr.
func SetVerbose(v bool) { verbose = v }

// SetOutput redirects the stderr mirror, mainly for tests.
func SetOutput(w io.Writer) { stderr = w }

func Debug(msg string, fields ...zap.Field) {
	logger.Debug(msg, fields...)
	if !verbose {
		return
	}
	_, _ = fmt.Fprintln(stderr, color("90", msg))
}
