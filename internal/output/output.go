package output

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Output is the sink handed to every check. Checks classify each line so
// the report reads uniformly regardless of which check produced it.
type Output interface {
	Title(format string, args ...interface{})
	OK(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warning(format string, args ...interface{})
	Vuln(format string, args ...interface{})
	Error(format string, args ...interface{})
	Println(s string)
	Printf(format string, args ...interface{})
}

const (
	LevelTitle   = "title"
	LevelOK      = "ok"
	LevelInfo    = "info"
	LevelWarning = "warning"
	LevelVuln    = "vuln"
	LevelError   = "error"
	LevelText    = "text"
)

func render(level, message string) string {
	switch level {
	case LevelTitle:
		return "\n" + message
	case LevelOK:
		return "    [ OK ] " + message
	case LevelInfo:
		return "    [INFO] " + message
	case LevelWarning:
		return "    [WARN] " + message
	case LevelVuln:
		return "    [VULN] " + message
	case LevelError:
		return "  [ERROR] " + message
	default:
		return message
	}
}

type StreamingOutput struct {
	writer io.Writer
	mu     sync.Mutex
}

func NewStreamingOutput(writer io.Writer) *StreamingOutput {
	if writer == nil {
		writer = os.Stdout
	}
	return &StreamingOutput{writer: writer}
}

func (o *StreamingOutput) emit(level, format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.writer, render(level, fmt.Sprintf(format, args...)))
}

func (o *StreamingOutput) Title(format string, args ...interface{}) {
	o.emit(LevelTitle, format, args...)
}

func (o *StreamingOutput) OK(format string, args ...interface{}) {
	o.emit(LevelOK, format, args...)
}

func (o *StreamingOutput) Info(format string, args ...interface{}) {
	o.emit(LevelInfo, format, args...)
}

func (o *StreamingOutput) Warning(format string, args ...interface{}) {
	o.emit(LevelWarning, format, args...)
}

func (o *StreamingOutput) Vuln(format string, args ...interface{}) {
	o.emit(LevelVuln, format, args...)
}

func (o *StreamingOutput) Error(format string, args ...interface{}) {
	o.emit(LevelError, format, args...)
}

func (o *StreamingOutput) Println(s string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintln(o.writer, s)
}

func (o *StreamingOutput) Printf(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	fmt.Fprintf(o.writer, format, args...)
}

type Line struct {
	Level   string
	Message string
}

// BufferedOutput collects a single check's lines in memory so the runner
// can flush them to the real stream in one contiguous block.
type BufferedOutput struct {
	lines []Line
	mu    sync.Mutex
}

func NewBufferedOutput() *BufferedOutput {
	return &BufferedOutput{lines: make([]Line, 0)}
}

func (o *BufferedOutput) append(level, format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lines = append(o.lines, Line{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (o *BufferedOutput) Title(format string, args ...interface{}) {
	o.append(LevelTitle, format, args...)
}

func (o *BufferedOutput) OK(format string, args ...interface{}) {
	o.append(LevelOK, format, args...)
}

func (o *BufferedOutput) Info(format string, args ...interface{}) {
	o.append(LevelInfo, format, args...)
}

func (o *BufferedOutput) Warning(format string, args ...interface{}) {
	o.append(LevelWarning, format, args...)
}

func (o *BufferedOutput) Vuln(format string, args ...interface{}) {
	o.append(LevelVuln, format, args...)
}

func (o *BufferedOutput) Error(format string, args ...interface{}) {
	o.append(LevelError, format, args...)
}

func (o *BufferedOutput) Println(s string) {
	o.append(LevelText, "%s", s)
}

func (o *BufferedOutput) Printf(format string, args ...interface{}) {
	o.append(LevelText, format, args...)
}

// Flush writes every buffered line to the writer. The caller is expected
// to hold whatever lock serializes access to the real stream.
func (o *BufferedOutput) Flush(writer io.Writer) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, line := range o.lines {
		fmt.Fprintln(writer, render(line.Level, line.Message))
	}
}

func (o *BufferedOutput) Lines() []Line {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Line{}, o.lines...)
}

// NoOpOutput is a no-op implementation for tests
type NoOpOutput struct{}

func NewNoOpOutput() *NoOpOutput {
	return &NoOpOutput{}
}

func (o *NoOpOutput) Title(format string, args ...interface{})   {}
func (o *NoOpOutput) OK(format string, args ...interface{})      {}
func (o *NoOpOutput) Info(format string, args ...interface{})    {}
func (o *NoOpOutput) Warning(format string, args ...interface{}) {}
func (o *NoOpOutput) Vuln(format string, args ...interface{})    {}
func (o *NoOpOutput) Error(format string, args ...interface{})   {}
func (o *NoOpOutput) Println(s string)                           {}
func (o *NoOpOutput) Printf(format string, args ...interface{})  {}
