package framework

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// Logger is the minimal logging interface used throughout the test harness. *log.Logger
// satisfies it.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

func NullLogger() Logger { return nullLogger{} }

// WriterLogger writes each message immediately, with a timestamp and prefix, to an io.Writer.
type WriterLogger struct {
	out    io.Writer
	prefix string
	lock   sync.Mutex
}

func NewWriterLogger(out io.Writer, prefix string) *WriterLogger {
	return &WriterLogger{out: out, prefix: prefix}
}

func (l *WriterLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	writeMessage(l.out, l.prefix, time.Now(), fmt.Sprintf(message, args...))
}

type CapturedMessage struct {
	Time    time.Time
	Message string
}

type CapturedOutput []CapturedMessage

// CapturingLogger keeps messages in memory so they can be shown only if a test case fails.
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	m := CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)}
	l.lock.Lock()
	l.output = append(l.output, m)
	l.lock.Unlock()
}

func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	defer l.lock.Unlock()
	return append(CapturedOutput(nil), l.output...)
}

// Dump writes every captured message to dest. Continuation lines of a multi-line message, such
// as a response body, are indented under the first line.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		writeMessage(dest, prefix, m.Time, m.Message)
	}
}

func writeMessage(dest io.Writer, prefix string, t time.Time, message string) {
	header := fmt.Sprintf("%s[%s] ", prefix, t.Format(timestampFormat))
	lines := strings.Split(strings.TrimRight(message, "\n"), "\n")
	fmt.Fprintf(dest, "%s%s\n", header, lines[0])
	indent := strings.Repeat(" ", len(header))
	for _, line := range lines[1:] {
		fmt.Fprintf(dest, "%s%s\n", indent, line)
	}
}
