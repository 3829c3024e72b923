package gui

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/studio3d/engine/containers"
	"github.com/spaghettifunk/studio3d/engine/core"
)

// DefaultConsoleLines is used when the configuration does not set a history size.
const DefaultConsoleLines = 1024

// Console is the log shown inside the studio. It keeps a bounded history and
// mirrors every line to the process logger.
type Console struct {
	lines      *containers.RingQueue[string]
	AutoScroll bool
}

func NewConsole(capacity int) *Console {
	if capacity <= 0 {
		capacity = DefaultConsoleLines
	}
	return &Console{
		lines:      containers.NewRingQueue[string](capacity),
		AutoScroll: true,
	}
}

// Add appends text, one history entry per line. The oldest lines are dropped
// once the history is full.
func (c *Console) Add(text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		c.lines.Push(line)
		core.LogInfo("%s", line)
	}
}

func (c *Console) Addf(format string, args ...interface{}) {
	c.Add(fmt.Sprintf(format, args...))
}

func (c *Console) Clear() {
	c.lines.Clear()
}

func (c *Console) Len() int {
	return c.lines.Len()
}

// Lines returns the history, oldest first.
func (c *Console) Lines() []string {
	out := make([]string, 0, c.lines.Len())
	c.lines.Each(func(line string) {
		out = append(out, line)
	})
	return out
}

// Text is the whole history as one newline separated string.
func (c *Console) Text() string {
	return strings.Join(c.Lines(), "\n")
}
