package gui

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/studio3d/engine/core"
)

func TestConsoleKeepsBoundedHistory(t *testing.T) {
	c := NewConsole(3)
	for i := 0; i < 5; i++ {
		c.Addf("line %d", i)
	}

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"line 2", "line 3", "line 4"}, c.Lines())
	assert.Equal(t, "line 2\nline 3\nline 4", c.Text())
}

func TestConsoleSplitsMultilineText(t *testing.T) {
	c := NewConsole(0)
	c.Add("first\nsecond\n")
	c.Addf("%s", "third")

	assert.Equal(t, []string{"first", "second", "third"}, c.Lines())
	assert.True(t, c.AutoScroll)

	c.Clear()
	assert.Zero(t, c.Len())
	assert.Empty(t, c.Text())
}

func TestConsoleLogsLinesVerbatim(t *testing.T) {
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	core.SetLogLevel(core.InfoLevel)
	t.Cleanup(func() { core.SetLogOutput(os.Stderr) })

	c := NewConsole(0)
	c.Add("loaded 50%.obj with 100%d of faces")

	assert.Equal(t, []string{"loaded 50%.obj with 100%d of faces"}, c.Lines())
	assert.Contains(t, buf.String(), "loaded 50%.obj with 100%d of faces")
	assert.NotContains(t, buf.String(), "MISSING")
}
