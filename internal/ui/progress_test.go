package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vhdlfmt/internal/driver"
)

func TestApplyEventTracksStatus(t *testing.T) {
	files := []string{"a.vhd", "b.vhd"}
	m := NewProgressModel("formatting", files, nil).(*progressModel)

	m.applyEvent(driver.Event{File: "a.vhd", Stage: driver.StageFormat, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "b.vhd", Stage: driver.StageWrite, Status: driver.StatusCached})
	m.applyEvent(driver.Event{File: "unknown.vhd", Stage: driver.StageParse, Status: driver.StatusError})

	assert.Equal(t, "formatting", m.items[0].status)
	assert.False(t, m.items[0].finished)
	assert.Equal(t, "cached", m.items[1].status)
	assert.True(t, m.items[1].finished)

	finished, failed := m.counts()
	assert.Equal(t, 1, finished)
	assert.Equal(t, 0, failed)

	view := m.View()
	assert.Contains(t, view, "formatting 1/2")
	assert.Contains(t, view, "a.vhd")
}

func TestVisibleItemsForLargeRuns(t *testing.T) {
	files := make([]string, 40)
	for i := range files {
		files[i] = fmt.Sprintf("f%02d.vhd", i)
	}
	m := NewProgressModel("fmt", files, nil).(*progressModel)
	m.applyEvent(driver.Event{File: "f03.vhd", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{File: "f07.vhd", Stage: driver.StageParse, Status: driver.StatusError})
	m.applyEvent(driver.Event{File: "f08.vhd", Stage: driver.StageWrite, Status: driver.StatusDone})

	visible := m.visibleItems()
	require.Len(t, visible, 2)
	assert.Equal(t, "f03.vhd", visible[0].path)
	assert.Equal(t, "f07.vhd", visible[1].path)
	assert.Contains(t, m.View(), "1 failed")
}

func TestDoneMessageQuits(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("fmt", []string{"a.vhd"}, events).(*progressModel)
	msg := m.listenForEvent()()
	_, ok := msg.(doneMsg)
	require.True(t, ok)
	next, cmd := m.Update(msg)
	assert.NotNil(t, cmd)
	assert.True(t, next.(*progressModel).done)
	assert.True(t, strings.HasPrefix(stripANSI(m.View()), "done: fmt 0/1"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "日本...", truncate("日本語のファイル", 7))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
