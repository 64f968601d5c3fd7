package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerCommand shows text in ov while bubbletea has released the terminal.
// ov opens the tty itself, so the standard streams are ignored.
type pagerCommand struct {
	text string
}

func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.text))
	if err != nil {
		return err
	}

	// leave nothing behind on the UI's screen
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// openPager suspends the UI and pages through rows
func openPager(rows []string) tea.Cmd {
	return openPagerText(strings.Join(rows, "\n") + "\n")
}

func openPagerText(text string) tea.Cmd {
	return tea.Exec(&pagerCommand{text: text}, func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
