package console

import (
	"io"
	"os"

	survey "github.com/AlecAivazis/survey/v2"
)

// ConsoleUI renders search results for a human at a terminal instead of
// for Alfred.
type ConsoleUI struct {
	out  io.Writer
	opts []survey.AskOpt
}

func NewConsoleUI(out io.Writer, opts ...survey.AskOpt) *ConsoleUI {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleUI{out: out, opts: opts}
}
