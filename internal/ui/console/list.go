package console

import (
	"fmt"
	"strings"

	"github.com/gopak/clipsearch/internal/alfred"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

const titleWidth = 60

// RunTable prints the assembled results as a table, newest first.
func (c *ConsoleUI) RunTable(env alfred.Envelope) error {
	_, err := fmt.Fprint(c.out, renderTable(env.Items))
	return err
}

func renderTable(items []alfred.Item) string {
	var b strings.Builder
	b.WriteString(text.Bold.Sprintf("%d matches", len(items)) + "\n")
	if len(items) == 0 {
		return b.String()
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Title", "Details"})
	tw.SetColumnConfigs([]table.ColumnConfig{{Name: "Title", WidthMax: titleWidth}})
	for i, it := range items {
		tw.AppendRow(table.Row{i + 1, oneLine(it.Title), it.Subtitle})
	}
	b.WriteString(tw.Render())
	b.WriteString("\n")
	return b.String()
}

// oneLine keeps multi-line clips on a single table or menu row.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", " ⏎ ")
}
