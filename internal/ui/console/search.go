package console

import (
	"fmt"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/gopak/clipsearch/internal/alfred"
)

const pickPageSize = 15

// RunPick lets the user choose one result and prints its full text. Nothing
// is printed when there are no results.
func (c *ConsoleUI) RunPick(env alfred.Envelope) error {
	if len(env.Items) == 0 {
		return nil
	}
	var idx int
	sel := &survey.Select{
		Message:  fmt.Sprintf("%d matches, pick one to print", len(env.Items)),
		Options:  pickLabels(env.Items),
		PageSize: pickPageSize,
		Description: func(_ string, i int) string {
			return env.Items[i].Subtitle
		},
	}
	if err := survey.AskOne(sel, &idx, c.opts...); err != nil {
		return err
	}
	_, err := fmt.Fprint(c.out, env.Items[idx].Arg)
	return err
}

// pickLabels numbers the options so identical titles stay distinct.
func pickLabels(items []alfred.Item) []string {
	labels := make([]string, 0, len(items))
	for i, it := range items {
		labels = append(labels, fmt.Sprintf("%d. %s", i+1, oneLine(it.Title)))
	}
	return labels
}
