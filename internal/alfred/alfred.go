// Package alfred holds the script-filter result types and builds the JSON
// document Alfred reads from standard output.
package alfred

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
)

// IconTypeFile asks Alfred to use the icon of the file at Icon.Path.
const IconTypeFile = "fileicon"

type Icon struct {
	Path string `json:"path"`
	Type string `json:"type,omitempty"`
}

// Item is one result row. Timestamp is the sort key and is never serialized.
type Item struct {
	Title     string  `json:"title"`
	Subtitle  string  `json:"subtitle"`
	Arg       string  `json:"arg"`
	Valid     *bool   `json:"valid,omitempty"`
	Icon      Icon    `json:"icon"`
	Timestamp float64 `json:"-"`
}

type Envelope struct {
	SkipKnowledge bool   `json:"skipknowledge"`
	Items         []Item `json:"items"`
}

// Assemble orders items newest first and wraps them in an envelope. Items
// with equal timestamps keep their relative order. The input slice is
// sorted in place.
func Assemble(items []Item) Envelope {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	if items == nil {
		items = []Item{}
	}
	return Envelope{SkipKnowledge: true, Items: items}
}

// MissingArchive is the single, non-actionable result shown when there is
// no archive database yet.
func MissingArchive(backupKeyword, icon string) Envelope {
	valid := false
	return Envelope{
		SkipKnowledge: true,
		Items: []Item{{
			Title:    "No clipboard archive database found",
			Subtitle: fmt.Sprintf("Please create a backup first by typing ‘%s’ in Alfred", backupKeyword),
			Arg:      "",
			Valid:    &valid,
			Icon:     Icon{Path: icon},
		}},
	}
}

// Write serializes e as a single JSON object.
func (e Envelope) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
