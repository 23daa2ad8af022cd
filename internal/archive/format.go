package archive

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gopak/clipsearch/internal/alfred"
)

const (
	// Seconds between the Unix epoch and 2001-01-01T00:00:00Z, the epoch
	// the archive stores copy times in.
	referenceEpochOffset = 978307200

	// TitleLimit is the maximum title length in characters.
	TitleLimit = 120

	// TimeLayout renders the hour without a leading zero.
	TimeLayout = "2006-01-02 3:04:05 PM"
)

// Record is one row of the clipboard table.
type Record struct {
	Item    string
	TS      float64
	AppPath string
	App     string
}

// Formatter turns records into result items. A nil Location means local time.
type Formatter struct {
	Location *time.Location
}

// CopiedAt converts an archive timestamp to wall-clock time, rounded to
// the microsecond.
func CopiedAt(ts float64) time.Time {
	micros := int64(math.RoundToEven(ts * 1e6))
	return time.UnixMicro(micros + referenceEpochOffset*1e6)
}

func (f Formatter) location() *time.Location {
	if f.Location == nil {
		return time.Local
	}
	return f.Location
}

func (f Formatter) Item(r Record) alfred.Item {
	return alfred.Item{
		Title:     Title(r.Item),
		Arg:       r.Item,
		Subtitle:  f.Subtitle(r),
		Icon:      alfred.Icon{Path: r.AppPath, Type: alfred.IconTypeFile},
		Timestamp: r.TS,
	}
}

// Title truncates text to TitleLimit characters.
func Title(text string) string {
	if utf8.RuneCountInString(text) <= TitleLimit {
		return text
	}
	n := 0
	for i := range text {
		if n == TitleLimit {
			return text[:i]
		}
		n++
	}
	return text
}

func (f Formatter) Subtitle(r Record) string {
	prefix := ""
	if n := strings.Count(r.Item, "\n"); n > 0 {
		prefix = fmt.Sprintf("%d lines, ", n+1)
	}
	copied := CopiedAt(r.TS).In(f.location()).Format(TimeLayout)
	return fmt.Sprintf("%s%d characters, copied at %s from %s",
		prefix, utf8.RuneCountInString(r.Item), copied, r.App)
}
