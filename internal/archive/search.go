// Package archive reads the clipboard history database written by the
// backup workflow. It never writes to it.
package archive

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	"github.com/gopak/clipsearch/internal/alfred"
	"github.com/gopak/clipsearch/internal/logging"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const searchQuery = `SELECT item, ts, apppath, app FROM clipboard WHERE item LIKE ?`

// Exists reports whether a database file is present at path. Any stat
// failure, including a non-directory parent component or a permission
// error, counts as absent.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dsn(path string) string {
	u := url.URL{Path: path}
	return "file:" + u.EscapedPath() + "?mode=ro"
}

// Search returns every entry whose text contains keyword, unsorted. The
// keyword is normalized first. One read-only connection is opened and
// closed per call.
func Search(ctx context.Context, keyword, dbPath string, f Formatter) ([]alfred.Item, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", dbPath, err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	pattern := "%" + NormalizeKeyword(keyword) + "%"
	logging.Debug("archive query", zap.String("db", dbPath), zap.String("pattern", pattern))

	rows, err := db.QueryContext(ctx, searchQuery, pattern)
	if err != nil {
		return nil, fmt.Errorf("query archive %s: %w", dbPath, err)
	}
	defer rows.Close()

	var items []alfred.Item
	for rows.Next() {
		var (
			text         string
			ts           sql.NullFloat64
			appPath, app sql.NullString
		)
		if err := rows.Scan(&text, &ts, &appPath, &app); err != nil {
			return nil, fmt.Errorf("scan archive row: %w", err)
		}
		items = append(items, f.Item(Record{
			Item:    text,
			TS:      ts.Float64,
			AppPath: appPath.String,
			App:     app.String,
		}))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read archive %s: %w", dbPath, err)
	}
	logging.Info("archive search", zap.String("db", dbPath), zap.Int("matches", len(items)))
	return items, nil
}
