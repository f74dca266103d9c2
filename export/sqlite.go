// Package export saves document snapshots as SQLite databases for
// inspection with regular database tools.
package export

import (
	"errors"
	"fmt"
	"os"
	"time"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"ftc/frames"
	"ftc/geometry"
)

const schema = `
CREATE TABLE document (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	exported_at TEXT NOT NULL
);
CREATE TABLE pages (
	page   INTEGER PRIMARY KEY,
	width  REAL NOT NULL,
	height REAL NOT NULL
);
CREATE TABLE frames (
	handle        INTEGER PRIMARY KEY,
	page          INTEGER NOT NULL REFERENCES pages(page),
	idx           INTEGER NOT NULL,
	bounds_top    REAL NOT NULL,
	bounds_left   REAL NOT NULL,
	bounds_bottom REAL NOT NULL,
	bounds_right  REAL NOT NULL,
	label         TEXT NOT NULL,
	content       TEXT NOT NULL,
	UNIQUE (page, idx)
);
CREATE TABLE links (
	src    INTEGER PRIMARY KEY,
	dst    INTEGER NOT NULL,
	broken INTEGER NOT NULL
);
CREATE VIEW chains AS
	SELECT l.src, fs.page AS src_page, fs.idx AS src_idx, l.dst, fd.page AS dst_page, fd.idx AS dst_idx
	FROM links l LEFT JOIN frames fs ON fs.handle = l.src LEFT JOIN frames fd ON fd.handle = l.dst;
`

// Serialize builds database image from snapshot.
func Serialize(s frames.Snapshot) (data []byte, err error) {
	conn, err := sqlite.OpenConn(":memory:", sqlite.OpenReadWrite, sqlite.OpenMemory)
	if err != nil {
		return nil, fmt.Errorf("open in-memory db: %w", err)
	}
	defer conn.Close()

	if err := sqlitex.ExecuteScript(conn, schema, nil); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := fill(conn, s); err != nil {
		return nil, err
	}
	if data, err = conn.Serialize("main"); err != nil {
		return nil, fmt.Errorf("serialize db: %w", err)
	}
	return data, nil
}

func fill(conn *sqlite.Conn, s frames.Snapshot) (err error) {
	defer sqlitex.Transaction(conn)(&err)

	if err := sqlitex.Execute(conn, `INSERT INTO document (id, name, exported_at) VALUES (?, ?, ?)`,
		&sqlitex.ExecOptions{Args: []any{s.ID, s.Name, time.Now().UTC().Format(time.RFC3339)}}); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}

	live := make(map[frames.Handle]bool)
	for pi, p := range s.Pages {
		if err := sqlitex.Execute(conn, `INSERT INTO pages (page, width, height) VALUES (?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{pi, p.Size.Width, p.Size.Height}}); err != nil {
			return fmt.Errorf("insert page %d: %w", pi, err)
		}
		for _, f := range p.Frames {
			live[f.Handle] = true
			if err := sqlitex.Execute(conn, `INSERT INTO frames
				(handle, page, idx, bounds_top, bounds_left, bounds_bottom, bounds_right, label, content)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				&sqlitex.ExecOptions{Args: []any{
					int64(f.Handle), f.Page, f.Index,
					f.Bounds.Top, f.Bounds.Left, f.Bounds.Bottom, f.Bounds.Right,
					f.Label, f.Content,
				}}); err != nil {
				return fmt.Errorf("insert frame %s: %w", f.Loc, err)
			}
		}
	}
	for _, l := range s.Links {
		broken := 0
		if !live[l.From] || !live[l.To] {
			broken = 1
		}
		if err := sqlitex.Execute(conn, `INSERT INTO links (src, dst, broken) VALUES (?, ?, ?)`,
			&sqlitex.ExecOptions{Args: []any{int64(l.From), int64(l.To), broken}}); err != nil {
			return fmt.Errorf("insert link %s -> %s: %w", l.From, l.To, err)
		}
	}
	return nil
}

// Save writes snapshot database to path. Existing file is replaced only when
// overwrite is requested.
func Save(path string, s frames.Snapshot, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", path)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	data, err := Serialize(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("unable to write database: %w", err)
	}
	return nil
}

// Load reads snapshot back from database written by Save.
func Load(path string) (frames.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return frames.Snapshot{}, fmt.Errorf("unable to read database: %w", err)
	}
	return Deserialize(data)
}

// Deserialize restores snapshot from database image.
func Deserialize(data []byte) (frames.Snapshot, error) {
	conn, err := sqlite.OpenConn(":memory:", sqlite.OpenReadWrite, sqlite.OpenMemory)
	if err != nil {
		return frames.Snapshot{}, fmt.Errorf("open in-memory db: %w", err)
	}
	defer conn.Close()

	if err := conn.Deserialize("main", data); err != nil {
		return frames.Snapshot{}, fmt.Errorf("deserialize db: %w", err)
	}

	s := frames.Snapshot{Pages: []frames.PageSnapshot{}, Links: []frames.Link{}}
	err = sqlitex.Execute(conn, `SELECT id, name FROM document`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			s.ID, s.Name = stmt.ColumnText(0), stmt.ColumnText(1)
			return nil
		}})
	if err != nil {
		return frames.Snapshot{}, fmt.Errorf("read document: %w", err)
	}

	err = sqlitex.Execute(conn, `SELECT width, height FROM pages ORDER BY page`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			s.Pages = append(s.Pages, frames.PageSnapshot{
				Size:   geometry.PageSize{Width: stmt.ColumnFloat(0), Height: stmt.ColumnFloat(1)},
				Frames: []frames.Frame{},
			})
			return nil
		}})
	if err != nil {
		return frames.Snapshot{}, fmt.Errorf("read pages: %w", err)
	}

	next := make(map[frames.Handle]frames.Handle)
	prev := make(map[frames.Handle]frames.Handle)
	err = sqlitex.Execute(conn, `SELECT src, dst FROM links ORDER BY src`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			l := frames.Link{From: frames.Handle(stmt.ColumnInt64(0)), To: frames.Handle(stmt.ColumnInt64(1))}
			next[l.From], prev[l.To] = l.To, l.From
			s.Links = append(s.Links, l)
			return nil
		}})
	if err != nil {
		return frames.Snapshot{}, fmt.Errorf("read links: %w", err)
	}

	err = sqlitex.Execute(conn, `SELECT handle, page, idx, bounds_top, bounds_left, bounds_bottom, bounds_right, label, content
		FROM frames ORDER BY page, idx`,
		&sqlitex.ExecOptions{ResultFunc: func(stmt *sqlite.Stmt) error {
			h := frames.Handle(stmt.ColumnInt64(0))
			f := frames.Frame{
				Ref: frames.Ref{
					Loc:    frames.Loc{Page: stmt.ColumnInt(1), Index: stmt.ColumnInt(2)},
					Handle: h,
				},
				Bounds: geometry.Bounds{
					Top:    stmt.ColumnFloat(3),
					Left:   stmt.ColumnFloat(4),
					Bottom: stmt.ColumnFloat(5),
					Right:  stmt.ColumnFloat(6),
				},
				Label:   stmt.ColumnText(7),
				Content: stmt.ColumnText(8),
				Next:    next[h],
				Prev:    prev[h],
			}
			if f.Page < 0 || f.Page >= len(s.Pages) {
				return fmt.Errorf("frame %s refers to missing page %d", h, f.Page)
			}
			s.Pages[f.Page].Frames = append(s.Pages[f.Page].Frames, f)
			return nil
		}})
	if err != nil {
		return frames.Snapshot{}, fmt.Errorf("read frames: %w", err)
	}
	return s, nil
}
