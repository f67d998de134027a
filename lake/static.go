package lake

import (
	"archive/zip"
	"context"
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const insertBatchSize = 1000

// LoadStatic imports a GTFS static ZIP file into the lake. TXT files that do
// not correspond to a static table are skipped; columns unknown to the table
// schema are dropped, known columns are inserted by name.
func (l *Lake) LoadStatic(ctx context.Context, zipPath string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return fmt.Errorf("open gtfs zip %s: %w", zipPath, err)
	}
	defer func() { _ = r.Close() }()

	tables := map[string]bool{}
	for _, tbl := range StaticTables {
		tables[tbl] = true
	}
	for _, f := range r.File {
		tbl := strings.TrimSuffix(f.Name, ".txt")
		if tbl == f.Name || !tables[tbl] {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("open %s: %w", f.Name, err)
		}
		err = l.loadTxtFile(ctx, rc, tbl)
		_ = rc.Close()
		if err != nil {
			return fmt.Errorf("load %s: %w", f.Name, err)
		}
	}
	return nil
}

func (l *Lake) loadTxtFile(ctx context.Context, r io.Reader, table string) error {
	existing, err := l.tableColumns(ctx, table)
	if err != nil {
		return err
	}
	known := map[string]bool{}
	for _, c := range existing {
		known[c] = true
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	// Header row decides which CSV columns are kept.
	var headers []string
	var keep []int
	first, err := cr.Read()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	for i, hdr := range first {
		hdr = strings.TrimSpace(strings.TrimPrefix(hdr, "\uFEFF"))
		if known[hdr] {
			headers = append(headers, hdr)
			keep = append(keep, i)
		}
	}
	if len(headers) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(headers)), ",")
	insertStmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(headers, ","), placeholders)

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin load: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	stmt, err := tx.PrepareContext(ctx, insertStmt)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	n := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		args := make([]any, 0, len(keep))
		for _, idx := range keep {
			if idx < len(record) {
				args = append(args, record[idx])
			} else {
				args = append(args, "")
			}
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return fmt.Errorf("insert row %d: %w", n+1, err)
		}
		n++
		if n%insertBatchSize == 0 {
			if err := tx.Commit(); err != nil {
				return fmt.Errorf("commit batch: %w", err)
			}
			tx, err = l.db.BeginTx(ctx, nil)
			if err != nil {
				return fmt.Errorf("begin load: %w", err)
			}
			stmt, err = tx.PrepareContext(ctx, insertStmt)
			if err != nil {
				return fmt.Errorf("prepare insert: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (l *Lake) tableColumns(ctx context.Context, table string) ([]string, error) {
	rows, err := l.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 0", table))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()
	return rows.Columns()
}

// RemoveAgencies deletes agencies whose agency_id matches the SQL LIKE
// pattern, optionally followed by a dependent-object cleanup.
func (l *Lake) RemoveAgencies(ctx context.Context, pattern string, cascade bool) error {
	if _, err := l.db.ExecContext(ctx, "DELETE FROM agency WHERE agency_id LIKE ?", pattern); err != nil {
		return fmt.Errorf("remove agencies %s: %w", pattern, err)
	}
	if cascade {
		return l.RemoveDependentObjects(ctx)
	}
	return nil
}

// RemoveRoutes deletes routes whose route_id matches the SQL LIKE pattern.
func (l *Lake) RemoveRoutes(ctx context.Context, pattern string, cascade bool) error {
	if _, err := l.db.ExecContext(ctx, "DELETE FROM routes WHERE route_id LIKE ?", pattern); err != nil {
		return fmt.Errorf("remove routes %s: %w", pattern, err)
	}
	if cascade {
		return l.RemoveDependentObjects(ctx)
	}
	return nil
}

// RemoveTrips deletes trips whose trip_id matches the SQL LIKE pattern.
func (l *Lake) RemoveTrips(ctx context.Context, pattern string, cascade bool) error {
	if _, err := l.db.ExecContext(ctx, "DELETE FROM trips WHERE trip_id LIKE ?", pattern); err != nil {
		return fmt.Errorf("remove trips %s: %w", pattern, err)
	}
	if cascade {
		return l.RemoveDependentObjects(ctx)
	}
	return nil
}

// RemoveDependentObjects deletes static rows left orphaned by a removal:
// routes without an agency, trips without a route, stop times without a
// trip, and so on down the reference chain.
func (l *Lake) RemoveDependentObjects(ctx context.Context) error {
	stmts := []string{
		"DELETE FROM routes WHERE agency_id NOT IN (SELECT agency_id FROM agency)",
		"DELETE FROM trips WHERE route_id NOT IN (SELECT route_id FROM routes)",
		"DELETE FROM stop_times WHERE trip_id NOT IN (SELECT trip_id FROM trips)",
		"DELETE FROM stops WHERE (location_type = '0' OR location_type = '') AND stop_id NOT IN (SELECT stop_id FROM stop_times)",
		"DELETE FROM stops WHERE location_type = '1' AND stop_id NOT IN (SELECT parent_station FROM stops)",
		"DELETE FROM shapes WHERE shape_id NOT IN (SELECT shape_id FROM trips)",
		"DELETE FROM transfers WHERE from_route_id NOT IN (SELECT route_id FROM routes) OR to_route_id NOT IN (SELECT route_id FROM routes)",
		"DELETE FROM transfers WHERE from_trip_id NOT IN (SELECT trip_id FROM trips) OR to_trip_id NOT IN (SELECT trip_id FROM trips)",
		"DELETE FROM calendar WHERE service_id NOT IN (SELECT service_id FROM trips)",
		"DELETE FROM calendar_dates WHERE service_id NOT IN (SELECT service_id FROM trips)",
	}
	for _, stmt := range stmts {
		if _, err := l.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("remove dependent objects: %w", err)
		}
	}
	return nil
}

// ExportStatic writes every static table as CSV. If output is an existing
// directory the files are written into it; if it ends with .zip a GTFS ZIP
// archive is created.
func (l *Lake) ExportStatic(ctx context.Context, output string) error {
	if info, err := os.Stat(output); err == nil && info.IsDir() {
		for _, tbl := range StaticTables {
			f, err := os.Create(filepath.Join(output, tbl+".txt"))
			if err != nil {
				return fmt.Errorf("create %s.txt: %w", tbl, err)
			}
			err = l.exportTable(ctx, f, tbl)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("export %s: %w", tbl, err)
			}
		}
		return nil
	}
	if strings.HasSuffix(strings.ToLower(output), ".zip") {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer func() { _ = f.Close() }()
		zw := zip.NewWriter(f)
		for _, tbl := range StaticTables {
			w, err := zw.Create(tbl + ".txt")
			if err != nil {
				return fmt.Errorf("create zip entry %s.txt: %w", tbl, err)
			}
			if err := l.exportTable(ctx, w, tbl); err != nil {
				return fmt.Errorf("export %s: %w", tbl, err)
			}
		}
		return zw.Close()
	}
	return fmt.Errorf("export destination %s is neither a directory nor a .zip file", output)
}

func (l *Lake) exportTable(ctx context.Context, w io.Writer, table string) error {
	rows, err := l.db.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s", table))
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	values := make([]sql.NullString, len(cols))
	scan := make([]any, len(cols))
	for i := range values {
		scan[i] = &values[i]
	}
	record := make([]string, len(cols))
	for rows.Next() {
		if err := rows.Scan(scan...); err != nil {
			return err
		}
		for i, v := range values {
			if v.Valid {
				record[i] = v.String
			} else {
				record[i] = ""
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return rows.Err()
}
