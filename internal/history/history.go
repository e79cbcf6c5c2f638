// Package history persists finished comparison runs to a SQLite database so
// timings taken on different days or machines can be compared later.
package history

import (
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
	_ "github.com/mattn/go-sqlite3"

	"github.com/Koliatoday/goit-algo-hw-04/internal/bench"
)

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the run-history database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at TEXT NOT NULL,
		cpu TEXT NOT NULL,
		go_version TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create runs table: %v", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS timings (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		size INTEGER NOT NULL,
		algorithm TEXT NOT NULL,
		seconds REAL NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create timings table: %v", err)
	}
	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS idx_timings_run ON timings(run_id)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %v", err)
	}

	_, err = db.Exec("PRAGMA journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to set journal mode: %v", err)
	}
	_, err = db.Exec("PRAGMA synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to set synchronous mode: %v", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun stores one finished comparison in a single transaction and returns
// the new run id.
func (s *Store) SaveRun(results []bench.Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %v", err)
	}

	res, err := tx.Exec("INSERT INTO runs (created_at, cpu, go_version) VALUES (?, ?, ?)",
		time.Now().UTC().Format(time.RFC3339), cpuid.CPU.BrandName, runtime.Version())
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to insert run: %v", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to read run id: %v", err)
	}

	stmt, err := tx.Prepare("INSERT INTO timings (run_id, size, algorithm, seconds) VALUES (?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return 0, fmt.Errorf("failed to prepare insert: %v", err)
	}
	defer stmt.Close()

	for _, entry := range results {
		rows := []struct {
			algorithm string
			seconds   float64
		}{
			{"insertion_sort", entry.InsertionSort},
			{"merge_sort", entry.MergeSort},
			{"sort_in_place", entry.SortInPlace},
			{"sorted_copy", entry.SortedCopy},
		}
		for _, row := range rows {
			if _, err := stmt.Exec(runID, entry.Size, row.algorithm, row.seconds); err != nil {
				tx.Rollback()
				return 0, fmt.Errorf("failed to insert timing for size %d: %v", entry.Size, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %v", err)
	}
	return runID, nil
}

// LoadRun reassembles the results of a stored run, ordered by size.
func (s *Store) LoadRun(runID int64) ([]bench.Result, error) {
	rows, err := s.db.Query(
		"SELECT size, algorithm, seconds FROM timings WHERE run_id = ? ORDER BY size", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query timings: %v", err)
	}
	defer rows.Close()

	var results []bench.Result
	bySize := map[int]int{}
	for rows.Next() {
		var size int
		var algorithm string
		var seconds float64
		if err := rows.Scan(&size, &algorithm, &seconds); err != nil {
			return nil, fmt.Errorf("failed to scan timing: %v", err)
		}

		idx, ok := bySize[size]
		if !ok {
			results = append(results, bench.Result{Size: size})
			idx = len(results) - 1
			bySize[size] = idx
		}
		switch algorithm {
		case "insertion_sort":
			results[idx].InsertionSort = seconds
		case "merge_sort":
			results[idx].MergeSort = seconds
		case "sort_in_place":
			results[idx].SortInPlace = seconds
		case "sorted_copy":
			results[idx].SortedCopy = seconds
		default:
			return nil, fmt.Errorf("unknown algorithm %q in run %d", algorithm, runID)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read timings: %v", err)
	}
	if results == nil {
		return nil, fmt.Errorf("no run with id %d", runID)
	}
	return results, nil
}

// RunIDs lists stored runs, oldest first.
func (s *Store) RunIDs() ([]int64, error) {
	rows, err := s.db.Query("SELECT id FROM runs ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %v", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan run id: %v", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
