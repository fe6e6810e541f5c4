package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/guttosm/bizdays/internal/domain/models"
	"github.com/guttosm/bizdays/internal/storage"
)

// expectedHeaders enforces strict column ordering for holiday files.
// If the header doesn't match EXACTLY (order + count), the import must fail.
var expectedHeaders = []string{
	"calendar",
	"holiday",
}

// parseAndPersistFile opens, validates, parses, and persists one file in batches.
// It fails on:
//   - header not matching expected order/length
//   - rows naming a calendar other than the file's calendar
//   - malformed dates
//   - unrecoverable I/O errors
//
// Parameters:
//   - ctx:      context for cancellation/timeouts.
//   - path:     file path.
//   - calName:  calendar name derived from the filename.
//   - repo:     repository for DB insertion.
//   - batch:    batch size for inserts (e.g., 5000).
func parseAndPersistFile(ctx context.Context, path string, calName string, repo storage.CalendarRepository, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we’ll check explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expectedHeaders[i] {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	// Parse rows streaming; flush batches to DB.
	buf := make([]models.Holiday, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertHolidaysBatch(buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		// Enforce structure: exactly 2 columns. If not, fail the entire import.
		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		h, err := recordToHoliday(rec, calName)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, h)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	// Final flush
	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

// recordToHoliday converts a single CSV record (already validated length==2)
// into a models.Holiday. It is STRICT: the calendar column must match the
// file's calendar and the holiday column must be a "2006-01-02" date.
//
// Column order:
//
//	0 calendar → CalendarName (string, must equal calName)
//	1 holiday  → Day (DATE, "2006-01-02")
func recordToHoliday(rec []string, calName string) (models.Holiday, error) {
	var h models.Holiday

	// calendar (0)
	name := strings.TrimSpace(rec[0])
	if name != calName {
		return h, fmt.Errorf("calendar %q does not match file calendar %q", name, calName)
	}
	h.CalendarName = name

	// holiday (1)
	s := strings.TrimSpace(rec[1])
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return h, fmt.Errorf("invalid holiday date: %v", err)
	}
	h.Day = d

	return h, nil
}
