package importer

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/bizdays/internal/logger"
	"github.com/guttosm/bizdays/internal/storage"
)

const (
	fileSuffix       = "_HOLIDAYS.csv"
	defaultBatchSize = 5000
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.CalendarRepository {
	return storage.NewCalendarRepository(db)
}

// ImportDirectory loads every "<NAME>_HOLIDAYS.csv" file found in dir into Postgres.
//
//   - dir: directory containing .csv holiday files.
//   - db:  open *sql.DB (PostgreSQL).
//
// Behavior:
//   - Expects one file per calendar with name "<NAME>_HOLIDAYS.csv"; <NAME> becomes
//     the calendar name.
//   - Uses a concurrency limit based on CPU count (min(7, NumCPU)).
//   - For each file, parses & inserts holidays in batches via repository.
//   - A calendar that already has stored holidays is skipped, unless force is set,
//     in which case its rows are deleted and reloaded.
//   - If any file returns error, cancels the rest and returns that error.
//
// Returns:
//   - error: first error encountered (if any).
func ImportDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	// use indirection to allow tests to swap repository constructor
	repo := repoCtor(db)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		if strings.TrimSuffix(name, fileSuffix) == "" {
			return fmt.Errorf("file %s: empty calendar name", name)
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)

	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", fileSuffix, dir)
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("import start")

	// Concurrency: default to min(7, NumCPU), or use provided clamp(1..7)
	maxParallel := 7
	if parallel > 0 {
		if parallel > 7 {
			parallel = 7
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("import configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			calName := strings.TrimSuffix(base, fileSuffix)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Str("calendar", calName).Msg("file start")

			// Idempotency: skip if already loaded, unless force
			exists, err := repo.HasHolidaysForCalendar(calName)
			if err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("check stored holidays failed")
				return fmt.Errorf("file %s: check stored holidays: %w", f, err)
			}
			if exists && !force {
				logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Bool("skipped", true).Msg("already imported")
				return nil
			}
			if exists && force {
				// Delete existing rows for that calendar and reload
				if err := repo.DeleteHolidaysByCalendar(calName); err != nil {
					logger.L().Error().Str("file", base).Err(err).Msg("delete existing failed")
					return fmt.Errorf("file %s: delete existing: %w", f, err)
				}
			}

			// Process each file; this function:
			// - validates header strictly
			// - requires every row to name the file's calendar
			// - inserts in batches (defaultBatchSize)
			total, err := parseAndPersistFile(gctx, f, calName, repo, defaultBatchSize)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}
			if err := repo.UpsertCalendar(calName, fmt.Sprintf("imported from %s", base)); err != nil {
				logger.L().Error().Str("file", base).Err(err).Msg("upsert calendar failed")
				return fmt.Errorf("file %s: upsert calendar: %w", f, err)
			}
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", total).Dur("elapsed", time.Since(start)).Bool("force", force).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return nil
}
