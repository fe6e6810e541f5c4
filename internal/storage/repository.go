package storage

import (
	"database/sql"
	"time"

	"github.com/guttosm/bizdays/internal/domain/models"
	pq "github.com/lib/pq"
)

// CalendarRepository defines contract for DB operations on custom calendars.
type CalendarRepository interface {
	ListCalendars() ([]models.CalendarInfo, error)
	GetHolidays(calendarName string) ([]time.Time, error)
	UpsertCalendar(name string, description string) error
	InsertHolidaysBatch(holidays []models.Holiday) error
	HasHolidaysForCalendar(calendarName string) (bool, error)
	DeleteHolidaysByCalendar(calendarName string) error
}

type calendarRepository struct {
	db *sql.DB
}

func NewCalendarRepository(db *sql.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

// InsertHolidaysBatch inserts multiple holiday rows into DB in a single transaction.
func (r *calendarRepository) InsertHolidaysBatch(holidays []models.Holiday) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.Exec(`SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.Prepare(pq.CopyIn(
		"holidays",
		"calendar_name",
		"holiday",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	// helper to map zero-value dates to NULL (nil)
	toNullDate := func(d time.Time) interface{} {
		if d.IsZero() {
			return nil
		}
		return d
	}

	for _, rec := range holidays {
		if _, err := stmt.Exec(
			rec.CalendarName,
			toNullDate(rec.Day),
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.Exec(); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasHolidaysForCalendar checks if any holidays were already stored for a given calendar.
func (r *calendarRepository) HasHolidaysForCalendar(calendarName string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM holidays WHERE calendar_name = $1)`, calendarName).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertCalendar records (or updates) a custom calendar entry.
func (r *calendarRepository) UpsertCalendar(name string, description string) error {
	_, err := r.db.Exec(`
		INSERT INTO calendars (name, description)
		VALUES ($1, $2)
		ON CONFLICT (name)
		DO UPDATE SET description = EXCLUDED.description,
					  updated_at = NOW()
	`, name, description)
	return err
}

// DeleteHolidaysByCalendar removes all holidays stored for a given calendar.
func (r *calendarRepository) DeleteHolidaysByCalendar(calendarName string) error {
	_, err := r.db.Exec(`DELETE FROM holidays WHERE calendar_name = $1`, calendarName)
	return err
}

// ListCalendars returns every custom calendar recorded in the calendars table.
func (r *calendarRepository) ListCalendars() ([]models.CalendarInfo, error) {
	rows, err := r.db.Query(`SELECT name, description FROM calendars ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []models.CalendarInfo
	for rows.Next() {
		var info models.CalendarInfo
		var desc sql.NullString
		if err := rows.Scan(&info.Name, &desc); err != nil {
			return nil, err
		}
		if desc.Valid {
			info.Description = desc.String
		}
		out = append(out, info)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetHolidays returns the holiday dates stored for a calendar, ordered ascending.
func (r *calendarRepository) GetHolidays(calendarName string) ([]time.Time, error) {
	rows, err := r.db.Query(`SELECT holiday FROM holidays WHERE calendar_name = $1 ORDER BY holiday`, calendarName)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
