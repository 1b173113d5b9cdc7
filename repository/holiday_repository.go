package repository

import (
	"context"
	"fmt"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/tablestore"
)

var holidayColumns = []string{"id", "name", "date", "rrule"}

type HolidayRepository struct {
	store tablestore.Store
}

func NewHolidayRepository(store tablestore.Store) *HolidayRepository {
	return &HolidayRepository{store: store}
}

func decodeHoliday(r tablestore.Row) (models.Holiday, bool) {
	h := models.Holiday{
		ID:    cell(r, "id"),
		Name:  cell(r, "name"),
		Date:  cell(r, "date"),
		RRule: cell(r, "rrule"),
	}
	return h, h.ID != "" && h.Date != ""
}

func encodeHoliday(h models.Holiday) tablestore.Row {
	return tablestore.Row{"id": h.ID, "name": h.Name, "date": h.Date, "rrule": h.RRule}
}

func (r *HolidayRepository) FindAll(ctx context.Context) ([]models.Holiday, error) {
	return loadRows(ctx, r.store, tablestore.Holidays, decodeHoliday)
}

func (r *HolidayRepository) Create(ctx context.Context, h models.Holiday) error {
	if h.ID == "" || tablestore.NormalizeDate(h.Date) != h.Date {
		return fmt.Errorf("%w: holiday needs an id and a YYYY-MM-DD date", ErrInvalidRecord)
	}
	all, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, append(all, h))
}

func (r *HolidayRepository) Delete(ctx context.Context, id string) error {
	all, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		if all[i].ID == id {
			return r.save(ctx, append(all[:i], all[i+1:]...))
		}
	}
	return fmt.Errorf("%w: %s", ErrHolidayNotFound, id)
}

func (r *HolidayRepository) save(ctx context.Context, holidays []models.Holiday) error {
	ch, err := stageRows(ctx, r.store, tablestore.Holidays, holidayColumns, holidays, decodeHoliday, encodeHoliday, nil)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, ch.Name, ch.Table); err != nil {
		return fmt.Errorf("failed to save holidays: %w", err)
	}
	return nil
}
