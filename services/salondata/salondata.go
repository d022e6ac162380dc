package salondata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"voicesalon/models"
)

const (
	ScheduleFile = "schedule.json"
	ProductsFile = "products.json"
)

// DataError reports a static data file that could not be read or decoded.
type DataError struct {
	File string
	Err  error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("salon data %s: %v", e.File, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// Directory holds the salon's static data. It is built once at startup and
// never modified, so it is safe to share between requests.
type Directory struct {
	Schedule models.ScheduleData
	Catalog  models.SalonData
}

// Hours is a shorthand for the weekly business hours.
func (d *Directory) Hours() models.WeeklySchedule {
	return d.Schedule.BusinessHours
}

// Load reads schedule.json and products.json from dir. A file that is missing
// or malformed is logged and replaced by empty data so the server can still
// answer; the returned errors say what was skipped.
func Load(dir string, logger *zap.Logger) (*Directory, []error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Directory{
		Schedule: models.ScheduleData{BusinessHours: models.WeeklySchedule{}},
		Catalog:  models.SalonData{Services: []models.Service{}},
	}

	var errs []error
	if err := readJSON(filepath.Join(dir, ScheduleFile), &d.Schedule); err != nil {
		logger.Error("Error loading schedule data", zap.Error(err))
		d.Schedule = models.ScheduleData{BusinessHours: models.WeeklySchedule{}}
		errs = append(errs, err)
	}
	if d.Schedule.BusinessHours == nil {
		d.Schedule.BusinessHours = models.WeeklySchedule{}
	}

	if err := readJSON(filepath.Join(dir, ProductsFile), &d.Catalog); err != nil {
		logger.Error("Error loading salon data", zap.Error(err))
		d.Catalog = models.SalonData{Services: []models.Service{}}
		errs = append(errs, err)
	}
	if d.Catalog.Services == nil {
		d.Catalog.Services = []models.Service{}
	}

	for day, raw := range d.Schedule.BusinessHours {
		if raw == models.ClosedMarker {
			continue
		}
		if _, err := models.ParseOpenInterval(raw); err != nil {
			logger.Warn("Unreadable business hours, treating day as closed",
				zap.String("day", day), zap.String("hours", raw), zap.Error(err))
		}
	}

	logger.Info("Salon data loaded",
		zap.String("dir", dir),
		zap.Int("services", len(d.Catalog.Services)),
		zap.Int("days", len(d.Schedule.BusinessHours)),
	)
	return d, errs
}

func readJSON(path string, into any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &DataError{File: filepath.Base(path), Err: err}
	}
	if err := json.Unmarshal(raw, into); err != nil {
		return &DataError{File: filepath.Base(path), Err: err}
	}
	return nil
}
