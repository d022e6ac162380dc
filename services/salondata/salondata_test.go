package salondata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ScheduleFile, `{
		"business_hours": {"Monday": "10:00-18:00", "Saturday": "Closed"},
		"location": {"address": "Calle Mayor 1", "city": "Valencia"}
	}`)
	writeFile(t, dir, ProductsFile, `{"services": [{"category": "Manicuras", "price_original_eur": 20}]}`)

	d, errs := Load(dir, nil)
	assert.Empty(t, errs)
	assert.Equal(t, "10:00-18:00", d.Hours()["Monday"])
	assert.Equal(t, "Valencia", d.Schedule.Location.City)
	require.Len(t, d.Catalog.Services, 1)
	assert.Equal(t, 20.0, d.Catalog.Services[0].EffectivePrice())
}

func TestLoad_DegradesToEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ScheduleFile, `{not json`)

	d, errs := Load(dir, nil)
	require.Len(t, errs, 2)

	var dataErr *DataError
	require.True(t, errors.As(errs[0], &dataErr))
	assert.Equal(t, ScheduleFile, dataErr.File)
	require.True(t, errors.As(errs[1], &dataErr))
	assert.ErrorIs(t, dataErr, os.ErrNotExist)

	assert.NotNil(t, d.Hours())
	assert.Empty(t, d.Hours())
	assert.NotNil(t, d.Catalog.Services)
	assert.Empty(t, d.Catalog.Services)
}
