package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

var fixedNow = utils.FixedClock{T: time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)}

func TestVehicleYears(t *testing.T) {
	years := Default(fixedNow).VehicleYears()

	require.Len(t, years, 25)
	assert.Equal(t, 2026, years[0])
	assert.Equal(t, 2002, years[len(years)-1])
	for i := 1; i < len(years); i++ {
		assert.Equal(t, years[i-1]-1, years[i], "years must be contiguous and descending")
	}
}

func TestCheck(t *testing.T) {
	c := Default(fixedNow)

	t.Run("KnownOptions", func(t *testing.T) {
		errs := c.Check(models.FormFields{
			VehicleYear:              "2002",
			VehicleType:              "van",
			Location:                 "toronto",
			Industry:                 "real-estate",
			PreferredInstallLocation: "monday",
		})
		assert.Empty(t, errs)
	})

	t.Run("EmptyValuesAreLeftToValidator", func(t *testing.T) {
		assert.Empty(t, c.Check(models.FormFields{}))
	})

	t.Run("UnknownOptions", func(t *testing.T) {
		errs := c.Check(models.FormFields{
			VehicleYear:              "2001",
			VehicleType:              "spaceship",
			Location:                 "vancouver",
			Industry:                 "mining",
			PreferredInstallLocation: "sunday",
		})
		assert.True(t, errs.Has(models.FieldVehicleYear))
		assert.True(t, errs.Has(models.FieldVehicleType))
		assert.True(t, errs.Has(models.FieldLocation))
		assert.True(t, errs.Has(models.FieldIndustry))
		assert.True(t, errs.Has(models.FieldPreferredInstallLocation))
	})

	t.Run("FutureYear", func(t *testing.T) {
		errs := c.Check(models.FormFields{VehicleYear: "2027"})
		assert.True(t, errs.Has(models.FieldVehicleYear))
	})
}

func TestInstallLocation(t *testing.T) {
	c := Default(fixedNow)

	loc, ok := c.InstallLocation("tuesday")
	require.True(t, ok)
	assert.Equal(t, "Mississauga", loc.City)

	_, ok = c.InstallLocation("saturday")
	assert.False(t, ok)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("OverridesListsPresentInFile", func(t *testing.T) {
		path := filepath.Join(dir, "catalog.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[[locations]]
value = "ottawa"
label = "Ottawa"

[[install_locations]]
day = "saturday"
city = "Ottawa"
full_address = "1 Bank St, Ottawa, ON"
`), 0o600))

		c, err := LoadFile(path, fixedNow)
		require.NoError(t, err)
		require.Len(t, c.Locations, 1)
		assert.Equal(t, "ottawa", c.Locations[0].Value)
		assert.Len(t, c.VehicleTypes, 6)

		loc, ok := c.InstallLocation("saturday")
		require.True(t, ok)
		assert.Equal(t, "1 Bank St, Ottawa, ON", loc.FullAddress)
	})

	t.Run("RejectsIndustriesWithoutDefault", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte(`
[[industries]]
value = "retail"
label = "Retail"
`), 0o600))

		_, err := LoadFile(path, fixedNow)
		assert.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(dir, "nope.toml"), fixedNow)
		assert.Error(t, err)
	})
}
