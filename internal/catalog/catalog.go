// Package catalog holds the closed option lists the quote form draws from:
// vehicle types, service areas, industries, model years and the installation
// schedule.
package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/constants"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/models"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

type Catalog struct {
	VehicleTypes     []models.Option          `toml:"vehicle_types"`
	Locations        []models.Option          `toml:"locations"`
	Industries       []models.Option          `toml:"industries"`
	InstallLocations []models.InstallLocation `toml:"install_locations"`

	clock utils.Clock
}

// Default returns the built-in option lists.
func Default(clock utils.Clock) *Catalog {
	return &Catalog{
		VehicleTypes: []models.Option{
			{Value: "sedan", Label: "Sedan"},
			{Value: "suv", Label: "SUV"},
			{Value: "truck", Label: "Truck"},
			{Value: "van", Label: "Van"},
			{Value: "trailer", Label: "Trailer"},
			{Value: "other", Label: "Other"},
		},
		Locations: []models.Option{
			{Value: "toronto", Label: "Toronto"},
			{Value: "mississauga", Label: "Mississauga"},
			{Value: "brampton", Label: "Brampton"},
			{Value: "vaughan", Label: "Vaughan"},
			{Value: "markham", Label: "Markham"},
			{Value: "richmond-hill", Label: "Richmond Hill"},
			{Value: "oakville", Label: "Oakville"},
			{Value: "hamilton", Label: "Hamilton"},
			{Value: "other", Label: "Other"},
		},
		Industries: []models.Option{
			{Value: constants.DefaultIndustry, Label: "Real Estate"},
			{Value: "construction", Label: "Construction"},
			{Value: "food-beverage", Label: "Food & Beverage"},
			{Value: "healthcare", Label: "Healthcare"},
			{Value: "retail", Label: "Retail"},
			{Value: "professional-services", Label: "Professional Services"},
			{Value: "transportation", Label: "Transportation"},
			{Value: "technology", Label: "Technology"},
			{Value: "other", Label: "Other"},
		},
		InstallLocations: []models.InstallLocation{
			{Day: "monday", City: "Toronto", FullAddress: "1180 Caledonia Rd, Toronto, ON M6A 2W5"},
			{Day: "tuesday", City: "Mississauga", FullAddress: "2250 Dixie Rd, Mississauga, ON L4Y 1Z4"},
			{Day: "wednesday", City: "Vaughan", FullAddress: "8000 Jane St, Vaughan, ON L4K 5B8"},
			{Day: "thursday", City: "Markham", FullAddress: "75 Konrad Cres, Markham, ON L3R 8T8"},
			{Day: "friday", City: "Oakville", FullAddress: "1275 Speers Rd, Oakville, ON L6L 2X4"},
		},
		clock: clock,
	}
}

// LoadFile reads a TOML catalog. Lists missing from the file keep their
// built-in values.
func LoadFile(path string, clock utils.Clock) (*Catalog, error) {
	c := Default(clock)

	var override Catalog
	if _, err := toml.DecodeFile(path, &override); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if len(override.VehicleTypes) > 0 {
		c.VehicleTypes = override.VehicleTypes
	}
	if len(override.Locations) > 0 {
		c.Locations = override.Locations
	}
	if len(override.Industries) > 0 {
		c.Industries = override.Industries
	}
	if len(override.InstallLocations) > 0 {
		c.InstallLocations = override.InstallLocations
	}
	if !hasOption(c.Industries, constants.DefaultIndustry) {
		return nil, fmt.Errorf("catalog %s: industries must include %q", path, constants.DefaultIndustry)
	}
	return c, nil
}

// VehicleYears lists the current year and the previous ones, newest first.
func (c *Catalog) VehicleYears() []int {
	current := c.clock.Now().Year()
	years := make([]int, 0, constants.VehicleYearSpan)
	for y := current; y > current-constants.VehicleYearSpan; y-- {
		years = append(years, y)
	}
	return years
}

// Check reports fields whose value is set but not one of the catalog's
// options. Empty values are left to the form validator.
func (c *Catalog) Check(f models.FormFields) models.ErrorMap {
	errs := models.ErrorMap{}

	if v := strings.TrimSpace(f.VehicleType); v != "" && !hasOption(c.VehicleTypes, v) {
		errs[models.FieldVehicleType] = constants.MsgUnknownOption
	}
	if v := strings.TrimSpace(f.Location); v != "" && !hasOption(c.Locations, v) {
		errs[models.FieldLocation] = constants.MsgUnknownOption
	}
	if v := strings.TrimSpace(f.Industry); v != "" && !hasOption(c.Industries, v) {
		errs[models.FieldIndustry] = constants.MsgUnknownOption
	}
	if v := strings.TrimSpace(f.PreferredInstallLocation); v != "" && c.installLocation(v) == nil {
		errs[models.FieldPreferredInstallLocation] = constants.MsgUnknownOption
	}
	if v := strings.TrimSpace(f.VehicleYear); v != "" && !c.validYear(v) {
		errs[models.FieldVehicleYear] = constants.MsgUnknownOption
	}
	return errs
}

// InstallLocation looks up a schedule stop by its day key.
func (c *Catalog) InstallLocation(day string) (models.InstallLocation, bool) {
	loc := c.installLocation(day)
	if loc == nil {
		return models.InstallLocation{}, false
	}
	return *loc, true
}

func (c *Catalog) installLocation(day string) *models.InstallLocation {
	for i := range c.InstallLocations {
		if c.InstallLocations[i].Day == day {
			return &c.InstallLocations[i]
		}
	}
	return nil
}

func (c *Catalog) validYear(v string) bool {
	year, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	current := c.clock.Now().Year()
	return year <= current && year > current-constants.VehicleYearSpan
}

func hasOption(opts []models.Option, value string) bool {
	for _, o := range opts {
		if o.Value == value {
			return true
		}
	}
	return false
}
