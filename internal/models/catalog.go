package models

// Option is one entry of a closed select list.
type Option struct {
	Value string `json:"value" toml:"value"`
	Label string `json:"label" toml:"label"`
}

// InstallLocation is a day/city stop on the installation schedule.
// Day doubles as the preferredInstallLocation option value.
type InstallLocation struct {
	Day         string `json:"day"         toml:"day"`
	City        string `json:"city"        toml:"city"`
	FullAddress string `json:"fullAddress" toml:"full_address"`
}
