package entity

type BusProvider struct {
	Base
	Name              string   `db:"name"`
	CoverageDistricts []string `db:"coverage_districts"`
	OfficialAddress   string   `db:"official_address"`
	ContactInfo       string   `db:"contact_info"`
	Email             string   `db:"email"`
	Website           string   `db:"website"`
	PrivacyPolicy     string   `db:"privacy_policy"`
	Rating            float64  `db:"rating"`
	TotalBuses        int      `db:"total_buses"`
	IsActive          bool     `db:"is_active"`
}
