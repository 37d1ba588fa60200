package response

type DroppingPointResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price,omitempty"`
}

type DistrictResponse struct {
	Name           string                  `json:"name"`
	DroppingPoints []DroppingPointResponse `json:"dropping_points"`
}

type ProviderResponse struct {
	Name              string   `json:"name"`
	CoverageDistricts []string `json:"coverage_districts"`
	OfficialAddress   string   `json:"official_address"`
	ContactInfo       string   `json:"contact_info"`
}

type ProviderDetailResponse struct {
	Name              string   `json:"name"`
	CoverageDistricts []string `json:"coverage_districts"`
	OfficialAddress   string   `json:"official_address"`
	ContactInfo       string   `json:"contact_info"`
	Email             string   `json:"email"`
	Website           string   `json:"website"`
	PrivacyPolicy     string   `json:"privacy_policy"`
}
