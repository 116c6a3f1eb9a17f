package dto

type PlatformDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	WebsiteURL  string `json:"website_url"`
	LogoURL     string `json:"logo_url"`
	Region      string `json:"region"`
}

type AnimePlatformDTO struct {
	ID                 uint64 `json:"id"`
	Name               string `json:"name"`
	DisplayName        string `json:"display_name"`
	WebsiteURL         string `json:"website_url"`
	LogoURL            string `json:"logo_url"`
	AvailabilityStatus string `json:"availability_status"`
	DirectURL          string `json:"direct_url"`
	Region             string `json:"region"`
}
