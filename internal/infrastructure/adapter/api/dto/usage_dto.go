package dto

// UsageResponse represents the API response for an owner's daily usage
type UsageResponse struct {
	Owner   string `json:"owner"`
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Limit   int    `json:"limit"`
	Allowed bool   `json:"allowed"`
}
