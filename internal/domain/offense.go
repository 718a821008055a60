package domain

// OffenseType is a catalog entry reports reference by id.
type OffenseType struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}
