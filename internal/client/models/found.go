package models

// FoundItem is a device reported discovered by a finder, awaiting an
// owner match.
type FoundItem struct {
	ID           ID     `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	SerialNumber string `json:"serial_number"`
	Description  string `json:"description"`

	Location string `json:"location"`
	Address  string `json:"address"`
	District string `json:"district"`
	Province string `json:"province"`

	FinderFirstName string `json:"first_name"`
	FinderLastName  string `json:"last_name"`
	FinderEmail     string `json:"email"`
	FinderPhone     string `json:"phone"`

	ImageURL string `json:"image"`
}

// FoundItemDraft carries the fields the found-report form submits.
type FoundItemDraft struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	SerialNumber string `json:"serial_number"`
	Description  string `json:"description"`

	Location string `json:"location"`
	Address  string `json:"address"`
	District string `json:"district"`
	Province string `json:"province"`

	FinderFirstName string `json:"first_name"`
	FinderLastName  string `json:"last_name"`
	FinderEmail     string `json:"email"`
	FinderPhone     string `json:"phone"`
}
