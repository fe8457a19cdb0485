// Package models defines the entity shapes exchanged with the Smart Trace
// Device backend. The backend is the system of record; these are the
// client-side views of its records.
package models

// LostItem is a device reported missing by its owner.
type LostItem struct {
	ID           ID     `json:"id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	SerialNumber string `json:"serial_number"`
	Description  string `json:"additional_info"`

	State    string `json:"state"`
	District string `json:"district"`
	Province string `json:"province"`
	Address  string `json:"address"`

	DateLost string `json:"date_lost"`
	TimeLost string `json:"time_lost"`

	ReporterName  string `json:"name"`
	ReporterEmail string `json:"email"`
	ReporterPhone string `json:"phone"`

	ImageURL string `json:"deviceimage"`
}

// LostItemDraft carries the fields a report form submits. The image is
// attached separately as a multipart file part.
type LostItemDraft struct {
	Title        string `json:"title"`
	Category     string `json:"category"`
	Brand        string `json:"brand"`
	SerialNumber string `json:"serial_number"`
	Description  string `json:"additional_info"`

	State    string `json:"state"`
	District string `json:"district"`
	Province string `json:"province"`
	Address  string `json:"address"`

	DateLost string `json:"date_lost"`
	TimeLost string `json:"time_lost"`

	ReporterName  string `json:"name"`
	ReporterEmail string `json:"email"`
	ReporterPhone string `json:"phone"`
}
