package models

import "encoding/json"

// MatchContact is the contact block embedded in a match record for each
// side of the pairing.
type MatchContact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// MatchRecord is a system-proposed or confirmed pairing between a lost
// item and a found item. Read-only from the client apart from delete.
type MatchRecord struct {
	ID        ID     `json:"id"`
	Status    string `json:"match_status"`
	MatchDate string `json:"match_date"`

	LostItemID  ID `json:"lost_item_id"`
	FoundItemID ID `json:"found_item_id"`

	Loster  MatchContact `json:"loster"`
	Founder MatchContact `json:"founder"`
}

// matchRecordWire mirrors MatchRecord plus the flat legacy contact keys
// some backend versions emit instead of the nested objects.
type matchRecordWire struct {
	ID        ID     `json:"id"`
	Status    string `json:"match_status"`
	MatchDate string `json:"match_date"`

	LostItemID  ID `json:"lost_item_id"`
	FoundItemID ID `json:"found_item_id"`

	Loster  *MatchContact `json:"loster"`
	Founder *MatchContact `json:"founder"`

	LosterName   string `json:"losterName"`
	LosterEmail  string `json:"losterEmail"`
	LosterPhone  string `json:"losterPhone"`
	FounderName  string `json:"founderName"`
	FounderEmail string `json:"founderEmail"`
	FounderPhone string `json:"founderPhone"`
}

// UnmarshalJSON accepts both contact encodings seen in the wild: the
// nested object is canonical, the flat keys fill in when it is absent.
func (m *MatchRecord) UnmarshalJSON(data []byte) error {
	var w matchRecordWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	m.ID = w.ID
	m.Status = w.Status
	m.MatchDate = w.MatchDate
	m.LostItemID = w.LostItemID
	m.FoundItemID = w.FoundItemID

	if w.Loster != nil {
		m.Loster = *w.Loster
	} else {
		m.Loster = MatchContact{Name: w.LosterName, Email: w.LosterEmail, Phone: w.LosterPhone}
	}
	if w.Founder != nil {
		m.Founder = *w.Founder
	} else {
		m.Founder = MatchContact{Name: w.FounderName, Email: w.FounderEmail, Phone: w.FounderPhone}
	}

	return nil
}
