package model

// MedicineRecord is one row of an uploaded inventory snapshot.
// It lives only for the duration of a single evaluation pass.
type MedicineRecord struct {
	Name         string `json:"name"`
	Batch        string `json:"batch"`
	Quantity     int    `json:"quantity"`
	MinThreshold int    `json:"min_threshold"`
	ExpiryDate   string `json:"expiry_date"`
}
