package models

// Column describes one column of a physical table as reported by
// information_schema.
type Column struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Nullable bool   `json:"nullable"`
}
