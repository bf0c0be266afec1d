package models

// Event is one record of the upstream event collection. The date stays the
// raw upstream text; formatting happens at render time.
type Event struct {
	Title       string   `json:"title" validate:"required"`
	Date        string   `json:"date" validate:"required"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
