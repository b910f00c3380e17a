package domain

import "time"

// Setting is one key/value pair in the persisted settings store. Secret
// values (the gateway token among them) are stored encrypted.
type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"-"`
	UpdatedAt time.Time `json:"updated_at"`
}
