package model

type Error struct {
	Code    int    `json:"Code"`
	Message string `json:"Message"`
}

// ValidationError is returned if a submitted form contains invalid values.
type ValidationError struct {
	Code    int               `json:"Code"`
	Message string            `json:"Message"`
	Fields  map[string]string `json:"Fields"`
}

type Health struct {
	Status  string `json:"Status"`
	Version string `json:"Version"`
}

// Notification is a message that is shown to the user once.
type Notification struct {
	Type    string `json:"Type"` // info, warning or error
	Message string `json:"Message"`
}
