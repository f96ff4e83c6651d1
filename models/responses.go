package models

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body returned by the HTTP layer.
// Fields is populated only for validation failures.
type ErrorResponse struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// AuthResponse is returned by the register and login endpoints.
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Ack confirms a destructive operation.
type Ack struct {
	Message string `json:"message"`
}

// Status is the body of the status endpoint.
type Status struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Uptime   string `json:"uptime"`
	Database string `json:"database"`
}
