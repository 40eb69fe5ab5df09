package domain

// Status represents a lightweight state value.
type Status string

const (
	StatusPending Status = "pending"
)

// RequestContext carries the authenticated caller on admin routes.
type RequestContext struct {
	Subject string `json:"subject"`
	Role    string `json:"role"`
}
