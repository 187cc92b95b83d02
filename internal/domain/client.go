package domain

// Client represents a passenger in the system.
type Client struct {
	ID    int64
	Name  string
	IsVIP bool
}
