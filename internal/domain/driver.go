package domain

// Driver represents a driver in the system.
type Driver struct {
	ID   int64
	Name string
	Car  string
}
