package catalog

// Service is a bookable offering.
type Service struct {
	ID              string
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
}
