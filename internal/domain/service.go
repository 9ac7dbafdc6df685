package domain

// ServiceListing is a catalog entry, read-only from the client's perspective.
type ServiceListing struct {
	ID           int
	Name         string
	Description  string
	Price        float64
	ImageURL     string
	Location     ServiceLocation
	Rating       float64
	BookingCount int
}

type ServiceLocation struct {
	Name string
	City string
}

func (s ServiceListing) Resolved() bool {
	return s.ID > 0
}
