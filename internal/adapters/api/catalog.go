package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/umesh576/servicehub-cli/internal/domain"
)

type serviceSchema struct {
	ID          int     `json:"id"`
	ServiceName string  `json:"serviceName"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Location    struct {
		LocationName string `json:"locationName"`
		City         string `json:"city"`
	} `json:"location"`
	Rating       float64 `json:"rating"`
	BookingCount int     `json:"bookingCount"`
}

func (c *Client) ListServices(ctx context.Context) ([]domain.ServiceListing, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/api/services/", "", nil)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	if !accepted(status) {
		return nil, fmt.Errorf("list services: status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var decoded []serviceSchema
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode service list: %w", domain.ErrMalformedResponse)
	}

	listings := make([]domain.ServiceListing, 0, len(decoded))
	for _, entry := range decoded {
		listings = append(listings, toServiceListing(entry))
	}

	return listings, nil
}

func (c *Client) FetchService(ctx context.Context, token string, serviceID int) (domain.ServiceListing, error) {
	path := fmt.Sprintf("/api/services/%d", serviceID)

	status, body, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return domain.ServiceListing{}, fmt.Errorf("fetch service: %w", err)
	}
	if status == http.StatusNotFound {
		return domain.ServiceListing{}, fmt.Errorf("service %d: %w", serviceID, domain.ErrNotFound)
	}
	if !accepted(status) {
		return domain.ServiceListing{}, fmt.Errorf("fetch service: status %d: %s", status, strings.TrimSpace(string(body)))
	}

	var decoded serviceSchema
	if err := json.Unmarshal(body, &decoded); err != nil {
		return domain.ServiceListing{}, fmt.Errorf("decode service: %w", domain.ErrMalformedResponse)
	}

	return toServiceListing(decoded), nil
}

func toServiceListing(schema serviceSchema) domain.ServiceListing {
	return domain.ServiceListing{
		ID:          schema.ID,
		Name:        schema.ServiceName,
		Description: schema.Description,
		Price:       schema.Price,
		ImageURL:    schema.ImageURL,
		Location: domain.ServiceLocation{
			Name: schema.Location.LocationName,
			City: schema.Location.City,
		},
		Rating:       schema.Rating,
		BookingCount: schema.BookingCount,
	}
}
