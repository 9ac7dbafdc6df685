package ports

import (
	"context"

	"github.com/umesh576/servicehub-cli/internal/domain"
)

// CatalogGateway reads the service catalog. The token may be empty for the
// public listing endpoint.
type CatalogGateway interface {
	ListServices(ctx context.Context) ([]domain.ServiceListing, error)
	FetchService(ctx context.Context, token string, serviceID int) (domain.ServiceListing, error)
}
