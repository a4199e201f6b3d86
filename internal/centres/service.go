package centres

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/config"
	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/geo"
	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/providers/dvsa"
	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/providers/postcodesio"
	"github.com/OpaceDigitalAgency/driving-lesson-hunter/internal/types"
)

const (
	DefaultRadius     = 50
	DefaultMaxResults = 20
)

// PostcodeProvider looks up a postcode with a geocoding service
type PostcodeProvider interface {
	Lookup(ctx context.Context, postcode string) (*postcodesio.LookupAPIResponse, error)
}

// CentreProvider fetches the full test centre catalog
type CentreProvider interface {
	FetchCentres(ctx context.Context) ([]types.Centre, error)
}

// Service finds the test centres closest to a postcode
type Service interface {
	Search(ctx context.Context, input SearchInput) (*SearchResult, error)
}

type searchService struct {
	postcodeProvider PostcodeProvider
	centreProvider   CentreProvider
	maxResults       int
	logger           *slog.Logger
}

// NewSearchService creates a search service backed by postcodes.io and the DVSA catalog
func NewSearchService(cfg *config.Config, logger *slog.Logger) Service {
	httpClient := cfg.NewHTTPClient()
	return NewSearchServiceWithProviders(
		logger,
		postcodesio.NewClientWithOptions(logger, cfg.Upstream.PostcodesURL, httpClient),
		dvsa.NewClientWithOptions(logger, cfg.Upstream.CentresURL, httpClient),
		cfg.Search.MaxResults,
	)
}

// NewSearchServiceWithProviders creates a search service with custom providers.
// This is useful for testing with mock providers
func NewSearchServiceWithProviders(
	logger *slog.Logger,
	postcodeProvider PostcodeProvider,
	centreProvider CentreProvider,
	maxResults int,
) Service {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return &searchService{
		postcodeProvider: postcodeProvider,
		centreProvider:   centreProvider,
		maxResults:       maxResults,
		logger:           logger.With("component", "search-service"),
	}
}

// Search resolves the postcode, loads the catalog and returns the nearest
// centres within the radius. The geocode call always completes before the
// catalog is requested.
func (s *searchService) Search(ctx context.Context, input SearchInput) (*SearchResult, error) {
	if input.Postcode == "" {
		return nil, ErrPostcodeRequired
	}

	s.logger.Debug("searching for centres",
		"postcode", input.Postcode,
		"radius", input.Radius,
	)

	userLocation, err := s.resolveLocation(ctx, input.Postcode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPostcode, err)
	}

	catalog := s.loadCentres(ctx)

	nearby, total := Nearest(userLocation, catalog, float64(input.Radius), s.maxResults)

	s.logger.Debug("search complete",
		"postcode", input.Postcode,
		"catalog_size", len(catalog),
		"in_radius", total,
		"returned", len(nearby),
	)

	return &SearchResult{
		UserPostcode: input.Postcode,
		UserLocation: userLocation,
		Radius:       input.Radius,
		Centres:      nearby,
		Total:        total,
	}, nil
}

// resolveLocation turns a postcode into coordinates. Only a response whose
// body status is 200 and which carries a result counts as found.
func (s *searchService) resolveLocation(ctx context.Context, postcode string) (types.Coords, error) {
	resp, err := s.postcodeProvider.Lookup(ctx, postcode)
	if err != nil {
		var statusErr *postcodesio.StatusError
		if errors.As(err, &statusErr) {
			s.logger.Warn("postcode lookup rejected",
				"postcode", postcode,
				"status_code", statusErr.StatusCode,
			)
		} else {
			s.logger.Error("failed to geocode postcode",
				"postcode", postcode,
				"error", err,
			)
		}
		return types.Coords{}, err
	}

	if resp == nil || resp.Status != 200 || resp.Result == nil {
		s.logger.Warn("postcode not found", "postcode", postcode)
		return types.Coords{}, ErrPostcodeNotFound
	}

	return types.NewCoords(resp.Result.Latitude, resp.Result.Longitude), nil
}

// loadCentres fetches the catalog; a failed fetch is logged and yields an
// empty catalog so the search still succeeds.
func (s *searchService) loadCentres(ctx context.Context) []types.Centre {
	centres, err := s.centreProvider.FetchCentres(ctx)
	if err != nil {
		s.logger.Error("failed to fetch test centres", "error", err)
		return []types.Centre{}
	}
	return centres
}

// Nearest attaches the distance from origin to every centre, keeps those at
// most radius miles away and returns the closest limit of them in ascending
// order along with the number that were in range.
func Nearest(origin types.Coords, catalog []types.Centre, radius float64, limit int) ([]types.CentreWithDistance, int) {
	inRange := make([]types.CentreWithDistance, 0, len(catalog))
	for _, c := range catalog {
		d := geo.DistanceBetween(origin, c.Coords())
		if d <= radius {
			inRange = append(inRange, types.CentreWithDistance{Centre: c, Distance: d})
		}
	}

	slices.SortStableFunc(inRange, func(a, b types.CentreWithDistance) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	total := len(inRange)
	if limit >= 0 && total > limit {
		inRange = inRange[:limit]
	}
	return inRange, total
}
