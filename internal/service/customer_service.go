// internal/service/customer_service.go
package service

import (
	"context"
	"log"

	appErrors "github.com/unclebandit/customer-viewer/internal/errors"
	"github.com/unclebandit/customer-viewer/internal/model"
	"github.com/unclebandit/customer-viewer/internal/repository"
)

// FilterMode decides how the name and location filters interact.
type FilterMode string

const (
	// FilterLocationPrecedence drops the name filter whenever a location filter is given.
	FilterLocationPrecedence FilterMode = "location-precedence"
	// FilterCombine applies every non-empty filter (logical AND).
	FilterCombine FilterMode = "combine"
)

func ParseFilterMode(s string) (FilterMode, error) {
	switch FilterMode(s) {
	case "":
		return FilterLocationPrecedence, nil
	case FilterLocationPrecedence, FilterCombine:
		return FilterMode(s), nil
	}
	return "", appErrors.NewInvalidFilterMode(s)
}

// Apply returns the filter that is actually sent to the store.
func (m FilterMode) Apply(f model.CustomerFilter) model.CustomerFilter {
	if m == FilterCombine {
		return f
	}
	if f.Location != "" {
		return model.CustomerFilter{Location: f.Location}
	}
	return model.CustomerFilter{Name: f.Name}
}

type CustomerService struct {
	CustomerRepo repository.CustomerRepositoryInterface
	Mode         FilterMode
}

// ListCustomers returns the customers matching filter under the configured mode.
func (s *CustomerService) ListCustomers(ctx context.Context, filter model.CustomerFilter) ([]model.Customer, error) {
	effective := s.Mode.Apply(filter)
	if effective != filter {
		log.Printf("Filter %+v narrowed to %+v (%s)\n", filter, effective, s.Mode)
	}

	customers, err := s.CustomerRepo.List(ctx, effective)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}
