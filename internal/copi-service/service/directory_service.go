package service

import (
	"CoPI_Backend/internal/copi-service/repository"
	"context"
	"fmt"
	"strings"
)

// institutionResultLimit caps the autocomplete payload.
const institutionResultLimit = 20

type DirectoryService interface {
	// LookupInstitutions returns distinct institution names matching the
	// filter substring, excluding the caller's own record by id. A filter
	// of only whitespace is treated as no filter.
	LookupInstitutions(ctx context.Context, callerID string, filter string) ([]string, error)
}

type directoryService struct {
	personRepository repository.PersonRepository
}

func (d *directoryService) LookupInstitutions(ctx context.Context, callerID string, filter string) ([]string, error) {
	filter = strings.TrimSpace(filter)
	institutions, err := d.personRepository.GetDistinctInstitutions(ctx, filter, callerID, institutionResultLimit)
	if err != nil {
		return nil, fmt.Errorf("DirectoryService.LookupInstitutions: %w", err)
	}
	return institutions, nil
}

func NewDirectoryService(personRepository repository.PersonRepository) DirectoryService {
	return &directoryService{
		personRepository: personRepository,
	}
}
