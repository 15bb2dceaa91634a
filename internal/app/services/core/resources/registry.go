package resources

import (
	"clinic-console-service/internal/app/contracts"
	"clinic-console-service/internal/app/models"
	"clinic-console-service/internal/pkg/exceptions"
	"errors"
)

type registry struct {
	sources map[string]contracts.LookupSource
}

func NewRegistry(sources ...contracts.LookupSource) contracts.LookupRegistry {
	r := &registry{sources: make(map[string]contracts.LookupSource, len(sources))}
	for _, source := range sources {
		r.sources[source.Name()] = source
	}
	return r
}

// Source returns the resource by console name if role may read it.
func (r *registry) Source(role models.Role, name string) (contracts.LookupSource, error) {
	source, ok := r.sources[name]
	if !ok {
		return nil, exceptions.ErrUnknownResource(nil, name)
	}
	if !role.CanRead(name) {
		return nil, exceptions.ErrRoleNotAllowed(errors.New(name), role.String())
	}
	return source, nil
}
