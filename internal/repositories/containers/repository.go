// Package containers provides a registry of named containers
package containers

//go:generate mockgen -destination=mock/mock_repository.go -package=containersmock github.com/KirkDiggler/logistics-api/internal/repositories/containers Repository

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/KirkDiggler/logistics-api/internal/errors"
	"github.com/KirkDiggler/logistics-api/internal/inventory"
)

// RegisterInput contains a container to register under an id
type RegisterInput struct {
	ID        string
	Container inventory.Store
}

// RegisterOutput is empty
type RegisterOutput struct{}

// GetInput contains the id to look up
type GetInput struct {
	ID string
}

// GetOutput contains the registered container
type GetOutput struct {
	Container inventory.Store
}

// ListInput is reserved for paging
type ListInput struct{}

// ListOutput contains all registered ids, sorted
type ListOutput struct {
	IDs []string
}

// Repository looks up containers by id. A missing container is a NotFound
// error, never a nil container.
type Repository interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

type inMemoryRepository struct {
	mu         sync.RWMutex
	containers map[string]inventory.Store
}

// NewInMemoryRepository creates an empty registry
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		containers: make(map[string]inventory.Store),
	}
}

// FromFixture registers every container of a loaded fixture
func FromFixture(ctx context.Context, named []inventory.Named) (Repository, error) {
	repo := NewInMemoryRepository()
	for _, n := range named {
		if _, err := repo.Register(ctx, RegisterInput{ID: n.ID, Container: n.Container}); err != nil {
			return nil, err
		}
	}
	return repo, nil
}

// Ensure inMemoryRepository implements Repository
var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Register(_ context.Context, input RegisterInput) (*RegisterOutput, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", input.ID, vb)
	if input.Container == nil {
		vb.RequiredField("container")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.containers[input.ID]; exists {
		return nil, errors.AlreadyExistsf("container %s already registered", input.ID)
	}
	r.containers[input.ID] = input.Container
	return &RegisterOutput{}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("container ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.containers[input.ID]
	if !ok {
		return nil, errors.NotFoundf("container %s not found", input.ID).WithMeta("container_id", input.ID)
	}
	return &GetOutput{Container: c}, nil
}

func (r *inMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &ListOutput{IDs: slices.Sorted(maps.Keys(r.containers))}, nil
}
