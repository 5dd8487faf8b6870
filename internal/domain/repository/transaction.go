package repository

import "context"

// TransactionManager defines the interface for running a unit of work against the store.
// This allows the use case layer to group writes without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn with a RepositoryFactory. With a transactional manager a returned
	// error rolls back every write made through the factory; otherwise it's committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the current unit of work.
type RepositoryFactory interface {
	// NewProfileRepository returns a ProfileRepository bound to the current unit of work.
	NewProfileRepository() ProfileRepository

	// NewProfileChildRepository returns a ProfileChildRepository bound to the current unit of work.
	NewProfileChildRepository() ProfileChildRepository
}
