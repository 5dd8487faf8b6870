package postgres

import (
	"context"
	"fmt"

	"profilecard/config"
	"profilecard/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// directManager runs the unit of work without a transaction: every statement commits on its own.
type directManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds either a GORM transaction or the pooled connection and hands out
// repositories bound to it.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewProfileRepository creates a profile repository bound to the unit of work.
func (f *gormRepositoryFactory) NewProfileRepository() repository.ProfileRepository {
	return NewProfileRepository(f.tx)
}

// NewProfileChildRepository creates a child repository bound to the unit of work.
func (f *gormRepositoryFactory) NewProfileChildRepository() repository.ProfileChildRepository {
	return NewProfileChildRepository(f.tx)
}

// NewTransactionManager picks the manager configured by store.atomicSave.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	if cfg.Store != nil && cfg.Store.AtomicSave {
		return NewAtomicTransactionManager(db)
	}

	return NewDirectManager(db)
}

// NewAtomicTransactionManager returns a manager that wraps the unit of work in one transaction.
func NewAtomicTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// NewDirectManager returns a manager whose writes are not grouped.
func NewDirectManager(db *gorm.DB) repository.TransactionManager {
	return &directManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	// Always roll back if the callback panics.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			// Re-panic to allow Fx or other middleware to handle the panic.
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err // Return the original business error.
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Execute runs fn against the primary so reads inside the unit of work see its own writes.
func (tm *directManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(&gormRepositoryFactory{tx: tm.db.WithContext(ctx).Clauses(dbresolver.Write)})
}
