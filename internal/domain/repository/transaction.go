package repository

import "context"

// TransactionManager runs multi-step writes atomically without the use case layer
// depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a database transaction. An error from fn rolls back; otherwise it commits.
	// All repositories obtained from the factory share the transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to a single transaction.
type RepositoryFactory interface {
	WorkingGroupRepo() WorkingGroupRepository
	UserRepo() UserRepository
	MembershipRepo() MembershipRepository
	DeviceRepo() DeviceRepository
}
