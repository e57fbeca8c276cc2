package services

import (
	portssvc "github.com/trackspend/expense_tracker_app/internal/core/ports/services"
	"github.com/trackspend/expense_tracker_app/internal/repositories/database/pgsql"
)

// NewServiceContainer wires every service onto the repository container.
func NewServiceContainer(repos *pgsql.RepositoryContainer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.Transaction),
		Reporting:   NewReportingService(repos.Transaction),
		User:        NewUserService(repos.User),
	}
}
