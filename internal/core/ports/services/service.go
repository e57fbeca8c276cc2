package services

// ServiceContainer bundles the service facades handed to route registration.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Reporting   ReportingSvcFacade
	User        UserSvcFacade
}
