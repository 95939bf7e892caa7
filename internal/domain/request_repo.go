package domain

import "time"

// ExchangeRequestRepository is the durable store of exchange requests.
// Mutating methods update rows conditionally on the current status so
// that concurrent writers resolve through the row count, not through
// locks: a guard miss means someone else already moved the request.
type ExchangeRequestRepository interface {
	CreateRequest(request *ExchangeRequest) error
	GetRequestByID(requestID uint) (*ExchangeRequest, error)
	GetRequestsByStatus(statuses []RequestStatus) ([]*ExchangeRequest, error)
	GetRecentRequests(limit int) ([]*ExchangeRequest, error)
	FindExpiredBefore(deadline time.Time, statuses []RequestStatus) ([]*ExchangeRequest, error)

	// UpdateRequestFields applies fields to the request only if its current
	// status is in allowed. Returns false when no row matched.
	UpdateRequestFields(requestID uint, allowed []RequestStatus, fields map[string]interface{}) (bool, error)

	// UpdateManyStatuses moves every request from ids whose current status is
	// in allowed to newStatus and returns the number of rows changed.
	UpdateManyStatuses(ids []uint, allowed []RequestStatus, newStatus RequestStatus) (int64, error)
}
