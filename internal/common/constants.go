package common

const (
	// SessionStateKey is the durable-storage key holding the persisted
	// session blob ({customer, token, isAuthenticated} as JSON).
	SessionStateKey = "customer-auth"

	// TokenStateKey is the durable-storage key holding the bearer token
	// mirrored by the API client.
	TokenStateKey = "customer_token"
)
