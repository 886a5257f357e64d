package constants

// Pub/Sub providers accepted by config.PubSub.Provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Deployment environments.
const (
	EnvLocal      = "local"
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pagination bounds for list endpoints.
const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)
