package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"

	// EnvPrefix is prepended to config keys read from the environment,
	// e.g. DENTAL_DATABASE_HOST overrides database.host.
	EnvPrefix = "DENTAL"

	ServiceName = "dental_backend"
)

// Storage drivers accepted by storage.driver.
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)
