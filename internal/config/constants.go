package config

// Key constants for config
const (
	AppEnvironmentKey = "APP_ENV"
	VerboseKey        = "VERBOSE"
	LocalEnvironment  = "local"
)
