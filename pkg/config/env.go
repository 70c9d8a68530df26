package config

// EnvPrefix is intentionally empty: every variable names its full
// BOKPHARM_-prefixed key in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "BOKPHARM_DB_DSN"
	EnvDBHost = "BOKPHARM_DB_HOST"
	EnvDBUser = "BOKPHARM_DB_USER"
	EnvDBName = "BOKPHARM_DB_NAME"
)

// legacyDBEnvVars are the discrete connection variables accepted when
// BOKPHARM_DB_DSN is not set.
var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
