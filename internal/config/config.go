package config // package config loads application configuration from environment variables

import (
    "log"     // log is used to report configuration errors and halt execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings"
)

// Data sources the catalog can be loaded from.
const (
    SourceFixtures = "fixtures"
    SourceMySQL    = "mysql"
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Database settings are only required when the
// catalog is read from MySQL.
type Config struct {
    Env               string // application environment (e.g. "dev", "prod")
    Port              string // HTTP port to listen on
    DataSource        string // "fixtures" (bundled JSON) or "mysql"
    DBUser            string // database username
    DBPass            string // database password (optional)
    DBHost            string // database host address
    DBPort            string // database port number
    DBName            string // database name
    DBSeed            bool   // overwrite the MySQL catalog with the bundled fixtures on startup
    JWTSecret         string // secret used to sign admin JWTs
    AccessTTLMin      int    // admin access token time-to-live in minutes
    AdminUsername     string // admin login name
    AdminPasswordHash string // bcrypt hash of the admin password; empty disables admin login
}

// Load reads configuration values from environment variables and returns a
// Config.  Missing required values cause the program to exit with a fatal
// log message.
func Load() Config {
    cfg := Config{
        Env:               must("APP_ENV"),
        Port:              must("APP_PORT"),
        DataSource:        strings.ToLower(getenv("DATA_SOURCE", SourceFixtures)),
        DBPass:            os.Getenv("DB_PASS"),
        DBSeed:            envBool("DB_SEED", false),
        JWTSecret:         must("JWT_SECRET"),
        AccessTTLMin:      envInt("ACCESS_TOKEN_TTL_MIN", 30),
        AdminUsername:     getenv("ADMIN_USERNAME", "admin"),
        AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
    }
    switch cfg.DataSource {
    case SourceFixtures:
    case SourceMySQL:
        cfg.DBUser = must("DB_USER")
        cfg.DBHost = must("DB_HOST")
        cfg.DBPort = mustInt("DB_PORT")
        cfg.DBName = must("DB_NAME")
    default:
        log.Fatalf("invalid DATA_SOURCE %q (want %s or %s)", cfg.DataSource, SourceFixtures, SourceMySQL)
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but also checks that the value is an integer.
// The original string is returned since it is only spliced into a DSN.
func mustInt(key string) string {
    s := must(key)
    if _, err := strconv.Atoi(s); err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return s
}
