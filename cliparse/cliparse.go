package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	RosterFile   string
	IPHashSalt   string
	SessionTTL   time.Duration
	RateLimit    float64
	RateBurst    int

	// TrustProxy honours X-Forwarded-For and X-Real-IP. Only set it when a
	// reverse proxy overwrites those headers.
	TrustProxy bool
}

const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("head2head", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.RosterFile, "roster", "", "Path to roster YAML file")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", 0, "Idle time before a voting session is dropped")
	fs.Float64Var(&cfg.RateLimit, "rate", 0, "Requests per second allowed per client IP")
	fs.IntVar(&cfg.RateBurst, "burst", 0, "Burst size for the per-IP rate limiter")
	fs.BoolVar(&cfg.TrustProxy, "trust-proxy", false, "Take client IPs from X-Forwarded-For / X-Real-IP")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.IPHashSalt, "ip-salt", "", "IP hash salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == DatabasePostgres {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		// Results live only as long as the process
		cfg.DatabaseURL = ":memory:"
	}

	if cfg.RosterFile == "" {
		cfg.RosterFile = os.Getenv("ROSTER_FILE")
	}

	if cfg.SessionTTL == 0 {
		if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
			ttl, err := time.ParseDuration(ttlStr)
			if err != nil {
				return Config{}, errors.New("invalid SESSION_TTL env variable")
			}
			cfg.SessionTTL = ttl
		} else {
			cfg.SessionTTL = 2 * time.Hour
		}
	}

	if cfg.RateLimit == 0 {
		if rateStr := os.Getenv("RATE_LIMIT"); rateStr != "" {
			rate, err := strconv.ParseFloat(rateStr, 64)
			if err != nil || rate <= 0 {
				return Config{}, errors.New("invalid RATE_LIMIT env variable")
			}
			cfg.RateLimit = rate
		} else {
			cfg.RateLimit = 10
		}
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = 2 * int(cfg.RateLimit)
		if cfg.RateBurst < 1 {
			cfg.RateBurst = 1
		}
	}

	if !cfg.TrustProxy {
		if proxyStr := os.Getenv("TRUSTED_PROXY"); proxyStr != "" {
			trust, err := strconv.ParseBool(proxyStr)
			if err != nil {
				return Config{}, errors.New("invalid TRUSTED_PROXY env variable")
			}
			cfg.TrustProxy = trust
		}
	}

	// Secrets - MUST be provided
	if cfg.IPHashSalt == "" {
		cfg.IPHashSalt = os.Getenv("IP_HASH_SALT")
	}
	if cfg.IPHashSalt == "" {
		return Config{}, errors.New("IP_HASH_SALT required")
	}

	return cfg, nil
}
