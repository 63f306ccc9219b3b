package structs

import "time"

type Config struct {
	Server   *ServerConfig
	Cors     *CorsConfig
	Source   *SourceConfig
	Table    *TableConfig
	Cache    *CacheConfig
	Database *DatabaseConfig
}

type ServerConfig struct {
	AppName        string        // ShopSpy
	Environment    string        // development, production
	Port           string        // :8082
	ReadTimeout    time.Duration // in seconds
	WriteTimeout   time.Duration // in seconds
	IdleTimeout    time.Duration // in seconds
	MaxHeaderBytes int           // in bytes
}

type CorsConfig struct {
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	MaxAge           int
}

// SourceConfig controls the storefront catalog fetch client.
type SourceConfig struct {
	PageLimit       int           // products per /products.json page, max 250
	MaxPages        int           // hard stop against endless pagination
	RequestTimeout  time.Duration // per-page HTTP timeout
	UserAgent       string
	FetchRateLimit  int           // fetches per client per window, 0 disables
	FetchRateWindow time.Duration
}

// TableConfig holds rendering contracts the table view exposes to clients.
type TableConfig struct {
	PageSize          int // default rows per page
	PinnedColumnWidth int // px, used for pinned column offsets
}

type CacheConfig struct {
	Address         string
	Username        string
	Password        string
	DB              int
	PoolSize        int
	MinIdleConns    int
	MaxIdleConns    int
	PoolTimeout     time.Duration
	IdleTimeout     time.Duration
	DialTimeout     time.Duration
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxRetries      int
	MinRetryBackoff time.Duration
	MaxRetryBackoff time.Duration
	CatalogTTL      time.Duration // how long a fetched catalog session lives
}

type DatabaseConfig struct {
	Enabled      bool // export presets are unavailable when false
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxConns     int
	MinConns     int
	MaxLifetime  time.Duration // in seconds
	MaxIdleTime  time.Duration // in seconds
	ReadTimeout  time.Duration // in seconds
	WriteTimeout time.Duration // in seconds
}
