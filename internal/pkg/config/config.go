package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded
// from an env file when running locally.
func InitConfig(configPath string) *models.Config {
	v := viper.New()
	v.AutomaticEnv()

	if v.GetString("APP_ENV") == "" || v.GetString("APP_ENV") == "local" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	setDefaults(v)
	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("SERVER_PORT", 9990)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("NSQ_CHANNEL", "dashboard")
	v.SetDefault("JWT_EXPIRATION", 60)
	v.SetDefault("ROUTING_TIMEOUT_SEC", 10)
	v.SetDefault("ROUTING_CACHE_TTL_MIN", 30)
	v.SetDefault("TAX_CGST_PERCENT", 2.5)
	v.SetDefault("TAX_SGST_PERCENT", 2.5)
	v.SetDefault("TAX_IGST_PERCENT", 5.0)
	v.SetDefault("RATE_LIMIT_LOGIN", 10)
	v.SetDefault("RATE_LIMIT_LOGIN_PERIOD_MIN", 5)
	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NSQ config
	configs.NSQ.ProducerAddr = v.GetString("NSQ_PRODUCER_ADDR")
	configs.NSQ.LookupdAddrs = splitAddrs(v.GetString("NSQ_LOOKUPD_ADDRS"))
	configs.NSQ.Channel = v.GetString("NSQ_CHANNEL")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// API key config
	configs.APIKey.DashboardService = v.GetString("DASHBOARD_SERVICE_API_KEY")
	configs.APIKey.VendorPortal = v.GetString("VENDOR_PORTAL_API_KEY")

	// Routing provider config
	configs.Routing.BaseURL = v.GetString("ROUTING_BASE_URL")
	configs.Routing.APIKey = v.GetString("ROUTING_API_KEY")
	configs.Routing.TimeoutSec = v.GetInt("ROUTING_TIMEOUT_SEC")
	configs.Routing.CacheTTLMin = v.GetInt("ROUTING_CACHE_TTL_MIN")

	// Tax config
	configs.Tax.CGSTPercent = v.GetFloat64("TAX_CGST_PERCENT")
	configs.Tax.SGSTPercent = v.GetFloat64("TAX_SGST_PERCENT")
	configs.Tax.IGSTPercent = v.GetFloat64("TAX_IGST_PERCENT")

	// Rate limit config
	configs.RateLimit.LoginLimit = v.GetInt("RATE_LIMIT_LOGIN")
	configs.RateLimit.LoginPeriodMin = v.GetInt("RATE_LIMIT_LOGIN_PERIOD_MIN")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

func splitAddrs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	addrs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			addrs = append(addrs, p)
		}
	}
	return addrs
}
