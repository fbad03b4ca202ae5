package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del BFF (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	DB      DBConfig
	JWT     JWTConfig
	Backend BackendConfig
	Breaker BreakerConfig
	Cache   CacheConfig
	Session SessionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Locale   string // idioma para ordenar códigos (collation), ej. "ja"
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DBConfig configuración de PostgreSQL para el almacén de preferencias de UI.
// Si DatabaseURL y Host están vacíos se usa el almacén en memoria.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// Enabled indica si hay una base de datos configurada.
func (c DBConfig) Enabled() bool {
	return c.DatabaseURL != "" || c.Host != ""
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT (solo validación; los tokens los emite el backend).
type JWTConfig struct {
	Secret string
	Issuer string
	// MasterRoles roles autorizados para acciones masivas sobre maestros (vacío = todos).
	MasterRoles []string
}

// BackendConfig configuración del servicio REST externo de inventario/引当.
type BackendConfig struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// BreakerConfig parámetros del circuit breaker hacia el backend.
type BreakerConfig struct {
	MaxRequests         uint32
	Interval            time.Duration
	Timeout             time.Duration
	ConsecutiveFailures uint32
}

// CacheConfig configuración de la caché de consultas.
type CacheConfig struct {
	StaleTime time.Duration // 0 = los datos solo caducan por invalidación
}

// SessionConfig configuración de las sesiones de asignación.
type SessionConfig struct {
	ToastTTL time.Duration
	IdleTTL  time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración desde una instancia de Viper ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "lot-allocation-bff"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Locale:   getString(v, "APP_LOCALE", "ja"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", ""),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "lot_allocation"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:      getString(v, "JWT_SECRET", ""),
			Issuer:      getString(v, "JWT_ISSUER", "lot-management"),
			MasterRoles: getList(v, "MASTER_ROLES"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getString(v, "BACKEND_BASE_URL", "http://localhost:8000/api"), "/"),
			Token:   getString(v, "BACKEND_TOKEN", ""),
			Timeout: getSeconds(v, "BACKEND_TIMEOUT_SECONDS", 30),
		},
		Breaker: BreakerConfig{
			MaxRequests:         uint32(getInt(v, "BREAKER_MAX_REQUESTS", 3)),
			Interval:            getSeconds(v, "BREAKER_INTERVAL_SECONDS", 60),
			Timeout:             getSeconds(v, "BREAKER_TIMEOUT_SECONDS", 30),
			ConsecutiveFailures: uint32(getInt(v, "BREAKER_CONSECUTIVE_FAILURES", 5)),
		},
		Cache: CacheConfig{
			StaleTime: getSeconds(v, "CACHE_STALE_SECONDS", 0),
		},
		Session: SessionConfig{
			ToastTTL: getSeconds(v, "TOAST_SECONDS", 5),
			IdleTTL:  getSeconds(v, "SESSION_IDLE_SECONDS", 8*60*60),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_BASE_URL es obligatorio")
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// getList lee una lista separada por comas ("admin, manager").
func getList(v *viper.Viper, key string) []string {
	var out []string
	for _, p := range strings.Split(getString(v, key, ""), ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getSeconds(v *viper.Viper, key string, def int) time.Duration {
	return time.Duration(getInt(v, key, def)) * time.Second
}
