package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config del servicio. Todo opcional: lo que falta cae en modo dev
// (repos in-memory, creador in-memory, X-Debug-User-ID, sin gating por plan).
type Config struct {
	Port string

	DBDSN string

	PetServiceURL     string
	PetServiceAPIKey  string
	PetServiceTimeout time.Duration

	OdinBaseURL string
	OdinAPIKey  string

	PlansBaseURL         string
	PlansAPIKey          string
	AllowAllCapabilities bool

	CORSAllowedOrigins []string
	DocsEnabled        bool

	LogLevel  string
	LogFormat string
	AppName   string
}

// Load lee .env (si existe) y después el entorno. Las variables ya seteadas
// en el entorno ganan sobre .env.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	timeout, err := durationEnv("PET_SERVICE_TIMEOUT", 10*time.Second)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port: stringEnv("PORT", "8080"),

		DBDSN: stringEnv("DB_DSN", ""),

		PetServiceURL:     stringEnv("PET_SERVICE_URL", ""),
		PetServiceAPIKey:  stringEnv("PET_SERVICE_API_KEY", ""),
		PetServiceTimeout: timeout,

		OdinBaseURL: stringEnv("ODIN_BASE_URL", ""),
		OdinAPIKey:  stringEnv("ODIN_API_KEY", ""),

		PlansBaseURL:         stringEnv("PLANS_BASE_URL", ""),
		PlansAPIKey:          stringEnv("PLANS_API_KEY", ""),
		AllowAllCapabilities: boolEnv("ALLOW_ALL_CAPABILITIES", false),

		CORSAllowedOrigins: listEnv("CORS_ALLOWED_ORIGINS"),
		DocsEnabled:        boolEnv("DOCS_ENABLED", true),

		LogLevel:  stringEnv("LOG_LEVEL", "info"),
		LogFormat: stringEnv("LOG_FORMAT", "text"),
		AppName:   stringEnv("APP_NAME", "pet-intake"),
	}, nil
}

// Addr para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// PlansEnabled: hay gating por plan si hay upstream o si se fuerza allow-all.
func (c Config) PlansEnabled() bool {
	return c.AllowAllCapabilities || (c.PlansBaseURL != "" && c.PlansAPIKey != "")
}

func stringEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func boolEnv(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func listEnv(key string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return nil
	}
	out := make([]string, 0)
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
