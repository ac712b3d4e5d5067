package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y
// opcionalmente archivo .env).
type Config struct {
	App      AppConfig
	API      APIConfig
	Identity IdentityConfig
	Storage  StorageConfig
	Callback CallbackConfig
}

// AppConfig configuración general.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig backend REST de Control Horario.
type APIConfig struct {
	BaseURL string
}

// IdentityConfig proveedor de identidad externo (estilo GoTrue).
type IdentityConfig struct {
	BaseURL string
	APIKey  string // clave pública publicable del proyecto
}

// StorageConfig almacenamiento local duradero (perfil activo, sesión).
type StorageConfig struct {
	Dir string // vacío = <user config dir>/control-horario
}

// ResolveDir devuelve el directorio efectivo, creándolo si no existe.
func (c StorageConfig) ResolveDir() (string, error) {
	dir := c.Dir
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("config: directorio de configuración del usuario: %w", err)
		}
		dir = filepath.Join(base, "control-horario")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("config: crear directorio %s: %w", dir, err)
	}
	return dir, nil
}

// CallbackConfig listener local para las redirecciones del proveedor de
// identidad (confirmación de email, recuperación de contraseña).
type CallbackConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c CallbackConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// API_URL, IDENTITY_URL, IDENTITY_KEY, STORAGE_DIR, CALLBACK_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "control-horario"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		API: APIConfig{
			BaseURL: getString(v, "API_URL", "http://localhost:3000"),
		},
		Identity: IdentityConfig{
			BaseURL: getString(v, "IDENTITY_URL", ""),
			APIKey:  getString(v, "IDENTITY_KEY", ""),
		},
		Storage: StorageConfig{
			Dir: getString(v, "STORAGE_DIR", ""),
		},
		Callback: CallbackConfig{
			Host: getString(v, "CALLBACK_HOST", "127.0.0.1"),
			Port: getInt(v, "CALLBACK_PORT", 53682),
		},
	}

	if cfg.Identity.BaseURL == "" {
		return nil, fmt.Errorf("config: IDENTITY_URL es obligatorio")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
