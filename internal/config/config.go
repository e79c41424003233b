// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env        string `yaml:"env" env:"APP_ENV" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Supabase   `yaml:"supabase"`
	Session    `yaml:"session"`
	Admin      `yaml:"admin"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"HTTP_ADDRESS" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// Supabase структура для подключения к внешнему сервису идентификации и БД.
// ServiceKey используется для административных операций,
// AnonKey — для публичных запросов (проверка доступности).
type Supabase struct {
	URL        string `yaml:"url" env:"SUPABASE_URL"`
	ServiceKey string `yaml:"service_key" env:"SUPABASE_SERVICE_ROLE_KEY"`
	AnonKey    string `yaml:"anon_key" env:"SUPABASE_ANON_KEY"`
}

// Session структура для подписи сессионного токена администратора
type Session struct {
	SecretKey  string        `yaml:"secret_key" env:"SESSION_SECRET_KEY"`
	SessionTTL time.Duration `yaml:"session_ttl" env-default:"168h"`
}

// Admin учетные данные единственного администратора панели.
// Пароль хранится только в виде bcrypt-хэша.
type Admin struct {
	Email        string `yaml:"email" env:"ADMIN_EMAIL"`
	PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
}

// MustLoad функция для загрузки конфига, возвращает конфиг, прочитанный из файла CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"Supabase:\n"+
			"  URL: %s\n"+
			"Session:\n"+
			"  TTL: %s\n"+
			"Admin:\n"+
			"  Email: %s\n",
		c.Env,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.URL,
		c.SessionTTL,
		c.Email,
	)
}
