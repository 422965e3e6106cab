package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dmtrv/RB-ReservationService/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Booking  Booking  `toml:"booking"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN возвращает строку подключения для lib/pq
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Booking политика бронирования
type Booking struct {
	// ReservationDurationMinutes фиксированная длительность брони столика
	ReservationDurationMinutes int `toml:"reservation_duration_minutes"`
	// MinLeadTimeMinutes минимальный зазор между "сейчас" и началом брони
	MinLeadTimeMinutes int `toml:"min_lead_time_minutes"`
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	// Дефолты политики бронирования
	if cfg.Booking.ReservationDurationMinutes <= 0 {
		cfg.Booking.ReservationDurationMinutes = domain.DefaultReservationDurationMinutes
	}
	if cfg.Booking.MinLeadTimeMinutes <= 0 {
		cfg.Booking.MinLeadTimeMinutes = domain.DefaultMinLeadTimeMinutes
	}

	return &cfg, nil
}
