package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Holds    HoldsConfig    `toml:"holds"`
	Schedule ScheduleConfig `toml:"schedule"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// HoldsConfig настройки временных блокировок слотов
type HoldsConfig struct {
	TTLSeconds          int `toml:"ttl_seconds"`
	RefreshGraceSeconds int `toml:"refresh_grace_seconds"`
}

// ScheduleConfig расписание работы помещений
type ScheduleConfig struct {
	OpenTime           string `toml:"open_time"`  // HH:MM
	CloseTime          string `toml:"close_time"` // HH:MM
	SlotMinutes        int    `toml:"slot_minutes"`
	NextSlotSearchDays int    `toml:"next_slot_search_days"`
}

// Load читает конфигурацию из TOML файла и подставляет значения по умолчанию
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Holds.TTLSeconds <= 0 {
		c.Holds.TTLSeconds = domain.DefaultHoldTTLSeconds
	}
	if c.Holds.RefreshGraceSeconds <= 0 {
		c.Holds.RefreshGraceSeconds = domain.DefaultHoldRefreshGraceSeconds
	}
	if c.Schedule.OpenTime == "" {
		c.Schedule.OpenTime = domain.DefaultOpenTime
	}
	if c.Schedule.CloseTime == "" {
		c.Schedule.CloseTime = domain.DefaultCloseTime
	}
	if c.Schedule.SlotMinutes <= 0 {
		c.Schedule.SlotMinutes = domain.DefaultSlotMinutes
	}
	if c.Schedule.NextSlotSearchDays <= 0 {
		c.Schedule.NextSlotSearchDays = domain.DefaultNextSlotSearchDays
	}
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Holds.RefreshGraceSeconds >= c.Holds.TTLSeconds {
		return fmt.Errorf("config: holds.refresh_grace_seconds must be less than holds.ttl_seconds")
	}
	return nil
}

// OperatingWindow собирает доменное окно работы из конфигурации
func (c *Config) OperatingWindow() (domain.OperatingWindow, error) {
	open, err := types.NewTimeStringFromString(c.Schedule.OpenTime)
	if err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("config: invalid schedule.open_time: %w", err)
	}
	close, err := types.NewTimeStringFromString(c.Schedule.CloseTime)
	if err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("config: invalid schedule.close_time: %w", err)
	}

	window := domain.OperatingWindow{
		Open:        open,
		Close:       close,
		SlotMinutes: c.Schedule.SlotMinutes,
	}
	if err := window.Validate(); err != nil {
		return domain.OperatingWindow{}, fmt.Errorf("config: invalid schedule: %w", err)
	}
	return window, nil
}
