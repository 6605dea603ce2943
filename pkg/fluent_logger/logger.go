package fluentlogger

import (
	"fmt"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

const (
	defaultHost    = "127.0.0.1"
	defaultPort    = 24224
	defaultTimeout = 3 * time.Second
)

// Config хранит конфигурацию для подключения к Fluent Bit.
type Config struct {
	Host      string        // Например, "127.0.0.1" или "fluent-bit" в Docker
	Port      int           // Например, 24224
	TagPrefix string        // Общий префикс для всех тегов логов этого сервиса
	Timeout   time.Duration // Таймаут подключения и записи
	Async     bool          // Отправка в фоне, без блокировки вызывающего
}

// withDefaults подставляет значения по умолчанию и проверяет конфигурацию
func (c Config) withDefaults() (Config, error) {
	if c.TagPrefix == "" {
		return c, fmt.Errorf("fluentd tag prefix is required")
	}
	if c.Host == "" {
		c.Host = defaultHost
	}
	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.Port < 0 || c.Port > 65535 {
		return c, fmt.Errorf("fluentd port %d is out of range", c.Port)
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	return c, nil
}

// NewClient создает и возвращает новый клиент для Fluent Bit.
// Соединение не проверяется: ошибки появятся при первой отправке лога.
func NewClient(cfg Config) (*fluent.Fluent, error) {
	cfg, err := cfg.withDefaults()
	if err != nil {
		return nil, err
	}

	logger, err := fluent.New(fluent.Config{
		FluentHost:   cfg.Host,
		FluentPort:   cfg.Port,
		TagPrefix:    cfg.TagPrefix,
		Timeout:      cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		Async:        cfg.Async,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluentd logger: %w", err)
	}
	return logger, nil
}
