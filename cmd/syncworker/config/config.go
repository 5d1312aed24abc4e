package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL"`
	StockAPIURL   string        `env:"STOCK_API_URL"`
	StockAPIKey   string        `env:"STOCK_API_KEY"`
	PageSize      int           `env:"PAGE_SIZE" envDefault:"20"`
	StockPageSize int           `env:"STOCK_PAGE_SIZE" envDefault:"100"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"stocksync-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"stocksync.commands"`
}
