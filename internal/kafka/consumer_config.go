package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — параметры потребителя заказов.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // first|last (по умолчанию last)

	ProcessTimeout time.Duration // предел обработки одного сообщения
	RetryInitial   time.Duration // стартовая пауза после ошибки брокера
	RetryMax       time.Duration // потолок экспоненциального backoff
}

// ReaderConfig — конфиг kafka.Reader с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}

func (c *ConsumerConfig) withDefaults() ConsumerConfig {
	out := *c
	if out.ProcessTimeout <= 0 {
		out.ProcessTimeout = 5 * time.Second
	}
	if out.RetryInitial <= 0 {
		out.RetryInitial = time.Second
	}
	if out.RetryMax <= 0 {
		out.RetryMax = 30 * time.Second
	}
	return out
}
