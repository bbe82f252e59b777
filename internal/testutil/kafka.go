//go:build integration

package testutil

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup — уникальные topic/group на основе базового префикса.
func UniqueTopicAndGroup(base string) (topic, group string) {
	suffix := UniqSuffix()
	return base + "-" + suffix, base + "-grp-" + suffix
}

// EnsureTopic — создаёт топик с одной партицией (существующий — не ошибка) и ждёт его в метаданных.
// broker: "host:port", "PLAINTEXT://host:port" или список через запятую (берётся первый).
func EnsureTopic(ctx context.Context, broker, topic string) error {
	client := &kafka.Client{Addr: kafka.TCP(firstBootstrap(broker)), Timeout: 10 * time.Second}

	resp, err := client.CreateTopics(ctx, &kafka.CreateTopicsRequest{
		Topics: []kafka.TopicConfig{{Topic: topic, NumPartitions: 1, ReplicationFactor: 1}},
	})
	if err != nil {
		return fmt.Errorf("create topic %q: %w", topic, err)
	}
	if tErr := resp.Errors[topic]; tErr != nil && !errors.Is(tErr, kafka.TopicAlreadyExists) {
		return fmt.Errorf("create topic %q: %w", topic, tErr)
	}

	return waitTopicReady(ctx, client, topic)
}

// firstBootstrap — первый адрес bootstrap-строки без схемы.
func firstBootstrap(raw string) string {
	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if strings.Contains(first, "://") {
		if u, err := url.Parse(first); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return first
}

func waitTopicReady(ctx context.Context, client *kafka.Client, topic string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	tick := time.NewTicker(200 * time.Millisecond)
	defer tick.Stop()

	var lastErr error
	for {
		meta, err := client.Metadata(ctx, &kafka.MetadataRequest{Topics: []string{topic}})
		if err == nil {
			for _, t := range meta.Topics {
				if t.Name == topic && t.Error == nil && len(t.Partitions) > 0 {
					return nil
				}
			}
		}
		lastErr = err

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("topic %q not ready: %w", topic, lastErr)
			}
			return fmt.Errorf("topic %q not ready: %w", topic, ctx.Err())
		case <-tick.C:
		}
	}
}
