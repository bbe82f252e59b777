package kafka

import (
	"context"
	"errors"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/cleanpos/pkg/metrics"
	"github.com/Gunvolt24/cleanpos/pkg/validate"
)

// handleMessage обрабатывает одно сообщение и решает, коммитить ли оффсет.
func (c *Consumer) handleMessage(ctx context.Context, topic string, msg *kafka.Message) bool {
	ctxTimeout, cancel := context.WithTimeout(ctx, c.processTimeout)
	err := c.service.SaveFromMessage(ctxTimeout, msg.Value)
	cancel()

	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, validate.ErrInvalidOrder):
		// Мусор или невалидный заказ: повтор ничего не изменит, коммитим.
		metrics.KafkaMessagesFailed.WithLabelValues(topic, "invalid").Inc()
		c.log.Warnf(ctx, "invalid order partition=%d offset=%d key=%s: %v (skipped)", msg.Partition, msg.Offset, msg.Key, err)
		return true
	default:
		// БД/сеть/таймаут: без коммита, сообщение придёт снова.
		metrics.KafkaMessagesFailed.WithLabelValues(topic, "transient").Inc()
		c.log.Warnf(ctx, "ingest failed partition=%d offset=%d key=%s: %v (will retry without commit)", msg.Partition, msg.Offset, msg.Key, err)
		return false
	}
}

// commitSafely пытается закоммитить оффсет и залогировать ошибку.
func (c *Consumer) commitSafely(ctx context.Context, msg *kafka.Message) {
	if commitErr := c.reader.CommitMessages(ctx, *msg); commitErr != nil {
		c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, commitErr)
	}
}

// sleepWithBackoff ждет backoff или останавливается по контексту.
func (c *Consumer) sleepWithBackoff(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

// nextBackoff возвращает следующее время ожидания повтора с учетом retryMax.
func (c *Consumer) nextBackoff(current time.Duration) time.Duration {
	current *= 2
	if current > c.retryMax {
		return c.retryMax
	}
	return current
}

// withJitterEqual — умеренная случайность: половина задержки фиксирована,
// вторая половина — случайная. Баланс между стабильностью и случайностью.
func (c *Consumer) withJitterEqual(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	jitter := time.Duration(c.jitterRand.Int63n(int64(d-half) + 1))
	return half + jitter
}

// minDuration возвращает минимальное время из двух.
func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
