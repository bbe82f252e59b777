package kafka

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/cleanpos/internal/ports"
	"github.com/Gunvolt24/cleanpos/pkg/ctxmeta"
	"github.com/Gunvolt24/cleanpos/pkg/metrics"
)

//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks

// Проверка, что Consumer удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — минимальный контракт над kafka.Reader для подмены в тестах.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// orderIngestor — приём заказа: парсинг, валидация, сохранение, прогрев справочника филиалов.
type orderIngestor interface {
	SaveFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — потребитель топика заказов поверх kafka.Reader.
type Consumer struct {
	reader         reader
	service        orderIngestor
	log            ports.Logger
	processTimeout time.Duration
	retryInitial   time.Duration
	retryMax       time.Duration
	jitterRand     *rand.Rand
	closeOnce      sync.Once
}

// NewConsumer — конструктор; оффсеты коммитятся вручную после обработки.
func NewConsumer(cfg *ConsumerConfig, service orderIngestor, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	return newConsumer(kafka.NewReader(c.ReaderConfig()), service, log, c)
}

func newConsumer(r reader, service orderIngestor, log ports.Logger, cfg ConsumerConfig) *Consumer {
	return &Consumer{
		reader:         r,
		service:        service,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		retryInitial:   cfg.RetryInitial,
		retryMax:       cfg.RetryMax,
		// jitterRand — рассинхронизирует backoff нескольких экземпляров.
		jitterRand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Run — основной цикл (at-least-once):
//  1. читаем сообщение без авто-коммита;
//  2. заказ сохранён —> коммит;
//  3. невалидный заказ —> лог и коммит (пропускаем навсегда);
//  4. временная ошибка —> без коммита, сообщение будет прочитано повторно.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "order consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	retry := c.retryInitial
	for {
		msg, fetchErr := c.reader.FetchMessage(ctx)
		if fetchErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Временная ошибка брокера/сети: ждём с equal-jitter и повторяем.
			sleep := c.withJitterEqual(retry)
			c.log.Warnf(ctx, "fetch failed: %v (will retry in %s)", fetchErr, sleep)
			if !c.sleepWithBackoff(ctx, sleep) {
				return ctx.Err()
			}
			retry = c.nextBackoff(retry)
			continue
		}

		retry = c.retryInitial
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		// ключ сообщения (id заказа) — в контекст для логов
		msgCtx := ctxmeta.WithRequestID(ctx, string(msg.Key))
		if c.handleMessage(msgCtx, rc.Topic, &msg) {
			c.commitSafely(msgCtx, &msg)
		} else {
			_ = c.sleepWithBackoff(ctx, c.withJitterEqual(minDuration(c.retryInitial, 500*time.Millisecond)))
		}
	}
}

// Close - закрывает reader. Вызывается при остановке приложения.
func (c *Consumer) Close() (retErr error) {
	c.closeOnce.Do(func() {
		retErr = c.reader.Close()
	})
	return retErr
}
