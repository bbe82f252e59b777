package ports

import "context"

// MessageConsumer — фоновый потребитель сообщений (Kafka); Run блокируется до отмены ctx.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
