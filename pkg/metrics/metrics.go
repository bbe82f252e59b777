package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic", "reason"}, // invalid|transient
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Reference cache operations",
		},
		[]string{"cache", "op"}, // hit|miss|expired|shared|fetch_error|seeded|forgotten|cleared
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
	CacheFetchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_fetch_duration_seconds",
			Help:    "Duration of upstream fetches issued by the cache",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"cache"},
	)
)

var DeliveryValidations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_validations_total",
		Help: "Delivery window validations by outcome",
	},
	[]string{"result"}, // valid|invalid|error
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// ObserveHTTP — учесть один обработанный запрос. route — шаблон маршрута, не сырой путь.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// MustRegister — регистрирует метрики в глобальном реестре.
// Повторный вызов безопасен: AlreadyRegisteredError игнорируется.
func MustRegister() {
	for _, c := range []prometheus.Collector{
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize, CacheFetchDuration,
		DeliveryValidations,
		HTTPRequests, HTTPDuration,
	} {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			panic(err)
		}
	}
}
