package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/cleanpos/pkg/metrics"
	"golang.org/x/sync/singleflight"
)

// entry — закэшированное значение и момент его получения (для TTL).
type entry[V any] struct {
	value      V
	capturedAt time.Time
}

type options struct {
	now func() time.Time
}

// Option — настройка FlightCache.
type Option func(*options)

// WithClock — подменить часы (в тестах TTL).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// FlightCache — процессный кэш справочных данных с дедупликацией загрузок.
//
// Гарантии:
//   - на один ключ одновременно выполняется не больше одной загрузки;
//   - все, кто ждал загрузку, получают одно и то же значение или одну и ту же ошибку;
//   - ошибка не кэшируется, следующий Get загрузит заново;
//   - мьютекс держится только на поиск/регистрацию, сама загрузка идёт без него;
//   - после Clear/Forget/Seed результат загрузки, начатой до них, в кэш не попадает.
//
// ttl <= 0 — записи не устаревают (инвалидация только через Clear/Forget/Seed).
type FlightCache[V any] struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	mu       sync.Mutex
	entries  map[string]entry[V]
	group    *singleflight.Group
	gen      uint64            // растёт при Clear
	seq      uint64            // источник версий ключей
	versions map[string]uint64 // версия ключа; меняется при Forget/Seed
}

// NewFlightCache — конструктор; name используется как метка метрик.
func NewFlightCache[V any](name string, ttl time.Duration, opts ...Option) *FlightCache[V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &FlightCache[V]{
		name:    name,
		ttl:     ttl,
		now:     o.now,
		entries:  make(map[string]entry[V]),
		group:    new(singleflight.Group),
		versions: make(map[string]uint64),
	}
}

// Get — вернуть значение из кэша; при промахе присоединиться к идущей загрузке
// или начать новую через fetch.
//
// Загрузка выполняется на контексте без отмены: если вызывающий ушёл (ctx отменён),
// он получает ctx.Err(), а загрузка продолжается для остальных ожидающих.
// Таймауты загрузки — забота самого fetch.
func (c *FlightCache[V]) Get(ctx context.Context, key string, fetch func(context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if v, ok := c.lookupLocked(key); ok {
		c.mu.Unlock()
		c.op("hit")
		return v, nil
	}
	gen, ver := c.gen, c.versions[key]
	loadCtx := context.WithoutCancel(ctx)
	// Регистрация под тем же замком, что и поиск: два одновременных промаха
	// по одному ключу гарантированно попадают в один вызов.
	ch := c.group.DoChan(key, func() (any, error) {
		return c.load(loadCtx, key, gen, ver, fetch)
	})
	c.mu.Unlock()
	c.op("miss")

	var zero V
	select {
	case res := <-ch:
		if res.Shared {
			c.op("shared")
		}
		if res.Err != nil {
			return zero, res.Err
		}
		v, _ := res.Val.(V)
		return v, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Seed — положить значение напрямую (например, из заказа, в который встроен филиал).
// Загрузка по этому ключу, начатая до Seed, его не перезапишет.
func (c *FlightCache[V]) Seed(key string, value V) {
	c.SeedIf(key, value, nil)
}

// SeedIf — как Seed, но если по ключу уже лежит актуальная запись, она заменяется
// только когда replace(текущее) == true. nil replace — заменять всегда.
// Возвращает, записано ли значение.
func (c *FlightCache[V]) SeedIf(key string, value V, replace func(current V) bool) bool {
	c.mu.Lock()
	if cur, ok := c.lookupLocked(key); ok && replace != nil && !replace(cur) {
		c.mu.Unlock()
		c.op("seed_skipped")
		return false
	}
	c.entries[key] = entry[V]{value: value, capturedAt: c.now()}
	c.group.Forget(key)
	c.bumpLocked(key)
	c.sizeLocked()
	c.mu.Unlock()
	c.op("seeded")
	return true
}

// Forget — удалить запись и отметку о загрузке по одному ключу.
// Загрузки других ключей не затрагиваются.
func (c *FlightCache[V]) Forget(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.group.Forget(key)
	c.bumpLocked(key)
	c.sizeLocked()
	c.mu.Unlock()
	c.op("forgotten")
}

// Clear — удалить все записи и все отметки о загрузках.
// Загрузки, начатые до Clear, отдадут результат своим ожидающим, но в кэш его не запишут.
func (c *FlightCache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]entry[V])
	c.group = new(singleflight.Group)
	c.versions = make(map[string]uint64)
	c.gen++
	c.sizeLocked()
	c.mu.Unlock()
	c.op("cleared")
}

// Len — число записей (включая ещё не вычищенные устаревшие).
func (c *FlightCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// ------вспомогательные функции------

// lookupLocked — поиск с проверкой TTL; устаревшая запись удаляется. Вызывать под c.mu.
func (c *FlightCache[V]) lookupLocked(key string) (V, bool) {
	ent, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.isExpired(ent) {
		delete(c.entries, key)
		c.sizeLocked()
		c.op("expired")
		var zero V
		return zero, false
	}
	return ent.value, true
}

// load — сама загрузка; выполняется в горутине singleflight без c.mu.
func (c *FlightCache[V]) load(ctx context.Context, key string, gen, ver uint64, fetch func(context.Context) (V, error)) (any, error) {
	start := time.Now()
	v, err := fetch(ctx)
	metrics.CacheFetchDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
	if err != nil {
		c.op("fetch_error")
		return nil, err
	}

	c.mu.Lock()
	if c.gen == gen && c.versions[key] == ver {
		c.entries[key] = entry[V]{value: v, capturedAt: c.now()}
		c.sizeLocked()
	} else {
		c.op("fetch_discarded")
	}
	c.mu.Unlock()
	return v, nil
}

// bumpLocked — новая версия ключа; загрузки со старой версией не сохраняются. Вызывать под c.mu.
func (c *FlightCache[V]) bumpLocked(key string) {
	c.seq++
	c.versions[key] = c.seq
}

func (c *FlightCache[V]) isExpired(ent entry[V]) bool {
	if c.ttl <= 0 {
		return false
	}
	return c.now().Sub(ent.capturedAt) > c.ttl
}

func (c *FlightCache[V]) sizeLocked() {
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(len(c.entries)))
}

func (c *FlightCache[V]) op(name string) {
	metrics.CacheOps.WithLabelValues(c.name, name).Inc()
}
