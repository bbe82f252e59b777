//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
)

const (
	defaultPGImage       = "postgres:16-alpine"
	defaultRedpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"
)

var tcLogger = log.New(os.Stdout, "[tc] ", log.LstdFlags)

// imageFromEnv — образ можно подменить переменной окружения (зеркало реестра в CI).
func imageFromEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// lifecycleLog — одна строка лога на каждую стадию жизни контейнера.
func lifecycleLog() tc.ContainerLifecycleHooks {
	stage := func(name string) []tc.ContainerHook {
		return []tc.ContainerHook{func(_ context.Context, c tc.Container) error {
			id := c.GetContainerID()
			if len(id) > 12 {
				id = id[:12]
			}
			tcLogger.Printf("%s id=%s", name, id)
			return nil
		}}
	}
	return tc.ContainerLifecycleHooks{
		PreCreates: []tc.ContainerRequestHook{func(_ context.Context, req tc.ContainerRequest) error {
			tcLogger.Printf("create image=%s", req.Image)
			return nil
		}},
		PostStarts:     stage("started"),
		PostReadies:    stage("ready"),
		PreTerminates:  stage("terminating"),
		PostTerminates: stage("terminated"),
	}
}

// PGContainer — Postgres в контейнере и пул к нему.
type PGContainer struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// Truncate — очистить таблицы между подтестами одного контейнера.
func (p *PGContainer) Truncate(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		tables = []string{"orders", "branches", "loyalty_transactions"}
	}
	_, err := p.Pool.Exec(ctx, "TRUNCATE "+strings.Join(tables, ", "))
	return err
}

func StartPostgresTC(ctx context.Context) (*PGContainer, func(context.Context) error, error) {
	pg, err := postgres.Run(
		ctx,
		imageFromEnv("CLEANPOS_TEST_PG_IMAGE", defaultPGImage),
		tc.WithLifecycleHooks(lifecycleLog()),
		postgres.WithDatabase("cleanpos"),
		postgres.WithUsername("app"),
		postgres.WithPassword("app"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run postgres: %w", err)
	}

	fail := func(step string, err error) (*PGContainer, func(context.Context) error, error) {
		_ = tc.TerminateContainer(pg)
		return nil, nil, fmt.Errorf("%s: %w", step, err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return fail("conn string", err)
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return fail("parse cfg", err)
	}
	cfg.MaxConns = 5
	cfg.MaxConnIdleTime = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return fail("new pool", err)
	}

	stop := func(c context.Context) error {
		pool.Close()
		return pg.Terminate(c)
	}
	return &PGContainer{Container: pg, DSN: dsn, Pool: pool}, stop, nil
}

// KafkaEnv — Redpanda (Kafka API) в контейнере.
type KafkaEnv struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

func StartKafkaTC(ctx context.Context, baseTopic string) (*KafkaEnv, func(context.Context) error, error) {
	rp, err := redpanda.Run(
		ctx,
		imageFromEnv("CLEANPOS_TEST_REDPANDA_IMAGE", defaultRedpandaImage),
		tc.WithLifecycleHooks(lifecycleLog()),
		redpanda.WithAutoCreateTopics(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, nil, fmt.Errorf("seed broker: %w", err)
	}

	env := &KafkaEnv{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}
	stop := func(_ context.Context) error { return tc.TerminateContainer(rp) }
	return env, stop, nil
}
