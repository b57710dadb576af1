package postgres

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-server/internal/domain"
	"github.com/jhoicas/inventario-server/pkg/config"
)

// Pool envuelve pgxpool.Pool acotando el pool de conexiones según la
// configuración: tamaño máximo, mínimo de conexiones vivas, expiración de
// conexiones ociosas y timeout de adquisición. Es el único dueño de las
// conexiones físicas; los repos las piden prestadas por operación vía
// WithConn y siempre las devuelven.
type Pool struct {
	inner          *pgxpool.Pool
	acquireTimeout time.Duration

	closeOnce sync.Once
	closed    atomic.Bool
}

// NewPool construye el pool y verifica conectividad con un ping inicial.
// El chequeo periódico de salud de pgxpool descarta conexiones muertas del
// set ocioso y las reemplaza (sonda de vida).
func NewPool(ctx context.Context, dbCfg config.DBConfig, poolCfg config.PoolConfig) (*Pool, error) {
	pc, err := pgxpool.ParseConfig(dbCfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	pc.MaxConns = poolCfg.MaxConns
	pc.MinConns = poolCfg.MinConns
	pc.MaxConnIdleTime = poolCfg.MaxConnIdleTime
	pc.HealthCheckPeriod = poolCfg.HealthCheckPeriod

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las
	// conexiones del pool).
	pc.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	inner, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := inner.Ping(ctx); err != nil {
		inner.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return &Pool{inner: inner, acquireTimeout: poolCfg.AcquireTimeout}, nil
}

// Acquire pide prestada una conexión. Espera como máximo el timeout de
// adquisición configurado; si no se libera ninguna en ese plazo devuelve
// domain.ErrPoolExhausted. Tras Close falla de inmediato con
// domain.ErrPoolClosed, sin colgarse.
func (p *Pool) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	if p.closed.Load() {
		return nil, domain.ErrPoolClosed
	}
	if p.acquireTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.acquireTimeout)
		defer cancel()
	}
	conn, err := p.inner.Acquire(ctx)
	if err != nil {
		if p.closed.Load() {
			return nil, domain.ErrPoolClosed
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: sin conexión libre tras %s", domain.ErrPoolExhausted, p.acquireTimeout)
		}
		return nil, fmt.Errorf("adquirir conexión: %w", err)
	}
	return conn, nil
}

// WithConn ejecuta fn con una conexión prestada y la devuelve al pool al
// terminar, con o sin error. Es el único camino de los repos hacia la DB.
func (p *Pool) WithConn(ctx context.Context, fn func(q Querier) error) error {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	return fn(conn)
}

// Ping verifica conectividad (usado por el endpoint de salud).
func (p *Pool) Ping(ctx context.Context) error {
	if p.closed.Load() {
		return domain.ErrPoolClosed
	}
	return p.inner.Ping(ctx)
}

// Close drena todas las conexiones y rechaza adquisiciones posteriores.
// Idempotente: una segunda llamada no hace nada.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		p.inner.Close()
	})
}
