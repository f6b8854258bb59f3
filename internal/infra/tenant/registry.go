package tenant

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"amenity-booking/internal/infra/db"
	"amenity-booking/internal/pkg/config"
	"amenity-booking/internal/pkg/errs"
	pkgtenant "amenity-booking/internal/pkg/tenant"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrUnknownTenant = errs.NotFound("unknown tenant")

type Connector func(cfg config.DBConfig, dbName string) (*pgxpool.Pool, func(), error)

// Registry owns one lazily opened pool per tenant database.
type Registry struct {
	dbCfg     config.DBConfig
	databases map[string]string
	connect   Connector

	mu      sync.Mutex
	pools   map[string]*pgxpool.Pool
	closers []func()
}

func NewRegistry(cfg config.Config) *Registry {
	return NewRegistryWithConnector(cfg.DB, cfg.TenantDatabases(), db.ConnectTo)
}

func NewRegistryWithConnector(dbCfg config.DBConfig, databases map[string]string, connect Connector) *Registry {
	return &Registry{
		dbCfg:     dbCfg,
		databases: databases,
		connect:   connect,
		pools:     make(map[string]*pgxpool.Pool),
	}
}

// Register attaches an already open pool, e.g. one created by a test harness.
func (r *Registry) Register(tenantID string, pool *pgxpool.Pool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.databases[tenantID]; !ok {
		r.databases[tenantID] = tenantID
	}
	r.pools[tenantID] = pool
}

func (r *Registry) Has(tenantID string) bool {
	_, ok := r.databases[tenantID]
	return ok
}

func (r *Registry) Tenants() []string {
	ids := make([]string, 0, len(r.databases))
	for id := range r.databases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Pool resolves the pool of the tenant carried by ctx.
func (r *Registry) Pool(ctx context.Context) (*pgxpool.Pool, error) {
	tenantID, err := pkgtenant.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.PoolFor(tenantID)
}

func (r *Registry) PoolFor(tenantID string) (*pgxpool.Pool, error) {
	dbName, ok := r.databases[tenantID]
	if !ok {
		return nil, ErrUnknownTenant
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pool, ok := r.pools[tenantID]; ok {
		return pool, nil
	}

	pool, cleanup, err := r.connect(r.dbCfg, dbName)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open tenant database")
	}
	r.pools[tenantID] = pool
	r.closers = append(r.closers, cleanup)
	slog.Info("tenant database pool opened", "tenant_id", tenantID, "database", dbName)
	return pool, nil
}

// Close releases every pool the registry opened itself.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, closeFn := range r.closers {
		closeFn()
	}
	r.closers = nil
	r.pools = make(map[string]*pgxpool.Pool)
}
