package postgres

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jhoicas/inventario-server/pkg/config"
	"github.com/jhoicas/inventario-server/pkg/logger"
)

//go:embed scripts/schema.sql scripts/data.sql
var embeddedScripts embed.FS

// Directorios candidatos donde buscar los scripts SQL antes de caer al
// recurso embebido. Gana la primera coincidencia.
var scriptDirs = []string{"config", "conf", ".", "/etc/inventario-server"}

// Initializer aplica opcionalmente el script de esquema y el de datos
// semilla antes de que los servicios acepten llamadas. Ambos pasos se
// controlan por flags de configuración y son seguros de re-ejecutar.
type Initializer struct {
	pool *Pool
	cfg  config.InitConfig
	log  *logger.Logger
}

// NewInitializer construye el inicializador.
func NewInitializer(pool *Pool, cfg config.InitConfig, log *logger.Logger) *Initializer {
	return &Initializer{pool: pool, cfg: cfg, log: log}
}

// Run ejecuta la inicialización según los flags. Un script requerido que no
// se encuentra o no aplica es una falla de arranque: el caller debe abortar.
func (i *Initializer) Run(ctx context.Context) error {
	if i.cfg.CreateSchema {
		i.log.Info().Str("script", i.cfg.SchemaPath).Msg("aplicando esquema")
		if err := i.apply(ctx, i.cfg.SchemaPath, false); err != nil {
			return fmt.Errorf("crear esquema: %w", err)
		}
	} else {
		i.log.Debug().Msg("creación de esquema omitida")
	}

	if i.cfg.LoadSeedData {
		i.log.Info().Str("script", i.cfg.SeedPath).Msg("cargando datos semilla")
		if err := i.apply(ctx, i.cfg.SeedPath, true); err != nil {
			return fmt.Errorf("cargar datos semilla: %w", err)
		}
	} else {
		i.log.Debug().Msg("carga de datos semilla omitida")
	}

	return nil
}

// apply carga el script y lo ejecuta sentencia por sentencia sobre una
// conexión prestada. Con tolerateDuplicates, las violaciones de unicidad se
// ignoran para que recargar la semilla sea idempotente.
func (i *Initializer) apply(ctx context.Context, name string, tolerateDuplicates bool) error {
	script, source, err := i.loadScript(name)
	if err != nil {
		return err
	}
	i.log.Debug().Str("source", source).Msg("script localizado")

	return i.pool.WithConn(ctx, func(q Querier) error {
		for _, stmt := range splitStatements(script) {
			if _, err := q.Exec(ctx, stmt); err != nil {
				if tolerateDuplicates && isUniqueViolation(err) {
					i.log.Warn().Msg("entrada duplicada en datos semilla, se omite")
					continue
				}
				return fmt.Errorf("ejecutar sentencia: %w", err)
			}
		}
		return nil
	})
}

// loadScript resuelve el script: ruta tal cual, directorios candidatos y por
// último la copia embebida en el binario.
func (i *Initializer) loadScript(name string) (string, string, error) {
	candidates := []string{name}
	base := filepath.Base(name)
	for _, dir := range scriptDirs {
		candidates = append(candidates, filepath.Join(dir, base))
	}
	for _, c := range candidates {
		if data, err := os.ReadFile(c); err == nil {
			return string(data), c, nil
		}
	}
	if data, err := embeddedScripts.ReadFile("scripts/" + base); err == nil {
		return string(data), "embedded:" + base, nil
	}
	return "", "", fmt.Errorf("script %s no encontrado", name)
}

// splitStatements separa el script en sentencias individuales, descartando
// vacías y líneas de comentario.
func splitStatements(script string) []string {
	var out []string
	for _, raw := range strings.Split(script, ";") {
		var lines []string
		for _, line := range strings.Split(raw, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || strings.HasPrefix(trimmed, "--") {
				continue
			}
			lines = append(lines, line)
		}
		stmt := strings.TrimSpace(strings.Join(lines, "\n"))
		if stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
