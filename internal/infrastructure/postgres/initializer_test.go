package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements_SeparaYLimpia(t *testing.T) {
	script := `
-- esquema de prueba
CREATE TABLE IF NOT EXISTS t (
    id BIGSERIAL PRIMARY KEY, -- clave
    name TEXT NOT NULL
);

-- datos
INSERT INTO t (name) VALUES ('a');
INSERT INTO t (name) VALUES ('b');
`
	stmts := splitStatements(script)
	require.Len(t, stmts, 3)
	assert.Contains(t, stmts[0], "CREATE TABLE")
	assert.Contains(t, stmts[1], "('a')")
	assert.Contains(t, stmts[2], "('b')")

	for _, s := range stmts {
		assert.NotContains(t, s, "-- esquema", "las líneas de comentario se descartan")
		assert.NotEmpty(t, s)
	}
}

func TestSplitStatements_ScriptVacio(t *testing.T) {
	assert.Empty(t, splitStatements(""))
	assert.Empty(t, splitStatements("-- solo comentarios\n-- nada más\n"))
	assert.Empty(t, splitStatements(";;;\n"))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value (SQLSTATE 23505)`)))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("conexión perdida")))
}

func TestLoadScript_CaeAlRecursoEmbebido(t *testing.T) {
	ini := &Initializer{}

	script, source, err := ini.loadScript("no-existe-en-disco/schema.sql")
	require.NoError(t, err)
	assert.Equal(t, "embedded:schema.sql", source)
	assert.Contains(t, script, "CREATE TABLE")

	_, _, err = ini.loadScript("tampoco-existe.sql")
	assert.Error(t, err, "un script desconocido sin copia embebida es falla")
}
