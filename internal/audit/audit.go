package audit

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Recorder es el puerto que usan los casos de uso para dejar rastro de
// auditoría: exactamente una entrada por acción mutadora significativa.
// Las lecturas puras no se registran.
type Recorder interface {
	// Record registra una acción completada con éxito.
	Record(operation, detail, actor string)
	// Error registra una acción fallida, marcada como error, antes de que
	// la falla se propague al caller.
	Error(operation, detail, actor string)
}

// Logger implementación de Recorder sobre zerolog: líneas JSON append-only
// en el archivo configurado, con copia a stdout. Cada entrada lleva id
// propio, timestamp, operación, actor y detalle. Nunca se escriben
// contraseñas ni hashes.
type Logger struct {
	zl   zerolog.Logger
	file *os.File
}

// New abre (o crea) el archivo de auditoría en modo append.
func New(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("abrir archivo de auditoría %s: %w", path, err)
	}
	zl := zerolog.New(io.MultiWriter(f, os.Stdout)).With().Timestamp().Logger()
	return &Logger{zl: zl, file: f}, nil
}

// Record registra una acción exitosa.
func (l *Logger) Record(operation, detail, actor string) {
	l.entry(operation, detail, actor, "ok")
}

// Error registra una acción fallida.
func (l *Logger) Error(operation, detail, actor string) {
	l.entry(operation, detail, actor, "error")
}

func (l *Logger) entry(operation, detail, actor, outcome string) {
	l.zl.Log().
		Str("audit_id", uuid.NewString()).
		Str("operation", operation).
		Str("actor", actor).
		Str("outcome", outcome).
		Msg(detail)
}

// Close cierra el archivo de auditoría.
func (l *Logger) Close() error {
	return l.file.Close()
}
