package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/inventario-server/internal/application/dto"
	"github.com/jhoicas/inventario-server/internal/audit"
	"github.com/jhoicas/inventario-server/internal/domain/entity"
	"github.com/jhoicas/inventario-server/internal/domain/repository"
	"github.com/jhoicas/inventario-server/pkg/jwt"
)

const opAuth = "AUTH"

// Hash bcrypt (cost 10) contra el que se compara cuando el username no
// existe, para que ese camino cueste lo mismo que una contraseña incorrecta
// y el tiempo de respuesta no delate qué usernames existen.
const unknownUserHash = "$2b$10$xurSX5OIyTf3WKfmnWPi3OxtAT1zQNDUu7CEVdhR7ThYeTyR6x8iW"

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase autentica credenciales contra el hash almacenado y emite el
// token de sesión. Usuario inexistente y contraseña incorrecta producen la
// misma respuesta observable; solo el detalle de auditoría los distingue.
type AuthUseCase struct {
	repo   repository.EmployeeRepository
	audit  audit.Recorder
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de autenticación.
func NewAuthUseCase(repo repository.EmployeeRepository, rec audit.Recorder, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, audit: rec, jwtCfg: jwtCfg}
}

// Login verifica username/password. La comparación bcrypt es de tiempo
// constante y el salt viene embebido en el hash almacenado. Un error de la
// DB sí es falla (se propaga); credenciales malas no lo son.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	employee, err := uc.repo.GetByUsername(ctx, in.Username)
	if err != nil {
		uc.audit.Error(opAuth, fmt.Sprintf("error autenticando a %q: %v", in.Username, err), "system")
		return nil, err
	}
	if employee == nil {
		// Comparación descartada para igualar el trabajo con el camino de
		// contraseña incorrecta.
		_ = bcrypt.CompareHashAndPassword([]byte(unknownUserHash), []byte(in.Password))
		uc.audit.Record(opAuth, fmt.Sprintf("intento de autenticación de usuario inexistente: %q", in.Username), "system")
		return &dto.LoginResponse{Authenticated: false}, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		uc.audit.Record(opAuth, fmt.Sprintf("credenciales inválidas para %q", in.Username), "system")
		return &dto.LoginResponse{Authenticated: false}, nil
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, employee.Username, employee.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		uc.audit.Error(opAuth, fmt.Sprintf("fallo emitiendo token para %q: %v", in.Username, err), "system")
		return nil, err
	}

	uc.audit.Record(opAuth, fmt.Sprintf("autenticación exitosa de %q", employee.Username), employee.Username)
	return &dto.LoginResponse{
		Authenticated: true,
		Admin:         employee.IsAdmin(),
		Token:         token,
		Employee:      toEmployeeResponse(employee),
	}, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Username:  e.Username,
		Fullname:  e.Fullname,
		Role:      e.Role,
		CreatedAt: e.CreatedAt,
	}
}
