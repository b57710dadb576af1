package dto

// LoginRequest credenciales de autenticación.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse resultado de autenticación. Usuario inexistente y
// contraseña incorrecta devuelven exactamente la misma forma
// (authenticated=false, sin empleado ni token) para no permitir enumerar
// usernames por la forma de la respuesta. Admin se deriva del rol en el
// momento de autenticar y no se persiste.
type LoginResponse struct {
	Authenticated bool              `json:"authenticated"`
	Admin         bool              `json:"admin"`
	Token         string            `json:"token,omitempty"`
	Employee      *EmployeeResponse `json:"employee,omitempty"`
}
