package dto

import "time"

// CreateEmployeeRequest cuerpo para crear un empleado. La contraseña llega
// en texto plano una sola vez y se hashea antes de persistir.
type CreateEmployeeRequest struct {
	Username string `json:"username"`
	Fullname string `json:"fullname"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateEmployeeRequest cuerpo para actualizar un empleado. El hash solo se
// recalcula cuando UpdatePassword es true.
type UpdateEmployeeRequest struct {
	Username       string `json:"username"`
	Fullname       string `json:"fullname"`
	Password       string `json:"password"`
	Role           string `json:"role"`
	UpdatePassword bool   `json:"update_password"`
}

// EmployeeResponse representación de un empleado hacia el cliente. El hash
// de contraseña nunca sale por la API.
type EmployeeResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Fullname  string    `json:"fullname"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
