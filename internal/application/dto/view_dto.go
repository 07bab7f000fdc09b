package dto

import "github.com/jhoicas/printers-api/internal/domain/entity"

// UserView vista completa del sistema para el usuario autenticado. Es la
// respuesta de login, list y de todas las operaciones sobre impresoras,
// grupos y trabajos.
type UserView struct {
	ID       int64         `json:"id"`
	Username string        `json:"username"`
	Roles    []entity.Role `json:"roles"`
	Token    string        `json:"token"`
	Jobs     []JobView     `json:"jobs"`
	Printers []PrinterView `json:"printers"`
	Groups   []GroupView   `json:"groups"`
}

// JobView un trabajo en la vista de usuario.
type JobView struct {
	ID       int64  `json:"id"`
	Printer  int64  `json:"printer"`
	Owner    string `json:"owner"`
	FileName string `json:"fileName"`
}

// PrinterView una impresora en la vista de usuario. Status es el estado
// derivado en el momento de la lectura.
type PrinterView struct {
	ID       int64         `json:"id"`
	Alias    string        `json:"alias"`
	Model    string        `json:"model"`
	Location string        `json:"location"`
	IP       string        `json:"ip"`
	Groups   []int64       `json:"groups"`
	Queue    []int64       `json:"queue"`
	Status   entity.Status `json:"status"`
}

// GroupView un grupo en la vista de usuario.
type GroupView struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Printers []int64 `json:"printers"`
}

// AdminUserView resumen de un usuario para la gestión de administradores.
type AdminUserView struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Enabled      bool   `json:"enabled"`
	TokenCount   int    `json:"tokenCount"`
	JobCount     int    `json:"jobCount"`
	PrinterCount int    `json:"printerCount"`
	GroupCount   int    `json:"groupCount"`
}
