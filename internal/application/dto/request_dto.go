package dto

// Peticiones de la API. Todos los campos son punteros: nil significa que el
// campo no venía en el JSON, lo que distingue una actualización parcial de
// un valor vacío. Los set* solo tocan los campos presentes.

// LoginRequest entrada de /login.
type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// IDRequest entrada de los rm* (solo el id de la entidad a eliminar).
type IDRequest struct {
	ID *int64 `json:"id"`
}

// AddUserRequest entrada de /adduser (solo admin).
type AddUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// SetUserRequest entrada de /setuser (solo admin). Enabled viaja como texto
// "true"/"false", no como booleano JSON.
type SetUserRequest struct {
	ID       *int64  `json:"id"`
	Enabled  *string `json:"enabled"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// AddPrinterRequest entrada de /addprinter.
type AddPrinterRequest struct {
	Alias    *string  `json:"alias"`
	Model    *string  `json:"model"`
	Location *string  `json:"location"`
	IP       *string  `json:"ip"`
	Queue    *[]int64 `json:"queue"`
	Status   *string  `json:"status"`
	Groups   *[]int64 `json:"groups"`
}

// SetPrinterRequest entrada de /setprinter.
type SetPrinterRequest struct {
	ID       *int64   `json:"id"`
	Alias    *string  `json:"alias"`
	Model    *string  `json:"model"`
	Location *string  `json:"location"`
	IP       *string  `json:"ip"`
	Queue    *[]int64 `json:"queue"`
	Status   *string  `json:"status"`
	Groups   *[]int64 `json:"groups"`
}

// AddGroupRequest entrada de /addgroup.
type AddGroupRequest struct {
	Name     *string  `json:"name"`
	Printers *[]int64 `json:"printers"`
}

// SetGroupRequest entrada de /setgroup. Name es obligatorio también aquí,
// no solo en el alta.
type SetGroupRequest struct {
	ID       *int64   `json:"id"`
	Name     *string  `json:"name"`
	Printers *[]int64 `json:"printers"`
}

// AddJobRequest entrada de /addjob.
type AddJobRequest struct {
	FileName *string `json:"fileName"`
	Printer  *int64  `json:"printer"`
	Owner    *string `json:"owner"`
}

// SetJobRequest entrada de /setjob.
type SetJobRequest struct {
	ID       *int64  `json:"id"`
	FileName *string `json:"fileName"`
	Printer  *int64  `json:"printer"`
	Owner    *string `json:"owner"`
}
