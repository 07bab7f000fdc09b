package repository

// Repos agrupa los repositorios de todos los agregados, atados a la misma
// transacción del almacén. Cada operación de la API recibe un Repos y todo
// lo que haga con él se confirma o revierte como una unidad.
type Repos struct {
	Users    UserRepository
	Tokens   TokenRepository
	Printers PrinterRepository
	Groups   GroupRepository
	Jobs     JobRepository
}
