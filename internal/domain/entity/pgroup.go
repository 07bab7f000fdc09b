package entity

// PGroup un grupo de impresoras. Una impresora puede pertenecer a varios
// grupos; la relación vive en la tabla de unión y ambos lados son vistas
// de las mismas filas.
type PGroup struct {
	ID      int64
	OwnerID int64
	Name    string
}
