package entity

// Job un trabajo de impresión. Pertenece siempre a exactamente una cola:
// la pertenencia es el propio PrinterID más la posición, así que reasignar
// un trabajo lo mueve de cola, nunca lo duplica.
type Job struct {
	ID        int64
	OwnerID   int64
	PrinterID int64
	QueuePos  int
	Owner     string // nombre de quien envió el trabajo, texto libre
	FileName  string // debe terminar en .pdf
}
