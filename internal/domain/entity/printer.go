package entity

// Status estado derivado de una impresora. Nunca se persiste: se calcula
// a partir de papel, tinta y longitud de cola en cada lectura.
type Status string

const (
	StatusPrinting Status = "PRINTING"
	StatusPaused   Status = "PAUSED"
	StatusNoInk    Status = "NO_INK"
	StatusNoPaper  Status = "NO_PAPER"
)

// ValidStatus indica si s nombra un estado conocido.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPrinting, StatusPaused, StatusNoInk, StatusNoPaper:
		return true
	}
	return false
}

// Valores por defecto al crear una impresora: con tinta y papel, de modo
// que una impresora recién creada con cola vacía se lee como PAUSED.
const (
	DefaultInk   = 1
	DefaultPaper = 1
)

// Printer una impresora: alias, modelo, ubicación, IP, niveles de tinta y
// papel. La cola de impresión y la pertenencia a grupos viven en el almacén
// (jobs.printer_id y la tabla de unión), no en la entidad.
type Printer struct {
	ID       int64
	OwnerID  int64
	Alias    string
	Model    string
	Location string
	IP       string
	Ink      int
	Paper    int
}

// CurrentStatus deriva el estado de la impresora. Sin papel bloquea antes
// que sin tinta; con consumibles, la cola decide entre PAUSED y PRINTING.
func (p *Printer) CurrentStatus(queueLen int) Status {
	switch {
	case p.Paper == 0:
		return StatusNoPaper
	case p.Ink == 0:
		return StatusNoInk
	case queueLen == 0:
		return StatusPaused
	default:
		return StatusPrinting
	}
}
