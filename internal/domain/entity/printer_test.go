package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/printers-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Derivación de estado
// ──────────────────────────────────────────────────────────────────────────────

// El estado nunca se persiste: se deriva de papel, tinta y cola. Sin papel
// domina sobre sin tinta; con consumibles decide la cola.
func TestCurrentStatus_TablaCompleta(t *testing.T) {
	cases := []struct {
		name     string
		ink      int
		paper    int
		queueLen int
		want     entity.Status
	}{
		{"sin papel y sin cola", 1, 0, 0, entity.StatusNoPaper},
		{"sin papel con cola", 1, 0, 3, entity.StatusNoPaper},
		{"sin papel y sin tinta gana papel", 0, 0, 1, entity.StatusNoPaper},
		{"sin tinta y sin cola", 0, 1, 0, entity.StatusNoInk},
		{"sin tinta con cola", 0, 1, 2, entity.StatusNoInk},
		{"consumibles y cola vacía", 1, 1, 0, entity.StatusPaused},
		{"consumibles y cola con trabajos", 1, 1, 1, entity.StatusPrinting},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Printer{Ink: tc.ink, Paper: tc.paper}
			assert.Equal(t, tc.want, p.CurrentStatus(tc.queueLen))
		})
	}
}

// Una impresora recién creada (valores por defecto, cola vacía) está PAUSED.
func TestCurrentStatus_ImpresoraNueva(t *testing.T) {
	p := &entity.Printer{Ink: entity.DefaultInk, Paper: entity.DefaultPaper}
	assert.Equal(t, entity.StatusPaused, p.CurrentStatus(0))
}

func TestValidStatus(t *testing.T) {
	assert.True(t, entity.ValidStatus(entity.StatusPrinting))
	assert.True(t, entity.ValidStatus(entity.StatusPaused))
	assert.True(t, entity.ValidStatus(entity.StatusNoInk))
	assert.True(t, entity.ValidStatus(entity.StatusNoPaper))
	assert.False(t, entity.ValidStatus(entity.Status("IDLE")))
	assert.False(t, entity.ValidStatus(entity.Status("")))
}
