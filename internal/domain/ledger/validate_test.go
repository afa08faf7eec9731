package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/ledger"
)

var catalogo = []entity.Product{
	{ID: "P1", SKU: "A-1", Name: "Yerba", Active: true},
}

func TestValidate_BorradorValido_SinErrores(t *testing.T) {
	errs := ledger.Validate(ledger.Draft{
		ProductID: "P1",
		Type:      entity.MovementTypeIn,
		Qty:       "10",
	}, catalogo)

	assert.Empty(t, errs, "un borrador correcto no debe producir mensajes")
}

// Todas las reglas se evalúan: un borrador roto en todo junta todos los
// mensajes, sin cortocircuito.
func TestValidate_JuntaTodosLosMensajes(t *testing.T) {
	errs := ledger.Validate(ledger.Draft{
		ProductID: "NO-EXISTE",
		Type:      "TRANSFER",
		Qty:       "abc",
	}, catalogo)

	require.Len(t, errs, 3, "producto inexistente + tipo desconocido + cantidad no numérica")
	assert.Contains(t, errs[0], "no existe")
	assert.Contains(t, errs[1], "no es válido")
	assert.Contains(t, errs[2], "número")
}

func TestValidate_CantidadPorTipo(t *testing.T) {
	cases := []struct {
		name    string
		tipo    string
		qty     string
		wantErr bool
	}{
		{"IN positivo ok", entity.MovementTypeIn, "5", false},
		{"IN cero rechazado", entity.MovementTypeIn, "0", true},
		{"OUT negativo rechazado", entity.MovementTypeOut, "-3", true},
		{"OUT decimal rechazado", entity.MovementTypeOut, "1.5", true},
		{"ADJUST cero ok (vaciar stock)", entity.MovementTypeAdjust, "0", false},
		{"ADJUST negativo rechazado", entity.MovementTypeAdjust, "-1", true},
		{"cantidad vacía rechazada", entity.MovementTypeIn, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := ledger.Validate(ledger.Draft{
				ProductID: "P1",
				Type:      tc.tipo,
				Qty:       tc.qty,
			}, catalogo)
			if tc.wantErr {
				assert.NotEmpty(t, errs, "debía rechazarse")
			} else {
				assert.Empty(t, errs, "debía aceptarse, errores: %v", errs)
			}
		})
	}
}

func TestParseQty(t *testing.T) {
	casos := map[string]struct {
		want int
		ok   bool
	}{
		"12":    {12, true},
		" 7 ":   {7, true},
		"0":     {0, true},
		"-4":    {-4, true},
		"3.0":   {3, true},
		"3.5":   {0, false},
		"":      {0, false},
		"abc":   {0, false},
		"1e309": {0, false}, // overflow a +Inf
	}
	for raw, c := range casos {
		got, ok := (ledger.Draft{Qty: raw}).ParseQty()
		assert.Equal(t, c.ok, ok, "parseo de %q", raw)
		if c.ok {
			assert.Equal(t, c.want, got, "valor de %q", raw)
		}
	}
}

// El mensaje de suficiencia nombra lo pedido y lo disponible.
func TestInsufficientStockMessage(t *testing.T) {
	msg := ledger.InsufficientStockMessage(12, 10)

	assert.Contains(t, msg, "12")
	assert.Contains(t, msg, "10")
}
