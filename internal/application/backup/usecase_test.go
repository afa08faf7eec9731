package backup_test

import (
	"encoding/json"
	"testing"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/control-stock/internal/application/backup"
	"github.com/jhoicas/control-stock/internal/domain"
	"github.com/jhoicas/control-stock/internal/domain/entity"
	"github.com/jhoicas/control-stock/internal/domain/permission"
	"github.com/jhoicas/control-stock/internal/infrastructure/memory"
)

func storeConDatos() *memory.Store {
	return memory.NewWithData(
		[]entity.Product{{
			ID:       "P1",
			SKU:      "SKU-1",
			Name:     "Yerba",
			Active:   true,
			Cost:     decimal.NewFromInt(40),
			Price:    decimal.NewFromInt(100),
			MinStock: 5,
		}},
		[]entity.Movement{{ID: "m1", ProductID: "P1", Type: entity.MovementTypeIn, Qty: 10, User: "Admin"}},
	)
}

func TestExport_JSON(t *testing.T) {
	uc := backup.New(storeConDatos())

	raw, contentType, err := uc.Export(permission.RoleAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType, "sin formato explícito exporta JSON")

	var body struct {
		Products []struct {
			SKU   string `json:"sku"`
			Price string `json:"price"`
		} `json:"products"`
		Movements []struct {
			Type string `json:"type"`
			Qty  int    `json:"qty"`
		} `json:"movements"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.Len(t, body.Products, 1)
	assert.Equal(t, "SKU-1", body.Products[0].SKU)
	assert.Equal(t, "100", body.Products[0].Price, "los montos se exportan como texto decimal")
	require.Len(t, body.Movements, 1)
	assert.Equal(t, entity.MovementTypeIn, body.Movements[0].Type)
	assert.Equal(t, 10, body.Movements[0].Qty)
}

func TestExport_XML(t *testing.T) {
	uc := backup.New(storeConDatos())

	raw, contentType, err := uc.Export(permission.RoleAdmin, backup.FormatXML)
	require.NoError(t, err)
	assert.Equal(t, "application/xml", contentType)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))
	root := doc.SelectElement("backup")
	require.NotNil(t, root)
	assert.Len(t, root.SelectElement("products").SelectElements("product"), 1)
	assert.Len(t, root.SelectElement("movements").SelectElements("movement"), 1)
}

// Exportar es admin-only: el gate vive en el caso de uso además de la ruta.
func TestExport_SoloAdmin(t *testing.T) {
	uc := backup.New(storeConDatos())

	for _, role := range []string{permission.RoleBodeguero, permission.RoleVendedor} {
		_, _, err := uc.Export(role, "")
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s", role)
	}
}

func TestExport_FormatoDesconocido(t *testing.T) {
	uc := backup.New(storeConDatos())

	_, _, err := uc.Export(permission.RoleAdmin, "csv")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
