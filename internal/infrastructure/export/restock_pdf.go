package export

import (
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/control-stock/internal/application/dto"
)

var (
	pdfColorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	pdfColorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// esAR formatea fechas y números al estilo es-AR del listado imprimible.
var esAR = message.NewPrinter(language.MustParse("es-AR"))

// RestockPDFGenerator genera la lista de reposición imprimible
// (reemplazo del "Exportar / Imprimir lista" de la vista original).
type RestockPDFGenerator struct{}

// NewRestockPDFGenerator construye el generador.
func NewRestockPDFGenerator() *RestockPDFGenerator {
	return &RestockPDFGenerator{}
}

// Generate arma el PDF A4 con una fila por producto bajo mínimo:
// producto, stock actual, stock mínimo y cantidad sugerida de compra.
func (g *RestockPDFGenerator) Generate(rows []dto.RestockRowDTO, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de reposición", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt, len(rows)))
	m.AddRows(line.NewRow(1, props.Line{Color: pdfColorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(tableRow(r))
	}
	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No hay productos con stock bajo.", props.Text{
				Size: 9, Align: align.Center, Top: 3, Color: pdfColorGray,
			}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time, total int) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Lista de reposición", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: pdfColorPrimary, Top: 1,
			}),
			text.New(esAR.Sprintf("%d producto(s) con stock bajo", total), props.Text{
				Size: 8, Top: 10, Color: pdfColorGray,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: pdfColorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: pdfColorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 6, align.Left),
		h("Stock actual", 2, align.Right),
		h("Stock mínimo", 2, align.Right),
		h("Cant. sugerida", 2, align.Right),
	)
}

func tableRow(r dto.RestockRowDTO) core.Row {
	name := r.Name
	if r.SKU != "" {
		name = fmt.Sprintf("%s (%s)", r.Name, r.SKU)
	}
	num := func(v int, size int) core.Col {
		return col.New(size).Add(text.New(
			strconv.Itoa(v),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		))
	}
	return row.New(7).Add(
		col.New(6).Add(text.New(name, props.Text{
			Size: 8, Align: align.Left, Top: 1, Left: 1,
		})),
		num(r.Current, 2),
		num(r.MinStock, 2),
		num(r.Suggested, 2),
	)
}
