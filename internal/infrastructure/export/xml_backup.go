// Package export contiene los escritores de salida: backup XML y la lista de
// reposición en PDF.
package export

import (
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/jhoicas/control-stock/internal/domain/repository"
)

// BuildBackupXML serializa el snapshot a XML:
//
//	<backup exported_at="..." version="...">
//	  <products><product id="..." sku="...">...</product></products>
//	  <movements><movement id="..." type="IN">...</movement></movements>
//	</backup>
func BuildBackupXML(s repository.Snapshot, exportedAt time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("backup")
	root.CreateAttr("exported_at", exportedAt.Format(time.RFC3339))
	root.CreateAttr("version", strconv.FormatUint(s.Version, 10))

	products := root.CreateElement("products")
	for _, p := range s.Products {
		el := products.CreateElement("product")
		el.CreateAttr("id", p.ID)
		el.CreateAttr("sku", p.SKU)
		el.CreateAttr("active", strconv.FormatBool(p.Active))
		el.CreateElement("name").SetText(p.Name)
		el.CreateElement("category").SetText(p.NormalizedCategory())
		el.CreateElement("cost").SetText(p.Cost.String())
		el.CreateElement("price").SetText(p.Price.String())
		el.CreateElement("min_stock").SetText(strconv.Itoa(p.MinStock))
		if p.TargetStock != nil {
			el.CreateElement("target_stock").SetText(strconv.Itoa(*p.TargetStock))
		}
	}

	movements := root.CreateElement("movements")
	for _, m := range s.Movements {
		el := movements.CreateElement("movement")
		el.CreateAttr("id", m.ID)
		el.CreateAttr("type", m.Type)
		el.CreateElement("product_id").SetText(m.ProductID)
		el.CreateElement("qty").SetText(strconv.Itoa(m.Qty))
		if m.Note != "" {
			el.CreateElement("note").SetText(m.Note)
		}
		el.CreateElement("user").SetText(m.User)
		if !m.CreatedAt.IsZero() {
			el.CreateElement("at").SetText(m.CreatedAt.Format(time.RFC3339))
		}
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
