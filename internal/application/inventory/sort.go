package inventory

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/control-stock/internal/domain/entity"
)

// sortByName ordena productos alfabéticamente con colación española
// (tildes y ñ en su lugar, como el listado de referencia).
// El Collator no es seguro para uso concurrente, se crea por llamada.
func sortByName(products []entity.Product) {
	c := collate.New(language.Spanish)
	sort.SliceStable(products, func(i, j int) bool {
		return c.CompareString(products[i].Name, products[j].Name) < 0
	})
}
