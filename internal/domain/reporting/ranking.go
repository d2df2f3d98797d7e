// Package reporting ordena los agregados de pedidos completados para los reportes.
package reporting

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Total suma de pedidos COMPLETED agrupada por una clave (cliente o vendedor).
type Total struct {
	Key   string
	Total decimal.Decimal
}

// TopN ordena por total descendente y luego recorta a n (top N real, no los
// primeros N grupos). Empates se resuelven por Key ascendente para que el
// resultado sea determinista. No modifica el slice de entrada.
func TopN(totals []Total, n int) []Total {
	out := make([]Total, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool {
		if c := out[i].Total.Cmp(out[j].Total); c != 0 {
			return c > 0
		}
		return out[i].Key < out[j].Key
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
