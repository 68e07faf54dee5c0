package billing

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateInvoiceNumber genera un número de factura con formato FAC-YYYYMM-NNNN,
// donde NNNN es un sufijo aleatorio uniforme en [0, 9999] con ceros a la
// izquierda.
//
// El sufijo no garantiza unicidad: la tabla de facturas lleva un índice único
// sobre invoice_number y el caso de uso de creación reintenta con un número
// nuevo ante una colisión.
func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("FAC-%04d%02d-%04d", now.Year(), int(now.Month()), rand.Intn(10000))
}
