package service

import (
	"crypto/rand"
	"fmt"
	"time"
)

const invoiceSuffixAlphabet = "0123456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateInvoiceNumber returns INV-YYYYMM-xxxxxx. The random suffix plus
// the unique index on invoice_number make collisions a retry, not a bug.
func GenerateInvoiceNumber(now time.Time) string {
	buf := make([]byte, 6)
	_, _ = rand.Read(buf)
	for i := range buf {
		buf[i] = invoiceSuffixAlphabet[int(buf[i])%len(invoiceSuffixAlphabet)]
	}
	return fmt.Sprintf("INV-%s-%s", now.Format("200601"), string(buf))
}
