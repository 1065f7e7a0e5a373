package freight

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Reference numbers are operator-facing and must stay within the 20-char
// schema columns: PREFIX-YYMMDD-XXXXXX with a uuid-derived suffix.
func newReferenceNumber(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("060102"), suffix)
}

func NewQuoteNumber() string {
	return newReferenceNumber("QT")
}

func NewDispatchNumber() string {
	return newReferenceNumber("DSP")
}
