package freight

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceNumbers(t *testing.T) {
	qn := NewQuoteNumber()
	dn := NewDispatchNumber()

	assert.True(t, strings.HasPrefix(qn, "QT-"))
	assert.True(t, strings.HasPrefix(dn, "DSP-"))

	// Must fit the varchar(20) schema columns.
	assert.LessOrEqual(t, len(qn), 20)
	assert.LessOrEqual(t, len(dn), 20)

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n := NewQuoteNumber()
		assert.False(t, seen[n], "duplicate quote number %s", n)
		seen[n] = true
	}
}
