package recruit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSalary_PlainNumber(t *testing.T) {
	n, ok := ParseSalary("15000")
	assert.True(t, ok)
	assert.Equal(t, 15000.0, n)
}

func TestParseSalary_ThousandMarker(t *testing.T) {
	n, ok := ParseSalary("15K")
	assert.True(t, ok)
	assert.Equal(t, 15000.0, n)

	n, ok = ParseSalary("12.5k")
	assert.True(t, ok)
	assert.Equal(t, 12500.0, n)
}

func TestParseSalary_TenThousandMarker(t *testing.T) {
	n, ok := ParseSalary("1.5万")
	assert.True(t, ok)
	assert.Equal(t, 15000.0, n)
}

func TestParseSalary_FirstNumberOfRange(t *testing.T) {
	n, ok := ParseSalary("15000-25000")
	assert.True(t, ok)
	assert.Equal(t, 15000.0, n)
}

func TestParseSalary_PlaceholdersExcluded(t *testing.T) {
	for _, s := range []string{"面议", "未提供", NotProvided, "", "   "} {
		_, ok := ParseSalary(s)
		assert.False(t, ok, "expected %q to be excluded", s)
	}
}

func TestParseSalary_NoDigits(t *testing.T) {
	_, ok := ParseSalary("competitive")
	assert.False(t, ok)
}
