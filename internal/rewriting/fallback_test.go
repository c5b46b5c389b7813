package rewriting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest_ReplacesTaskOpenerWithStrongVerb(t *testing.T) {
	got := Suggest("Responsible for managing the sales team")

	assert.True(t, strings.HasPrefix(got, "Led "), got)
	assert.Contains(t, got, "the sales team")
	assert.Contains(t, got, "[add a number")
}

func TestSuggest_KeepsExistingMetric(t *testing.T) {
	got := Suggest("Duties included processing 200 invoices")

	assert.True(t, strings.HasPrefix(got, "Delivered "), got)
	assert.NotContains(t, got, "[add a number")
}

func TestSuggest_PrependsVerbWhenNoneFound(t *testing.T) {
	got := Suggest("Weekly reports for the finance department")

	assert.True(t, strings.HasPrefix(got, "Delivered "), got)
}

func TestSuggest_LeavesStrongBulletAlmostAlone(t *testing.T) {
	got := Suggest("Led migration of 40 services")

	assert.Equal(t, "Led migration of 40 services", got)
}
