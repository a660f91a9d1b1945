package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type row struct {
	title  string
	owner  string
	status string
}

func rowFields(r row) []string { return []string{r.title, r.owner} }
func rowStatus(r row) string   { return r.status }

var rows = []row{
	{"Supplier AUDIT", "Sophie", "Late"},
	{"Quality procedures", "Marie", "Done"},
	{"Audit follow-up", "Jean", "Done"},
	{"Training", "Paul Audit", "Done"},
	{"Reporting", "Pierre", "To do"},
}

func TestMatchesIsCaseInsensitive(t *testing.T) {
	assert.True(t, Matches("audit", "Supplier AUDIT"))
	assert.True(t, Matches("AUDIT", "x", "internal audit"))
	assert.True(t, Matches("", "anything"))
	assert.True(t, Matches("  ", "anything"))
	assert.False(t, Matches("audit", "quality", "review"))
	assert.False(t, Matches("audit"))
}

func TestApplySearchOnly(t *testing.T) {
	got := Apply(rows, "audit", rowFields)
	assert.Equal(t, []row{rows[0], rows[2], rows[3]}, got)
}

func TestApplySearchAndCategoryIsLogicalAnd(t *testing.T) {
	got := Apply(rows, "audit", rowFields, Equal("Done", rowStatus))
	assert.Equal(t, []row{rows[2], rows[3]}, got)

	for _, r := range got {
		assert.Equal(t, "Done", r.status)
		assert.True(t, Matches("audit", r.title, r.owner))
	}
}

func TestApplyEmptyFiltersReturnEverythingInOrder(t *testing.T) {
	got := Apply(rows, "", rowFields, Equal("", rowStatus))
	assert.Equal(t, rows, got)
}

func TestApplyNoMatchIsEmptyNotNil(t *testing.T) {
	got := Apply(rows, "nothing like this", rowFields)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	in := append([]row(nil), rows...)
	_ = Apply(in, "done", rowFields, Equal("Done", rowStatus))
	assert.Equal(t, rows, in)
}
