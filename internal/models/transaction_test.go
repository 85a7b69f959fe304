package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_LabelState(t *testing.T) {
	tests := []struct {
		name        string
		tx          Transaction
		categorized bool
		fully       bool
	}{
		{name: "no labels", tx: Transaction{}, categorized: false, fully: false},
		{name: "business only", tx: Transaction{BusinessType: "Personal"}, categorized: true, fully: false},
		{name: "retailer only", tx: Transaction{Retailer: "Amazon"}, categorized: true, fully: false},
		{name: "both", tx: Transaction{BusinessType: "Personal", Retailer: "Amazon"}, categorized: true, fully: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.categorized, tt.tx.IsCategorized())
			assert.Equal(t, tt.fully, tt.tx.IsFullyLabeled())
		})
	}
}

func TestCloneTransactions(t *testing.T) {
	assert.Nil(t, CloneTransactions(nil))

	original := []Transaction{{Description: "AMAZON"}}
	clone := CloneTransactions(original)
	clone[0].Retailer = "Amazon"

	assert.Equal(t, "", original[0].Retailer)
	assert.Equal(t, "Amazon", clone[0].Retailer)
}

func TestRequiredColumns(t *testing.T) {
	assert.Equal(t, []string{"Status", "Date", "Description", "Debit", "Credit", "Member Name"}, RequiredColumns)
}
