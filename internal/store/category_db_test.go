package store

import (
	"errors"
	"testing"

	"fjacquet/txlabel/internal/models"
	"fjacquet/txlabel/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultCategoryDB(t *testing.T) {
	db := NewDefaultCategoryDB()

	require.NoError(t, db.Validate())
	assert.Equal(t, 6, db.Len())
	assert.Equal(t, []string{"oakhurst", "pleasanton", "san ramon", "dublin", "amazon", "costco"}, db.Descriptions)
	assert.Equal(t, []string{"Oakhurst", "Personal", "Personal", "Personal", "", ""}, db.BusinessLabels)
	assert.Equal(t, []string{"", "", "", "", "Amazon", "Costco"}, db.RetailerLabels)
}

func TestCategoryDB_AddCategory(t *testing.T) {
	db := NewDefaultCategoryDB()

	db.AddCategory("walmart", "", "Walmart")
	db.AddCategory("walmart", "Groceries", "")

	require.NoError(t, db.Validate())
	assert.Equal(t, 8, db.Len())

	rule, ok := db.Rule(6)
	require.True(t, ok)
	assert.Equal(t, models.CategoryRule{KeyPhrase: "walmart", RetailerLabel: "Walmart"}, rule)

	rule, ok = db.Rule(7)
	require.True(t, ok)
	assert.Equal(t, "Groceries", rule.BusinessLabel)
}

func TestCategoryDB_AddCategoryStoresVerbatim(t *testing.T) {
	db := NewCategoryDB(nil)
	db.AddCategory("Whole Foods", "Groceries", "Whole Foods Market")

	assert.Equal(t, []string{"Whole Foods"}, db.Descriptions)
	assert.Equal(t, []string{"Groceries"}, db.BusinessLabels)
	assert.Equal(t, []string{"Whole Foods Market"}, db.RetailerLabels)
}

func TestCategoryDB_Validate(t *testing.T) {
	db := &CategoryDB{
		Descriptions:   []string{"a", "b"},
		BusinessLabels: []string{"A"},
		RetailerLabels: []string{"", ""},
	}

	err := db.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsererror.ErrIntegrity))

	var integrityErr *parsererror.IntegrityError
	require.True(t, errors.As(err, &integrityErr))
	assert.Equal(t, 2, integrityErr.Descriptions)
	assert.Equal(t, 1, integrityErr.BusinessLabels)
	assert.Equal(t, 2, integrityErr.RetailerLabels)
}

func TestCategoryDB_RuleOutOfRange(t *testing.T) {
	db := &CategoryDB{
		Descriptions:   []string{"a", "b"},
		BusinessLabels: []string{"A"},
		RetailerLabels: []string{"", ""},
	}

	_, ok := db.Rule(1)
	assert.False(t, ok)
	_, ok = db.Rule(-1)
	assert.False(t, ok)
	assert.Len(t, db.Rules(), 1)
}

func TestCategoryDB_Clone(t *testing.T) {
	db := NewDefaultCategoryDB()
	clone := db.Clone()

	clone.AddCategory("walmart", "", "Walmart")
	clone.BusinessLabels[0] = "Changed"

	assert.Equal(t, 6, db.Len())
	assert.Equal(t, "Oakhurst", db.BusinessLabels[0])
}

func TestCategoryDB_LabelSets(t *testing.T) {
	db := NewDefaultCategoryDB()
	db.AddCategory("target", "", "Amazon")

	assert.Equal(t, []string{"Oakhurst", "Personal"}, db.BusinessLabelSet())
	assert.Equal(t, []string{"Amazon", "Costco"}, db.RetailerLabelSet())
}
