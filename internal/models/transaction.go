// Package models provides the data structures used throughout the application.
package models

// Column names of the transaction CSV representation.
const (
	ColumnStatus       = "Status"
	ColumnDate         = "Date"
	ColumnDescription  = "Description"
	ColumnDebit        = "Debit"
	ColumnCredit       = "Credit"
	ColumnMemberName   = "Member Name"
	ColumnBusinessType = "Business Type"
	ColumnRetailer     = "Retailer"
)

// RequiredColumns lists the columns a transaction file must provide.
// Business Type and Retailer are added with empty values when absent.
var RequiredColumns = []string{
	ColumnStatus,
	ColumnDate,
	ColumnDescription,
	ColumnDebit,
	ColumnCredit,
	ColumnMemberName,
}

// Transaction is a single bank record. Its identity is its position in the
// collection it was loaded into.
type Transaction struct {
	Status       string `csv:"Status"`
	Date         string `csv:"Date"`
	Description  string `csv:"Description"`
	Debit        Amount `csv:"Debit"`
	Credit       Amount `csv:"Credit"`
	MemberName   string `csv:"Member Name"`
	BusinessType string `csv:"Business Type"`
	Retailer     string `csv:"Retailer"`
}

// IsCategorized reports whether at least one label has been assigned.
func (t *Transaction) IsCategorized() bool {
	return t.BusinessType != "" || t.Retailer != ""
}

// IsFullyLabeled reports whether both labels are set, in which case automatic
// categorization leaves the record alone.
func (t *Transaction) IsFullyLabeled() bool {
	return t.BusinessType != "" && t.Retailer != ""
}

// CloneTransactions returns a shallow copy of the collection. Transaction holds
// only value fields so the copy is independent of the original.
func CloneTransactions(transactions []Transaction) []Transaction {
	if transactions == nil {
		return nil
	}
	out := make([]Transaction, len(transactions))
	copy(out, transactions)
	return out
}
