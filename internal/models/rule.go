package models

// CategoryRule maps a key phrase to a business label and a retailer label.
// An empty label means the rule does not set that field.
type CategoryRule struct {
	KeyPhrase     string `json:"key_phrase" yaml:"key_phrase"`
	BusinessLabel string `json:"business_label" yaml:"business_label"`
	RetailerLabel string `json:"retailer_label" yaml:"retailer_label"`
}
