package domain

// StoreSettings is the single-row store profile printed on receipts.
type StoreSettings struct {
	StoreName   string `json:"storeName"`
	Currency    string `json:"currency"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	GSTNo       string `json:"gstNo,omitempty"`
	FooterText  string `json:"footerText,omitempty"`
	TaxIncluded bool   `json:"taxIncluded"`
}
