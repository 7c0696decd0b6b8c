package domain

// Default values substituted for blank text cells during ingestion. The
// source workbooks are Brazilian retail exports, so the sentinels follow
// the wording the reporting frontend already displays.
const (
	DefaultStore      = "Outros"
	DefaultCategory   = "Outros"
	DefaultProduct    = "Produto"
	DefaultColor      = "N/A"
	DefaultSize       = "U"
	DefaultModel      = "N/A"
	DefaultCollection = "N/A"

	// NoSaleProduct marks a detail row that originates purely from cut data.
	NoSaleProduct = "Sem Venda"
)

// SaleRecord is one validated sell-through line from the sales workbook.
// A record is only retained when SaleDate is non-empty and it carries either
// revenue or quantity.
type SaleRecord struct {
	StoreName   string  `json:"store_name"`
	ItemCode    string  `json:"item_code"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	ProductName string  `json:"product_name"`
	Color       string  `json:"color"`
	Size        string  `json:"size"`
	Model       string  `json:"model"`
	Collection  string  `json:"collection"`
	Quantity    float64 `json:"quantity"`
	TotalValue  float64 `json:"total_value"`
	StockOnHand float64 `json:"stock_on_hand"`
	SaleDate    string  `json:"sale_date"` // ISO YYYY-MM-DD
}

// SaleMonth returns the ISO month (YYYY-MM) of the sale date.
func (r SaleRecord) SaleMonth() string {
	if len(r.SaleDate) < 7 {
		return ""
	}
	return r.SaleDate[:7]
}

// CutRecord is one validated production-cut line from the cut workbook.
// Retained only when ItemCode is non-empty and Quantity is positive.
type CutRecord struct {
	ItemCode string  `json:"item_code"`
	Color    string  `json:"color"`
	Size     string  `json:"size"`
	Quantity float64 `json:"quantity"`
}
