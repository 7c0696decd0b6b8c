package domain

// GroupField selects the SaleRecord field used to bucket records.
type GroupField string

const (
	GroupByStore       GroupField = "store"
	GroupByCategory    GroupField = "category"
	GroupBySubCategory GroupField = "subcategory"
	GroupByProduct     GroupField = "product"
	GroupByColor       GroupField = "color"
	GroupBySize        GroupField = "size"
	GroupByModel       GroupField = "model"
	GroupByCollection  GroupField = "collection"
)

// Valid reports whether g names a known grouping field.
func (g GroupField) Valid() bool {
	switch g {
	case GroupByStore, GroupByCategory, GroupBySubCategory, GroupByProduct,
		GroupByColor, GroupBySize, GroupByModel, GroupByCollection:
		return true
	}
	return false
}

// Of extracts the grouping value from a sale record.
func (g GroupField) Of(r SaleRecord) string {
	switch g {
	case GroupByStore:
		return r.StoreName
	case GroupByCategory:
		return r.Category
	case GroupBySubCategory:
		return r.SubCategory
	case GroupByProduct:
		return r.ProductName
	case GroupByColor:
		return r.Color
	case GroupBySize:
		return r.Size
	case GroupByModel:
		return r.Model
	case GroupByCollection:
		return r.Collection
	}
	return ""
}

// MetricField selects the summed metric of an aggregation.
type MetricField string

const (
	MetricTotalValue MetricField = "total_value"
	MetricQuantity   MetricField = "quantity"
)

// Valid reports whether m names a known metric.
func (m MetricField) Valid() bool {
	return m == MetricTotalValue || m == MetricQuantity
}

// Of extracts the metric value from a sale record. An unknown metric falls
// back to total value, the aggregation default.
func (m MetricField) Of(r SaleRecord) float64 {
	if m == MetricQuantity {
		return r.Quantity
	}
	return r.TotalValue
}

// AggregatedBucket is the result of grouping sale records by one field.
type AggregatedBucket struct {
	GroupName  string  `json:"group_name"`
	Value      float64 `json:"value"`
	ItemCount  float64 `json:"item_count"`
	StockTotal float64 `json:"stock_total"`
}

// DetailRow merges the sale and cut history of one (code, color, size)
// variant. SellThroughPercent is cut-based: sold over cut, as a percentage,
// and zero when nothing was cut. Values above 100 are valid.
type DetailRow struct {
	CompositeKey       string  `json:"composite_key"`
	ItemCode           string  `json:"item_code"`
	ProductName        string  `json:"product_name"`
	Color              string  `json:"color"`
	Size               string  `json:"size"`
	CutQuantity        float64 `json:"cut_quantity"`
	SoldQuantity       float64 `json:"sold_quantity"`
	Revenue            float64 `json:"revenue"`
	SellThroughPercent float64 `json:"sell_through_percent"`
}

// Metrics is the process-wide summary of a filtered record set.
//
// SellThroughRate here is stock-based (sold / (sold + stock)); it is a
// different business ratio from DetailRow.SellThroughPercent and the two are
// intentionally kept separate.
type Metrics struct {
	TotalRevenue      float64 `json:"total_revenue"`
	TotalItemsSold    float64 `json:"total_items_sold"`
	AverageTicket     float64 `json:"average_ticket"`
	TopStoreByRevenue string  `json:"top_store_by_revenue"`
	TotalStock        float64 `json:"total_stock"`
	TotalCut          float64 `json:"total_cut"`
	SellThroughRate   float64 `json:"sell_through_rate"`
}

// Dataset kinds accepted by the upload endpoints.
const (
	DatasetSales = "sales"
	DatasetCuts  = "cuts"
)

// DatasetInfo describes one ingested workbook, for the upload UI.
type DatasetInfo struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"` // DatasetSales or DatasetCuts
	FileName    string `json:"file_name"`
	RecordCount int    `json:"record_count"`
	LoadedAt    string `json:"loaded_at"`
}
