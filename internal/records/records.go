package records

import "strings"

// InventoryRecord is one decoded inventory row. RowPosition is the record's
// 1-based row in the backing sheet and is the addressing key for every
// mutation; ID is the stable generated identifier used to re-verify the row
// before destructive writes.
type InventoryRecord struct {
	ID              string
	ProductName     string
	DatePurchased   string
	QtyPurchased    int
	QtyAvailable    int
	DaysOwned       string
	Store           string
	CardUsed        string
	Links           string
	CostPerUnit     float64
	TaxTotal        float64
	TaxPerUnit      float64
	TotalCost       float64
	RetailPrice     float64
	RetailTotalCost float64
	CashbackTotal   float64
	IsListed        bool
	IsSold          bool
	RowPosition     int
}

// SaleRecord is one decoded sales row. Revenue, net profit and ROI are
// computed by the sheet and only ever read.
type SaleRecord struct {
	ProductName  string
	SoldDate     string
	QuantitySold int
	PricePerUnit float64
	TotalRevenue float64
	ShippingCost float64
	NetProfit    float64
	ROI          float64
	RowPosition  int
}

// Column offsets within the inventory read range A:T.
const (
	invColID = iota
	invColProductName
	invColDatePurchased
	invColQtyPurchased
	invColQtyAvailable
	invColDaysOwned
	_ // G computed
	invColStore
	invColCardUsed
	invColLinks
	_ // K computed
	invColCostPerUnit
	invColTaxTotal
	invColTotalCost
	invColRetailPrice
	invColRetailTotal
	invColCashback
	_ // R computed
	invColListed
	invColSold
	InventoryColumnCount
)

// Column offsets within the sales read range B:J.
const (
	saleColProductName = iota
	saleColSoldDate
	saleColQtySold
	_ // E computed
	saleColPricePerUnit
	saleColTotalRevenue
	saleColShippingCost
	saleColNetProfit
	saleColROI
	SalesColumnCount
)

// DecodeInventoryRow decodes one padded raw row (range A:T) into a record.
// The caller supplies the true backing-sheet row position.
func DecodeInventoryRow(row []string, rowPosition int) InventoryRecord {
	qtyPurchased := ParseInteger(row[invColQtyPurchased])
	taxTotal := ParseCurrency(row[invColTaxTotal])

	return InventoryRecord{
		ID:              trimmed(row[invColID]),
		ProductName:     trimmed(row[invColProductName]),
		DatePurchased:   trimmed(row[invColDatePurchased]),
		QtyPurchased:    qtyPurchased,
		QtyAvailable:    ParseInteger(row[invColQtyAvailable]),
		DaysOwned:       trimmed(row[invColDaysOwned]),
		Store:           trimmed(row[invColStore]),
		CardUsed:        trimmed(row[invColCardUsed]),
		Links:           trimmed(row[invColLinks]),
		CostPerUnit:     ParseCurrency(row[invColCostPerUnit]),
		TaxTotal:        taxTotal,
		TaxPerUnit:      TaxPerUnit(taxTotal, qtyPurchased),
		TotalCost:       ParseCurrency(row[invColTotalCost]),
		RetailPrice:     ParseCurrency(row[invColRetailPrice]),
		RetailTotalCost: ParseCurrency(row[invColRetailTotal]),
		CashbackTotal:   ParseCurrency(row[invColCashback]),
		IsListed:        ParseBoolean(row[invColListed]),
		IsSold:          ParseBoolean(row[invColSold]),
		RowPosition:     rowPosition,
	}
}

// DecodeSaleRow decodes one padded raw row (range B:J) into a record.
func DecodeSaleRow(row []string, rowPosition int) SaleRecord {
	return SaleRecord{
		ProductName:  trimmed(row[saleColProductName]),
		SoldDate:     trimmed(row[saleColSoldDate]),
		QuantitySold: ParseInteger(row[saleColQtySold]),
		PricePerUnit: ParseCurrency(row[saleColPricePerUnit]),
		TotalRevenue: ParseCurrency(row[saleColTotalRevenue]),
		ShippingCost: ParseCurrency(row[saleColShippingCost]),
		NetProfit:    ParseCurrency(row[saleColNetProfit]),
		ROI:          ParseCurrency(row[saleColROI]),
		RowPosition:  rowPosition,
	}
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
