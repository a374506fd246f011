package records

// Field names a writable spreadsheet column for one record kind. Writers
// only accept fields that appear in the kind's column mapping, so a typo'd
// field is caught by the closed constant set here rather than silently
// dropped at runtime.
type Field string

// Inventory sheet fields.
const (
	FieldID            Field = "id"
	FieldProductName   Field = "product_name"
	FieldDatePurchased Field = "date_purchased"
	FieldQuantity      Field = "quantity"
	FieldStore         Field = "store"
	FieldLinks         Field = "links"
	FieldCostPerUnit   Field = "cost_per_unit"
	FieldTax           Field = "tax"
	FieldRetailPrice   Field = "retail_price"
)

// Sales sheet fields.
const (
	FieldSoldDate     Field = "sold_date"
	FieldQuantitySold Field = "quantity_sold"
	FieldPricePerUnit Field = "price_per_unit"
	FieldShippingCost Field = "shipping_cost"
)

// Mapping is a fixed field-to-column-letter mapping for one record kind.
// Only mapped fields are ever written.
type Mapping map[Field]string

// InventoryColumns is the committed inventory sheet layout. Columns not
// listed here (days owned, total cost, retail total, cashback) are computed
// by the sheet itself and never written.
var InventoryColumns = Mapping{
	FieldID:            "A",
	FieldProductName:   "B",
	FieldDatePurchased: "C",
	FieldQuantity:      "D",
	FieldStore:         "H",
	FieldLinks:         "J",
	FieldCostPerUnit:   "L",
	FieldTax:           "M",
	FieldRetailPrice:   "O",
}

// SalesColumns is the committed sales sheet layout. Revenue, net profit and
// ROI are sheet formulas and read-only.
var SalesColumns = Mapping{
	FieldProductName:  "B",
	FieldSoldDate:     "C",
	FieldQuantitySold: "D",
	FieldPricePerUnit: "F",
	FieldShippingCost: "H",
}

// StoreOptions is the fixed set of store names offered at creation time.
var StoreOptions = []string{
	"Amazon",
	"Walmart",
	"Target",
	"Best Buy",
	"Costco",
	"Pokemon Store",
	"Other",
}

// SalesSheetName is the tab holding sale entries; the inventory tab name is
// chosen per user at setup.
const SalesSheetName = "Sales"

// DefaultStartRow is the first data row on both sheets; rows above it are
// headers and summary cells.
const DefaultStartRow = 8
