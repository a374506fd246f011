package records

import "testing"

func TestDecodeInventoryRow(t *testing.T) {
	row := make([]string, InventoryColumnCount)
	row[invColID] = " abc-123 "
	row[invColProductName] = "Charizard Box"
	row[invColDatePurchased] = "01/15/2025"
	row[invColQtyPurchased] = "4"
	row[invColQtyAvailable] = "3"
	row[invColDaysOwned] = "12"
	row[invColStore] = "Target"
	row[invColLinks] = "https://example.com/listing"
	row[invColCostPerUnit] = "$49.99"
	row[invColTaxTotal] = "$8.00"
	row[invColTotalCost] = "$207.96"
	row[invColRetailPrice] = "59.99"
	row[invColListed] = "TRUE"
	row[invColSold] = "garbage"

	rec := DecodeInventoryRow(row, 11)

	if rec.ID != "abc-123" {
		t.Errorf("ID = %q", rec.ID)
	}
	if rec.ProductName != "Charizard Box" || rec.Store != "Target" {
		t.Errorf("identity fields wrong: %+v", rec)
	}
	if rec.QtyPurchased != 4 || rec.QtyAvailable != 3 {
		t.Errorf("quantities = %d/%d", rec.QtyPurchased, rec.QtyAvailable)
	}
	if rec.CostPerUnit != 49.99 || rec.TaxTotal != 8.0 {
		t.Errorf("money fields = %v/%v", rec.CostPerUnit, rec.TaxTotal)
	}
	if rec.TaxPerUnit != 2.0 {
		t.Errorf("TaxPerUnit = %v, want 2.0", rec.TaxPerUnit)
	}
	if !rec.IsListed || rec.IsSold {
		t.Errorf("flags = listed %v sold %v", rec.IsListed, rec.IsSold)
	}
	if rec.RowPosition != 11 {
		t.Errorf("RowPosition = %d, want 11", rec.RowPosition)
	}
}

func TestDecodeSaleRow(t *testing.T) {
	row := make([]string, SalesColumnCount)
	row[saleColProductName] = "Charizard Box"
	row[saleColSoldDate] = "02/01/2025"
	row[saleColQtySold] = "2"
	row[saleColPricePerUnit] = "$75.00"
	row[saleColTotalRevenue] = "$150.00"
	row[saleColShippingCost] = "$9.50"
	row[saleColNetProfit] = "$30.51"
	row[saleColROI] = "27.8%"

	rec := DecodeSaleRow(row, 9)

	if rec.ProductName != "Charizard Box" || rec.SoldDate != "02/01/2025" {
		t.Errorf("identity fields wrong: %+v", rec)
	}
	if rec.QuantitySold != 2 || rec.PricePerUnit != 75.0 || rec.TotalRevenue != 150.0 {
		t.Errorf("sale numbers wrong: %+v", rec)
	}
	if rec.ROI != 27.8 {
		t.Errorf("ROI = %v, want 27.8", rec.ROI)
	}
	if rec.RowPosition != 9 {
		t.Errorf("RowPosition = %d, want 9", rec.RowPosition)
	}
}
