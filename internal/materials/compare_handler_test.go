package materials_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"buildpro-backend/internal/database"
	"buildpro-backend/internal/materials"
	"buildpro-backend/internal/models"
)

func TestComparePrices(t *testing.T) {
	app := newTestApp(t)

	cheap := models.Vendor{Name: "BuildMart", Rating: 4.5}
	pricey := models.Vendor{Name: "ConstructCo", Rating: 3.8}
	for _, v := range []*models.Vendor{&cheap, &pricey} {
		if err := database.DB.Create(v).Error; err != nil {
			t.Fatalf("seed vendor: %v", err)
		}
	}
	offers := []models.VendorMaterial{
		{VendorID: pricey.ID, MaterialName: "Portland Cement", Price: 14.0, Unit: "bag"},
		{VendorID: cheap.ID, MaterialName: "CEMENT Rapid-Set", Price: 11.5, Unit: "bag"},
		{VendorID: cheap.ID, MaterialName: "Steel Rebar", Price: 7.0, Unit: "piece"},
	}
	for i := range offers {
		if err := database.DB.Create(&offers[i]).Error; err != nil {
			t.Fatalf("seed offer: %v", err)
		}
	}

	resp := doJSON(t, app, http.MethodGet, "/materials/cement/compare-prices", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	env := decode(t, resp)
	if env.Count != 2 {
		t.Fatalf("count = %d, want 2 (case-insensitive substring match)", env.Count)
	}

	var rows []materials.VendorOfferResponse
	if err := json.Unmarshal(env.Data, &rows); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if rows[0].Price != 11.5 || rows[1].Price != 14.0 {
		t.Errorf("not ascending by price: %+v", rows)
	}
	if rows[0].VendorName != "BuildMart" || rows[0].VendorRating != 4.5 {
		t.Errorf("vendor join missing: %+v", rows[0])
	}
	for _, r := range rows {
		if r.MaterialName == "Steel Rebar" {
			t.Errorf("unmatched offer returned: %+v", r)
		}
	}
}

func TestComparePricesNoMatch(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/materials/plywood/compare-prices", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	env := decode(t, resp)
	if !env.Success || env.Count != 0 {
		t.Errorf("envelope = %+v, want empty success", env)
	}
}
