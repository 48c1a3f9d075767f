package controller_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	avModel "inventaris_backend/internals/features/aplikasi_vendor/model"
	avRoute "inventaris_backend/internals/features/aplikasi_vendor/route"
	vendorModel "inventaris_backend/internals/features/vendors/model"
	"inventaris_backend/internals/testutil"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, func(api fiber.Router) {
		avRoute.AplikasiVendorRoutes(api, db)
	})
	return app, db
}

func seed(t *testing.T, db *gorm.DB) (aplikasiModel.AplikasiModel, vendorModel.VendorModel) {
	t.Helper()
	a := aplikasiModel.AplikasiModel{Nama: "SIMPEG"}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed aplikasi: %v", err)
	}
	v := vendorModel.VendorModel{NamaVendor: "PT Solusi"}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	return a, v
}

func TestCreateAplikasiVendor(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)
	a, v := seed(t, db)

	status, body := testutil.DoJSON(t, app, "POST", "/api/aplikasi-vendor", token, fiber.Map{
		"idAplikasi": a.ID,
		"idVendor":   v.ID,
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["message"] != "Hubungan aplikasi-vendor berhasil dibuat" {
		t.Errorf("message = %v", body["message"])
	}
	data := testutil.Data(t, body)
	rel, ok := data["vendor"].(map[string]interface{})
	if !ok || rel["namaVendor"] != "PT Solusi" {
		t.Errorf("ringkasan vendor tidak ikut: %v", data)
	}
}

func TestCreateAplikasiVendorDuplicate(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)
	a, v := seed(t, db)
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a.ID, IDVendor: v.ID})

	status, body := testutil.DoJSON(t, app, "POST", "/api/aplikasi-vendor", token, fiber.Map{
		"idAplikasi": a.ID,
		"idVendor":   v.ID,
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "Hubungan aplikasi-vendor ini sudah ada" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestCreateAplikasiVendorFKGuard(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)
	a, v := seed(t, db)

	status, body := testutil.DoJSON(t, app, "POST", "/api/aplikasi-vendor", token, fiber.Map{
		"idAplikasi": 999,
		"idVendor":   v.ID,
	})
	if status != fiber.StatusBadRequest || body["error"] != "Aplikasi tidak ditemukan" {
		t.Fatalf("aplikasi: status = %d, error = %v", status, body["error"])
	}

	status, body = testutil.DoJSON(t, app, "POST", "/api/aplikasi-vendor", token, fiber.Map{
		"idAplikasi": a.ID,
		"idVendor":   999,
	})
	if status != fiber.StatusBadRequest || body["error"] != "Vendor tidak ditemukan" {
		t.Fatalf("vendor: status = %d, error = %v", status, body["error"])
	}
}

func TestListAplikasiVendor(t *testing.T) {
	app, db := setup(t)
	a, v := seed(t, db)
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a.ID, IDVendor: v.ID})

	status, body := testutil.DoJSON(t, app, "GET", "/api/aplikasi-vendor", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	rows := testutil.ListData(t, body)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	row := rows[0].(map[string]interface{})
	if row["aplikasi"].(map[string]interface{})["nama"] != "SIMPEG" {
		t.Errorf("relasi aplikasi salah: %v", row)
	}
	if row["vendor"].(map[string]interface{})["namaVendor"] != "PT Solusi" {
		t.Errorf("relasi vendor salah: %v", row)
	}
}

func TestDeleteAplikasiVendor(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)
	a, v := seed(t, db)
	link := avModel.AplikasiVendorModel{IDAplikasi: a.ID, IDVendor: v.ID}
	db.Create(&link)

	status, body := testutil.DoJSON(t, app, "DELETE", fmt.Sprintf("/api/aplikasi-vendor/%d", link.ID), token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	// aplikasi dan vendor tidak tersentuh
	var aCnt, vCnt int64
	db.Model(&aplikasiModel.AplikasiModel{}).Count(&aCnt)
	db.Model(&vendorModel.VendorModel{}).Count(&vCnt)
	if aCnt != 1 || vCnt != 1 {
		t.Errorf("induk ikut terhapus: aplikasi=%d vendor=%d", aCnt, vCnt)
	}
}

func TestDeleteAplikasiVendorNotFound(t *testing.T) {
	app, _ := setup(t)
	token := testutil.SignToken(t)

	status, body := testutil.DoJSON(t, app, "DELETE", "/api/aplikasi-vendor/999", token, nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["error"] != "Hubungan aplikasi-vendor tidak ditemukan" {
		t.Errorf("error = %v", body["error"])
	}
}
