package controller_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	avModel "inventaris_backend/internals/features/aplikasi_vendor/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
	vendorRoute "inventaris_backend/internals/features/vendors/route"
	"inventaris_backend/internals/testutil"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, func(api fiber.Router) {
		vendorRoute.VendorRoutes(api, db)
	})
	return app, db
}

func TestListVendorAplikasiList(t *testing.T) {
	app, db := setup(t)

	v1 := vendorModel.VendorModel{NamaVendor: "PT Alpha"}
	v2 := vendorModel.VendorModel{NamaVendor: "CV Beta"}
	db.Create(&v1)
	db.Create(&v2)

	a1 := aplikasiModel.AplikasiModel{Nama: "SIMPEG"}
	a2 := aplikasiModel.AplikasiModel{Nama: "Portal Data"}
	db.Create(&a1)
	db.Create(&a2)

	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a1.ID, IDVendor: v1.ID})
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a2.ID, IDVendor: v1.ID})

	status, body := testutil.DoJSON(t, app, "GET", "/api/vendor?sortOrder=asc", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	rows := testutil.ListData(t, body)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// default sort namaVendor asc: CV Beta dulu
	first := rows[0].(map[string]interface{})
	if first["namaVendor"] != "CV Beta" {
		t.Fatalf("urutan salah: %v", first)
	}
	if first["aplikasiCount"] != float64(0) {
		t.Errorf("CV Beta harus tanpa aplikasi: %v", first)
	}

	second := rows[1].(map[string]interface{})
	if second["aplikasiCount"] != float64(2) {
		t.Errorf("aplikasiCount = %v, want 2", second["aplikasiCount"])
	}
	list, ok := second["aplikasiList"].([]interface{})
	if !ok || len(list) != 2 {
		t.Fatalf("aplikasiList = %v", second["aplikasiList"])
	}
	if list[0] != "Portal Data" || list[1] != "SIMPEG" {
		t.Errorf("aplikasiList urut nama: %v", list)
	}
}

func TestDetailVendor(t *testing.T) {
	app, db := setup(t)

	v := vendorModel.VendorModel{NamaVendor: "PT Gamma"}
	db.Create(&v)
	stAktif := aplikasiModel.StatusAktif
	a := aplikasiModel.AplikasiModel{Nama: "SIKDA", Status: &stAktif}
	db.Create(&a)
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a.ID, IDVendor: v.ID})

	status, body := testutil.DoJSON(t, app, "GET", fmt.Sprintf("/api/vendor/%d", v.ID), "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	data := testutil.Data(t, body)
	if data["aplikasiCount"] != float64(1) {
		t.Errorf("aplikasiCount = %v", data["aplikasiCount"])
	}
	apps, ok := data["aplikasi"].([]interface{})
	if !ok || len(apps) != 1 {
		t.Fatalf("aplikasi = %v", data["aplikasi"])
	}
	if apps[0].(map[string]interface{})["status"] != "aktif" {
		t.Errorf("status relasi salah: %v", apps[0])
	}
}

func TestCreateVendor(t *testing.T) {
	app, _ := setup(t)
	token := testutil.SignToken(t)

	status, body := testutil.DoJSON(t, app, "POST", "/api/vendor", token, fiber.Map{
		"namaVendor": "PT Delta",
		"kontak":     "0811-2233-4455",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["message"] != "Vendor berhasil dibuat" {
		t.Errorf("message = %v", body["message"])
	}
}

func TestDeleteVendorGuard(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	v := vendorModel.VendorModel{NamaVendor: "PT Terikat"}
	db.Create(&v)
	a := aplikasiModel.AplikasiModel{Nama: "SIMRS"}
	db.Create(&a)
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a.ID, IDVendor: v.ID})

	status, body := testutil.DoJSON(t, app, "DELETE", fmt.Sprintf("/api/vendor/%d", v.ID), token, nil)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "Tidak dapat menghapus vendor yang memiliki aplikasi terkait" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestDeleteVendor(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	v := vendorModel.VendorModel{NamaVendor: "PT Bebas"}
	db.Create(&v)

	status, _ := testutil.DoJSON(t, app, "DELETE", fmt.Sprintf("/api/vendor/%d", v.ID), token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
}

func TestSearchVendorAplikasiNama(t *testing.T) {
	app, db := setup(t)

	v1 := vendorModel.VendorModel{NamaVendor: "PT Eta"}
	v2 := vendorModel.VendorModel{NamaVendor: "PT Theta"}
	db.Create(&v1)
	db.Create(&v2)

	a1 := aplikasiModel.AplikasiModel{Nama: "Portal Perizinan"}
	a2 := aplikasiModel.AplikasiModel{Nama: "Portal Pengaduan"}
	db.Create(&a1)
	db.Create(&a2)
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a1.ID, IDVendor: v1.ID})
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a2.ID, IDVendor: v1.ID})

	// cocok lewat nama aplikasi yang digarap vendor
	status, body := testutil.DoJSON(t, app, "GET", "/api/vendor?search=portal", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	rows := testutil.ListData(t, body)
	if len(rows) != 1 || rows[0].(map[string]interface{})["namaVendor"] != "PT Eta" {
		t.Fatalf("pencarian via aplikasi gagal: %v", rows)
	}

	// dua aplikasi cocok tapi vendornya tetap dihitung sekali
	pg := testutil.Pagination(t, body)
	if pg["total"] != float64(1) {
		t.Errorf("total = %v, want 1", pg["total"])
	}
}

func TestSearchVendorKontak(t *testing.T) {
	app, db := setup(t)

	kontak := "budi@vendor.id"
	db.Create(&vendorModel.VendorModel{NamaVendor: "PT Epsilon", Kontak: &kontak})
	db.Create(&vendorModel.VendorModel{NamaVendor: "PT Zeta"})

	status, body := testutil.DoJSON(t, app, "GET", "/api/vendor?search=budi", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	rows := testutil.ListData(t, body)
	if len(rows) != 1 || rows[0].(map[string]interface{})["namaVendor"] != "PT Epsilon" {
		t.Errorf("pencarian kontak gagal: %v", rows)
	}
}
