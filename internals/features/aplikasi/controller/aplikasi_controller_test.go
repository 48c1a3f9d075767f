package controller_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	aplikasiRoute "inventaris_backend/internals/features/aplikasi/route"
	avModel "inventaris_backend/internals/features/aplikasi_vendor/model"
	bahasaModel "inventaris_backend/internals/features/bahasa_pemrograman/model"
	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
	picModel "inventaris_backend/internals/features/pic/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
	"inventaris_backend/internals/testutil"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, func(api fiber.Router) {
		aplikasiRoute.AplikasiRoutes(api, db)
	})
	return app, db
}

func TestCreateAplikasiRoundTrip(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	pd := pdModel.PerangkatDaerahModel{Nama: "Dinas Kominfo"}
	db.Create(&pd)
	bahasa := bahasaModel.BahasaPemrogramanModel{Nama: "Go"}
	db.Create(&bahasa)

	status, body := testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":              "SIMPEG",
		"deskripsi":         "Sistem kepegawaian",
		"status":            "aktif",
		"platform":          "web",
		"urlAplikasi":       "https://simpeg.example.go.id",
		"tahunDibuat":       2022,
		"anggaran":          150000000,
		"idPerangkatDaerah": pd.ID,
		"idBahasa":          bahasa.ID,
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	data := testutil.Data(t, body)
	if data["nama"] != "SIMPEG" || data["status"] != "aktif" || data["platform"] != "web" {
		t.Errorf("data tidak sesuai: %v", data)
	}
	if data["tahunDibuat"] != float64(2022) || data["anggaran"] != float64(150000000) {
		t.Errorf("angka tidak sesuai: %v", data)
	}
	if data["idBahasa"] != float64(bahasa.ID) {
		t.Errorf("idBahasa = %v, want %d", data["idBahasa"], bahasa.ID)
	}

	rel, ok := data["perangkatDaerah"].(map[string]interface{})
	if !ok || rel["nama"] != "Dinas Kominfo" {
		t.Errorf("relasi perangkatDaerah tidak ikut: %v", data)
	}
	if data["idFramework"] != nil {
		t.Errorf("idFramework harus null: %v", data["idFramework"])
	}
}

func TestCreateAplikasiInvalidEnum(t *testing.T) {
	app, _ := setup(t)
	token := testutil.SignToken(t)

	status, body := testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":   "Aplikasi Aneh",
		"status": "hidup",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status enum: %d, want 400, body = %v", status, body)
	}

	status, _ = testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":     "Aplikasi Aneh",
		"platform": "game",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("platform enum: %d, want 400", status)
	}

	status, _ = testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":        "Aplikasi Aneh",
		"urlAplikasi": "bukan-url",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("url: %d, want 400", status)
	}
}

func TestCreateAplikasiTahunDibuat(t *testing.T) {
	app, _ := setup(t)
	token := testutil.SignToken(t)

	status, _ := testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":        "Aplikasi Purba",
		"tahunDibuat": 1980,
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("tahun < 1990: %d, want 400", status)
	}

	status, body := testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":        "Aplikasi Masa Depan",
		"tahunDibuat": time.Now().Year() + 2,
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("tahun terlalu jauh: %d, want 400", status)
	}
	if body["error"] != "Tahun dibuat tidak valid" {
		t.Errorf("error = %v", body["error"])
	}

	status, _ = testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":        "Aplikasi Tahun Depan",
		"tahunDibuat": time.Now().Year() + 1,
	})
	if status != fiber.StatusOK {
		t.Fatalf("tahun depan harus sah: %d", status)
	}
}

func TestCreateAplikasiFKGuard(t *testing.T) {
	app, _ := setup(t)
	token := testutil.SignToken(t)

	status, body := testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":              "Aplikasi Yatim",
		"idPerangkatDaerah": 999,
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "Perangkat daerah tidak ditemukan" {
		t.Errorf("error = %v", body["error"])
	}

	status, body = testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":     "Aplikasi Yatim",
		"idBahasa": 999,
	})
	if status != fiber.StatusBadRequest || body["error"] != "Bahasa pemrograman tidak ditemukan" {
		t.Fatalf("bahasa: status = %d, error = %v", status, body["error"])
	}

	status, body = testutil.DoJSON(t, app, "POST", "/api/aplikasi", token, fiber.Map{
		"nama":        "Aplikasi Yatim",
		"idFramework": 999,
	})
	if status != fiber.StatusBadRequest || body["error"] != "Framework tidak ditemukan" {
		t.Fatalf("framework: status = %d, error = %v", status, body["error"])
	}
}

func TestListAplikasiStatusFilter(t *testing.T) {
	app, db := setup(t)

	aktif := aplikasiModel.StatusAktif
	maint := aplikasiModel.StatusMaintenance
	db.Create(&aplikasiModel.AplikasiModel{Nama: "A", Status: &aktif})
	db.Create(&aplikasiModel.AplikasiModel{Nama: "B", Status: &aktif})
	db.Create(&aplikasiModel.AplikasiModel{Nama: "C", Status: &maint})

	status, body := testutil.DoJSON(t, app, "GET", "/api/aplikasi?status=aktif", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	rows := testutil.ListData(t, body)
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	p := testutil.Pagination(t, body)
	if p["total"] != float64(2) {
		t.Errorf("total = %v, want 2", p["total"])
	}
}

func TestListAplikasiSearchJoinedNames(t *testing.T) {
	app, db := setup(t)

	pd := pdModel.PerangkatDaerahModel{Nama: "Dinas Kesehatan"}
	db.Create(&pd)
	db.Create(&aplikasiModel.AplikasiModel{Nama: "SIKDA", IDPerangkatDaerah: &pd.ID})
	db.Create(&aplikasiModel.AplikasiModel{Nama: "Portal Lain"})

	status, body := testutil.DoJSON(t, app, "GET", "/api/aplikasi?search=kesehatan", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	rows := testutil.ListData(t, body)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	first := rows[0].(map[string]interface{})
	if first["nama"] != "SIKDA" {
		t.Errorf("hasil pencarian salah: %v", first)
	}
}

func TestDetailAplikasiRelations(t *testing.T) {
	app, db := setup(t)

	pd := pdModel.PerangkatDaerahModel{Nama: "Dinas PUPR"}
	db.Create(&pd)
	a := aplikasiModel.AplikasiModel{Nama: "SIPJAKI", IDPerangkatDaerah: &pd.ID}
	db.Create(&a)
	db.Create(&picModel.PicModel{Nama: "Andi", IDAplikasi: a.ID})

	v := vendorModel.VendorModel{NamaVendor: "PT Solusi"}
	db.Create(&v)
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a.ID, IDVendor: v.ID})

	status, body := testutil.DoJSON(t, app, "GET", fmt.Sprintf("/api/aplikasi/%d", a.ID), "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	data := testutil.Data(t, body)
	pdJSON, ok := data["perangkatDaerah"].(map[string]interface{})
	if !ok || pdJSON["nama"] != "Dinas PUPR" {
		t.Fatalf("perangkatDaerah = %v", data["perangkatDaerah"])
	}
	if _, ok := pdJSON["alamat"]; !ok {
		t.Errorf("detail harus membawa perangkat daerah lengkap: %v", pdJSON)
	}
	pics, ok := data["pic"].([]interface{})
	if !ok || len(pics) != 1 {
		t.Fatalf("pic = %v", data["pic"])
	}
	vendors, ok := data["vendors"].([]interface{})
	if !ok || len(vendors) != 1 {
		t.Fatalf("vendors = %v", data["vendors"])
	}
	if vendors[0].(map[string]interface{})["namaVendor"] != "PT Solusi" {
		t.Errorf("vendor salah: %v", vendors[0])
	}
}

func TestDeleteAplikasiCascade(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	a := aplikasiModel.AplikasiModel{Nama: "Aplikasi Pensiun"}
	db.Create(&a)
	db.Create(&picModel.PicModel{Nama: "Sari", IDAplikasi: a.ID})
	v := vendorModel.VendorModel{NamaVendor: "CV Mitra"}
	db.Create(&v)
	db.Create(&avModel.AplikasiVendorModel{IDAplikasi: a.ID, IDVendor: v.ID})

	status, body := testutil.DoJSON(t, app, "DELETE", fmt.Sprintf("/api/aplikasi/%d", a.ID), token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}

	var picCnt, avCnt int64
	db.Model(&picModel.PicModel{}).Where("id_aplikasi = ?", a.ID).Count(&picCnt)
	db.Model(&avModel.AplikasiVendorModel{}).Where("id_aplikasi = ?", a.ID).Count(&avCnt)
	if picCnt != 0 || avCnt != 0 {
		t.Errorf("pic/aplikasi_vendor tidak ikut terhapus: pic=%d av=%d", picCnt, avCnt)
	}

	// vendor tetap hidup, hanya relasinya yang hilang
	var vendorCnt int64
	db.Model(&vendorModel.VendorModel{}).Count(&vendorCnt)
	if vendorCnt != 1 {
		t.Errorf("vendor ikut terhapus")
	}
}

func TestUpdateAplikasi(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	a := aplikasiModel.AplikasiModel{Nama: "Aplikasi Lama"}
	db.Create(&a)

	status, body := testutil.DoJSON(t, app, "PUT", fmt.Sprintf("/api/aplikasi/%d", a.ID), token, fiber.Map{
		"nama":   "Aplikasi Baru",
		"status": "pengembangan",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	data := testutil.Data(t, body)
	if data["nama"] != "Aplikasi Baru" || data["status"] != "pengembangan" {
		t.Errorf("data tidak sesuai: %v", data)
	}
}
