package controller_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
	pdRoute "inventaris_backend/internals/features/perangkat_daerah/route"
	"inventaris_backend/internals/testutil"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	db := testutil.NewTestDB(t)
	app := testutil.NewTestApp(t, func(api fiber.Router) {
		pdRoute.PerangkatDaerahRoutes(api, db)
	})
	return app, db
}

func TestCreatePerangkatDaerah(t *testing.T) {
	app, _ := setup(t)
	token := testutil.SignToken(t)

	jenis := "dinas"
	status, body := testutil.DoJSON(t, app, "POST", "/api/perangkat-daerah", token, fiber.Map{
		"nama":        "Dinas Kominfo",
		"jenis":       jenis,
		"kepalaDinas": "Budi Santoso",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["message"] != "Perangkat daerah berhasil dibuat" {
		t.Errorf("message = %v", body["message"])
	}

	data := testutil.Data(t, body)
	if data["nama"] != "Dinas Kominfo" || data["jenis"] != jenis || data["kepalaDinas"] != "Budi Santoso" {
		t.Errorf("data tidak sesuai: %v", data)
	}
	if _, ok := data["alamat"]; !ok {
		t.Errorf("field null harus tetap ada di response: %v", data)
	}
}

func TestCreatePerangkatDaerahValidation(t *testing.T) {
	app, _ := setup(t)
	token := testutil.SignToken(t)

	status, body := testutil.DoJSON(t, app, "POST", "/api/perangkat-daerah", token, fiber.Map{
		"jenis": "dinas",
	})
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "Validasi gagal" {
		t.Errorf("error = %v", body["error"])
	}
	if _, ok := body["errors"].(map[string]interface{}); !ok {
		t.Errorf("errors map hilang: %v", body)
	}
}

func TestMutationRequiresAuth(t *testing.T) {
	app, _ := setup(t)

	status, body := testutil.DoJSON(t, app, "POST", "/api/perangkat-daerah", "", fiber.Map{
		"nama": "Dinas Tanpa Token",
	})
	if status != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", status)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("error = %v", body["error"])
	}

	status, _ = testutil.DoJSON(t, app, "POST", "/api/perangkat-daerah", testutil.SignExpiredToken(t), fiber.Map{
		"nama": "Dinas Token Kedaluwarsa",
	})
	if status != fiber.StatusUnauthorized {
		t.Fatalf("token kedaluwarsa: status = %d, want 401", status)
	}
}

func TestListPerangkatDaerahPagination(t *testing.T) {
	app, db := setup(t)

	for i := 1; i <= 25; i++ {
		db.Create(&pdModel.PerangkatDaerahModel{Nama: fmt.Sprintf("Dinas %02d", i)})
	}

	status, body := testutil.DoJSON(t, app, "GET", "/api/perangkat-daerah?page=2&limit=10", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}

	rows := testutil.ListData(t, body)
	if len(rows) != 10 {
		t.Errorf("len(rows) = %d, want 10", len(rows))
	}

	p := testutil.Pagination(t, body)
	if p["total"] != float64(25) || p["totalPages"] != float64(3) {
		t.Errorf("pagination = %v", p)
	}
	if p["hasNext"] != true || p["hasPrev"] != true {
		t.Errorf("hasNext/hasPrev = %v", p)
	}
}

func TestListPerangkatDaerahSearch(t *testing.T) {
	app, db := setup(t)

	badan := "badan"
	db.Create(&pdModel.PerangkatDaerahModel{Nama: "Dinas Pendidikan"})
	db.Create(&pdModel.PerangkatDaerahModel{Nama: "Badan Keuangan", Jenis: &badan})

	status, body := testutil.DoJSON(t, app, "GET", "/api/perangkat-daerah?search=KEUANGAN", "", nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d", status)
	}
	rows := testutil.ListData(t, body)
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
}

func TestUpdatePerangkatDaerah(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	m := pdModel.PerangkatDaerahModel{Nama: "Dinas Lama"}
	db.Create(&m)

	status, body := testutil.DoJSON(t, app, "PUT", fmt.Sprintf("/api/perangkat-daerah/%d", m.ID), token, fiber.Map{
		"nama": "Dinas Baru",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if testutil.Data(t, body)["nama"] != "Dinas Baru" {
		t.Errorf("nama tidak terganti: %v", body)
	}
}

func TestDetailPerangkatDaerahNotFound(t *testing.T) {
	app, _ := setup(t)

	status, body := testutil.DoJSON(t, app, "GET", "/api/perangkat-daerah/999", "", nil)
	if status != fiber.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if body["error"] != "Perangkat daerah tidak ditemukan" {
		t.Errorf("error = %v", body["error"])
	}

	status, body = testutil.DoJSON(t, app, "GET", "/api/perangkat-daerah/abc", "", nil)
	if status != fiber.StatusBadRequest {
		t.Fatalf("id non-angka: status = %d, want 400", status)
	}
	if body["error"] != "ID tidak valid" {
		t.Errorf("error = %v", body["error"])
	}
}

func TestDeletePerangkatDaerahGuard(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	m := pdModel.PerangkatDaerahModel{Nama: "Dinas Beraplikasi"}
	db.Create(&m)
	db.Exec("INSERT INTO aplikasi (nama, id_perangkat_daerah, created_at, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)", "SIMPEG", m.ID)

	status, body := testutil.DoJSON(t, app, "DELETE", fmt.Sprintf("/api/perangkat-daerah/%d", m.ID), token, nil)
	if status != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body["error"] != "Tidak dapat menghapus perangkat daerah yang memiliki aplikasi terkait" {
		t.Errorf("error = %v", body["error"])
	}

	// masih ada karena penghapusan ditolak
	var cnt int64
	db.Model(&pdModel.PerangkatDaerahModel{}).Where("id = ?", m.ID).Count(&cnt)
	if cnt != 1 {
		t.Errorf("baris ikut terhapus padahal ditolak")
	}
}

func TestDeletePerangkatDaerah(t *testing.T) {
	app, db := setup(t)
	token := testutil.SignToken(t)

	m := pdModel.PerangkatDaerahModel{Nama: "Dinas Kosong"}
	db.Create(&m)

	status, body := testutil.DoJSON(t, app, "DELETE", fmt.Sprintf("/api/perangkat-daerah/%d", m.ID), token, nil)
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	if body["message"] != "Perangkat daerah berhasil dihapus" {
		t.Errorf("message = %v", body["message"])
	}
}
