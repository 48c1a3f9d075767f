// internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"log"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	bahasaModel "inventaris_backend/internals/features/bahasa_pemrograman/model"
	dashboardDTO "inventaris_backend/internals/features/dashboard/dto"
	frameworkModel "inventaris_backend/internals/features/framework/model"
	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
	picModel "inventaris_backend/internals/features/pic/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
	helper "inventaris_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

/* ===================== HANDLER ===================== */

// GET /api/dashboard/stats
func (h *DashboardController) Stats(c *fiber.Ctx) error {
	var resp dashboardDTO.DashboardStatsResponse

	if err := h.buildSummary(&resp.Summary); err != nil {
		log.Printf("[ERROR] dashboard summary: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik dashboard")
	}

	var err error
	if resp.AplikasiByStatus, err = h.groupByStatus(resp.Summary.TotalAplikasi); err != nil {
		log.Printf("[ERROR] dashboard status: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik dashboard")
	}
	if resp.AplikasiByPlatform, err = h.groupByPlatform(resp.Summary.TotalAplikasi); err != nil {
		log.Printf("[ERROR] dashboard platform: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik dashboard")
	}
	if resp.TopPerangkatDaerah, err = h.topPerangkatDaerah(); err != nil {
		log.Printf("[ERROR] dashboard top perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik dashboard")
	}
	if resp.PopularBahasa, err = h.popularBahasa(); err != nil {
		log.Printf("[ERROR] dashboard bahasa: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik dashboard")
	}
	if resp.PopularFramework, err = h.popularFramework(); err != nil {
		log.Printf("[ERROR] dashboard framework: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik dashboard")
	}
	if resp.RecentAplikasi, err = h.recentAplikasi(); err != nil {
		log.Printf("[ERROR] dashboard recent: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data statistik dashboard")
	}

	return helper.Success(c, &resp)
}

/* ===================== INTERNAL ===================== */

func (h *DashboardController) buildSummary(s *dashboardDTO.DashboardSummary) error {
	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&aplikasiModel.AplikasiModel{}, &s.TotalAplikasi},
		{&pdModel.PerangkatDaerahModel{}, &s.TotalPerangkatDaerah},
		{&picModel.PicModel{}, &s.TotalPic},
		{&vendorModel.VendorModel{}, &s.TotalVendor},
		{&bahasaModel.BahasaPemrogramanModel{}, &s.TotalBahasaPemrograman},
		{&frameworkModel.FrameworkModel{}, &s.TotalFramework},
	}
	for _, ct := range counts {
		if err := h.DB.Model(ct.model).Count(ct.dst).Error; err != nil {
			return err
		}
	}

	if err := h.DB.Model(&aplikasiModel.AplikasiModel{}).
		Where("id_perangkat_daerah IS NOT NULL").
		Distinct("id_perangkat_daerah").
		Count(&s.TotalPerangkatDaerahWithApps).Error; err != nil {
		return err
	}

	return h.DB.Model(&aplikasiModel.AplikasiModel{}).
		Select("COALESCE(SUM(anggaran), 0)").
		Scan(&s.TotalAnggaran).Error
}

// percentage dibulatkan ke bilangan bulat terdekat.
func percentage(count, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func (h *DashboardController) groupByStatus(total int64) ([]dashboardDTO.StatusCount, error) {
	var rows []struct {
		Status string
		Cnt    int64
	}
	err := h.DB.Model(&aplikasiModel.AplikasiModel{}).
		Select("status AS status, COUNT(id) AS cnt").
		Where("status IS NOT NULL").
		Group("status").
		Order("cnt DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dashboardDTO.StatusCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashboardDTO.StatusCount{
			Status:     r.Status,
			Count:      r.Cnt,
			Percentage: percentage(r.Cnt, total),
		})
	}
	return out, nil
}

func (h *DashboardController) groupByPlatform(total int64) ([]dashboardDTO.PlatformCount, error) {
	var rows []struct {
		Platform string
		Cnt      int64
	}
	err := h.DB.Model(&aplikasiModel.AplikasiModel{}).
		Select("platform AS platform, COUNT(id) AS cnt").
		Where("platform IS NOT NULL").
		Group("platform").
		Order("cnt DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dashboardDTO.PlatformCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashboardDTO.PlatformCount{
			Platform:   r.Platform,
			Count:      r.Cnt,
			Percentage: percentage(r.Cnt, total),
		})
	}
	return out, nil
}

// Sepuluh perangkat daerah dengan aplikasi terbanyak.
// Skor seri diurutkan berdasarkan id terkecil supaya hasilnya stabil.
func (h *DashboardController) topPerangkatDaerah() ([]dashboardDTO.TopPerangkatDaerah, error) {
	var rows []struct {
		ID    uint
		Nama  string
		Jenis *string
		Cnt   int64
	}
	err := h.DB.Table("perangkat_daerah").
		Select("perangkat_daerah.id AS id, perangkat_daerah.nama AS nama, perangkat_daerah.jenis AS jenis, COUNT(aplikasi.id) AS cnt").
		Joins("LEFT JOIN aplikasi ON aplikasi.id_perangkat_daerah = perangkat_daerah.id").
		Group("perangkat_daerah.id, perangkat_daerah.nama, perangkat_daerah.jenis").
		Order("cnt DESC, perangkat_daerah.id ASC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dashboardDTO.TopPerangkatDaerah, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashboardDTO.TopPerangkatDaerah{
			ID:            r.ID,
			Nama:          r.Nama,
			Jenis:         r.Jenis,
			AplikasiCount: r.Cnt,
		})
	}
	return out, nil
}

func (h *DashboardController) popularBahasa() ([]dashboardDTO.PopularItem, error) {
	return h.popularItems("bahasa_pemrograman", "id_bahasa")
}

func (h *DashboardController) popularFramework() ([]dashboardDTO.PopularItem, error) {
	return h.popularItems("framework", "id_framework")
}

// popularItems menghitung pemakaian bahasa/framework oleh aplikasi.
// Entri yang belum dipakai tetap muncul dengan count 0.
func (h *DashboardController) popularItems(table, fkColumn string) ([]dashboardDTO.PopularItem, error) {
	var rows []struct {
		ID   uint
		Nama string
		Cnt  int64
	}
	err := h.DB.Table(table).
		Select(table+".id AS id, "+table+".nama AS nama, COUNT(aplikasi.id) AS cnt").
		Joins("LEFT JOIN aplikasi ON aplikasi."+fkColumn+" = "+table+".id").
		Group(table + ".id, " + table + ".nama").
		Order("cnt DESC, " + table + ".id ASC").
		Limit(10).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dashboardDTO.PopularItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, dashboardDTO.PopularItem{ID: r.ID, Nama: r.Nama, Count: r.Cnt})
	}
	return out, nil
}

func (h *DashboardController) recentAplikasi() ([]dashboardDTO.RecentAplikasi, error) {
	var rows []struct {
		ID              uint
		Nama            string
		Status          *string
		Platform        *string
		CreatedAt       time.Time
		PerangkatDaerah *string
	}
	err := h.DB.Table("aplikasi").
		Select("aplikasi.id AS id, aplikasi.nama AS nama, aplikasi.status AS status, aplikasi.platform AS platform, aplikasi.created_at AS created_at, perangkat_daerah.nama AS perangkat_daerah").
		Joins("LEFT JOIN perangkat_daerah ON perangkat_daerah.id = aplikasi.id_perangkat_daerah").
		Order("aplikasi.created_at DESC").
		Limit(5).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]dashboardDTO.RecentAplikasi, 0, len(rows))
	for _, r := range rows {
		pdNama := "Tidak ditemukan"
		if r.PerangkatDaerah != nil {
			pdNama = *r.PerangkatDaerah
		}
		out = append(out, dashboardDTO.RecentAplikasi{
			ID:              r.ID,
			Nama:            r.Nama,
			Status:          r.Status,
			Platform:        r.Platform,
			CreatedAt:       r.CreatedAt,
			PerangkatDaerah: pdNama,
		})
	}
	return out, nil
}
