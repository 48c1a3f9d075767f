// internals/features/aplikasi/controller/aplikasi_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiDTO "inventaris_backend/internals/features/aplikasi/dto"
	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	aplikasiVendorModel "inventaris_backend/internals/features/aplikasi_vendor/model"
	bahasaModel "inventaris_backend/internals/features/bahasa_pemrograman/model"
	frameworkModel "inventaris_backend/internals/features/framework/model"
	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
	picModel "inventaris_backend/internals/features/pic/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
	helper "inventaris_backend/internals/helpers"
)

type AplikasiController struct {
	DB *gorm.DB
}

func NewAplikasiController(db *gorm.DB) *AplikasiController {
	return &AplikasiController{DB: db}
}

// Kolom di-prefix nama tabel karena list memakai join.
var sortColumns = map[string]string{
	"createdAt":   "aplikasi.created_at",
	"updatedAt":   "aplikasi.updated_at",
	"nama":        "aplikasi.nama",
	"status":      "aplikasi.status",
	"platform":    "aplikasi.platform",
	"tahunDibuat": "aplikasi.tahun_dibuat",
	"anggaran":    "aplikasi.anggaran",
}

/* ===================== HANDLERS ===================== */

// GET /api/aplikasi
// Pencarian menjangkau nama/deskripsi aplikasi plus nama relasinya.
func (h *AplikasiController) List(c *fiber.Ctx) error {
	p := helper.ResolveListParams(c, "createdAt")

	applyFilters := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&aplikasiModel.AplikasiModel{}).
			Joins("LEFT JOIN perangkat_daerah ON perangkat_daerah.id = aplikasi.id_perangkat_daerah").
			Joins("LEFT JOIN bahasa_pemrograman ON bahasa_pemrograman.id = aplikasi.id_bahasa").
			Joins("LEFT JOIN framework ON framework.id = aplikasi.id_framework")
		if p.Search != "" {
			pat := p.LikePattern()
			q = q.Where(
				"LOWER(aplikasi.nama) LIKE ? OR LOWER(aplikasi.deskripsi) LIKE ? OR LOWER(perangkat_daerah.nama) LIKE ? OR LOWER(bahasa_pemrograman.nama) LIKE ? OR LOWER(framework.nama) LIKE ?",
				pat, pat, pat, pat, pat,
			)
		}
		if p.Status != "" {
			q = q.Where("aplikasi.status = ?", p.Status)
		}
		return q
	}

	var total int64
	if err := applyFilters(h.DB).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count aplikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi")
	}

	var rows []aplikasiModel.AplikasiModel
	if err := applyFilters(h.DB).
		Preload("PerangkatDaerah").
		Preload("BahasaPemrograman").
		Preload("Framework").
		Order(p.OrderClause(sortColumns, "createdAt")).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list aplikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi")
	}

	items := make([]*aplikasiDTO.AplikasiResponse, 0, len(rows))
	for i := range rows {
		items = append(items, aplikasiDTO.NewAplikasiResponse(&rows[i]))
	}

	return helper.Success(c, fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
	})
}

// GET /api/aplikasi/:id
func (h *AplikasiController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m aplikasiModel.AplikasiModel
	if err := h.DB.
		Preload("PerangkatDaerah").
		Preload("BahasaPemrograman").
		Preload("Framework").
		First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		log.Printf("[ERROR] detail aplikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi")
	}

	var pics []picModel.PicModel
	if err := h.DB.
		Where("id_aplikasi = ?", id).
		Order("nama ASC").
		Find(&pics).Error; err != nil {
		log.Printf("[ERROR] pic aplikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi")
	}

	var vendors []vendorModel.VendorModel
	if err := h.DB.
		Joins("JOIN aplikasi_vendor ON aplikasi_vendor.id_vendor = vendor.id").
		Where("aplikasi_vendor.id_aplikasi = ?", id).
		Order("vendor.nama_vendor ASC").
		Find(&vendors).Error; err != nil {
		log.Printf("[ERROR] vendor aplikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi")
	}

	return helper.Success(c, aplikasiDTO.NewAplikasiDetailResponse(&m, pics, vendors))
}

// POST /api/aplikasi
func (h *AplikasiController) Create(c *fiber.Ctx) error {
	var req aplikasiDTO.CreateAplikasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.TahunDibuat != nil && *req.TahunDibuat > time.Now().Year()+1 {
		return helper.Error(c, fiber.StatusBadRequest, "Tahun dibuat tidak valid")
	}

	m := req.ToModel()
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := checkAplikasiRefs(tx, m.IDPerangkatDaerah, m.IDBahasa, m.IDFramework); err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create aplikasi: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat aplikasi")
	}

	if err := h.DB.
		Preload("PerangkatDaerah").
		Preload("BahasaPemrograman").
		Preload("Framework").
		First(m, "id = ?", m.ID).Error; err != nil {
		log.Printf("[ERROR] reload aplikasi: %v", err)
	}

	return helper.SuccessWithMessage(c, aplikasiDTO.NewAplikasiResponse(m), "Aplikasi berhasil dibuat")
}

// PUT /api/aplikasi/:id
func (h *AplikasiController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req aplikasiDTO.UpdateAplikasiRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.TahunDibuat != nil && *req.TahunDibuat > time.Now().Year()+1 {
		return helper.Error(c, fiber.StatusBadRequest, "Tahun dibuat tidak valid")
	}

	var m aplikasiModel.AplikasiModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		log.Printf("[ERROR] find aplikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui aplikasi")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := checkAplikasiRefs(tx, req.IDPerangkatDaerah, req.IDBahasa, req.IDFramework); err != nil {
			return err
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] update aplikasi: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui aplikasi")
	}

	if err := h.DB.
		Preload("PerangkatDaerah").
		Preload("BahasaPemrograman").
		Preload("Framework").
		First(&m, "id = ?", m.ID).Error; err != nil {
		log.Printf("[ERROR] reload aplikasi: %v", err)
	}

	return helper.SuccessWithMessage(c, aplikasiDTO.NewAplikasiResponse(&m), "Aplikasi berhasil diperbarui")
}

// DELETE /api/aplikasi/:id
// PIC dan relasi vendor ikut dihapus dalam satu transaksi.
func (h *AplikasiController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m aplikasiModel.AplikasiModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Aplikasi tidak ditemukan")
		}
		log.Printf("[ERROR] find aplikasi: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus aplikasi")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&picModel.PicModel{}, "id_aplikasi = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&aplikasiVendorModel.AplikasiVendorModel{}, "id_aplikasi = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&aplikasiModel.AplikasiModel{}, "id = ?", id).Error
	})
	if txErr != nil {
		log.Printf("[ERROR] delete aplikasi: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus aplikasi")
	}

	return helper.SuccessWithMessage(c, nil, "Aplikasi berhasil dihapus")
}

/* ===================== INTERNAL ===================== */

// checkAplikasiRefs memastikan FK yang dikirim memang ada.
func checkAplikasiRefs(tx *gorm.DB, idPD, idBahasa, idFramework *uint) error {
	if idPD != nil {
		var cnt int64
		if err := tx.Model(&pdModel.PerangkatDaerahModel{}).Where("id = ?", *idPD).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Perangkat daerah tidak ditemukan")
		}
	}
	if idBahasa != nil {
		var cnt int64
		if err := tx.Model(&bahasaModel.BahasaPemrogramanModel{}).Where("id = ?", *idBahasa).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bahasa pemrograman tidak ditemukan")
		}
	}
	if idFramework != nil {
		var cnt int64
		if err := tx.Model(&frameworkModel.FrameworkModel{}).Where("id = ?", *idFramework).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Framework tidak ditemukan")
		}
	}
	return nil
}
