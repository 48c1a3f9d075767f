// internals/features/aplikasi_vendor/controller/aplikasi_vendor_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	avDTO "inventaris_backend/internals/features/aplikasi_vendor/dto"
	avModel "inventaris_backend/internals/features/aplikasi_vendor/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
	helper "inventaris_backend/internals/helpers"
)

type AplikasiVendorController struct {
	DB *gorm.DB
}

func NewAplikasiVendorController(db *gorm.DB) *AplikasiVendorController {
	return &AplikasiVendorController{DB: db}
}

var sortColumns = map[string]string{
	"createdAt":  "aplikasi_vendor.created_at",
	"idAplikasi": "aplikasi_vendor.id_aplikasi",
	"idVendor":   "aplikasi_vendor.id_vendor",
}

/* ===================== HANDLERS ===================== */

// GET /api/aplikasi-vendor
// Inner join; baris dengan aplikasi atau vendor yang sudah lenyap tidak ikut.
func (h *AplikasiVendorController) List(c *fiber.Ctx) error {
	p := helper.ResolveListParams(c, "createdAt")

	applyFilters := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&avModel.AplikasiVendorModel{}).
			Joins("JOIN aplikasi ON aplikasi.id = aplikasi_vendor.id_aplikasi").
			Joins("JOIN vendor ON vendor.id = aplikasi_vendor.id_vendor")
		if p.Search != "" {
			pat := p.LikePattern()
			q = q.Where("LOWER(aplikasi.nama) LIKE ? OR LOWER(vendor.nama_vendor) LIKE ?", pat, pat)
		}
		return q
	}

	var total int64
	if err := applyFilters(h.DB).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count aplikasi-vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi-vendor")
	}

	var rows []avModel.AplikasiVendorModel
	if err := applyFilters(h.DB).
		Preload("Aplikasi").
		Preload("Vendor").
		Order(p.OrderClause(sortColumns, "createdAt")).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list aplikasi-vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi-vendor")
	}

	items := make([]*avDTO.AplikasiVendorResponse, 0, len(rows))
	for i := range rows {
		items = append(items, avDTO.NewAplikasiVendorResponse(&rows[i]))
	}

	return helper.Success(c, fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
	})
}

// GET /api/aplikasi-vendor/:id
func (h *AplikasiVendorController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m avModel.AplikasiVendorModel
	if err := h.DB.
		Preload("Aplikasi").
		Preload("Vendor").
		First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Hubungan aplikasi-vendor tidak ditemukan")
		}
		log.Printf("[ERROR] detail aplikasi-vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data aplikasi-vendor")
	}

	return helper.Success(c, avDTO.NewAplikasiVendorResponse(&m))
}

// POST /api/aplikasi-vendor
func (h *AplikasiVendorController) Create(c *fiber.Ctx) error {
	var req avDTO.CreateAplikasiVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&aplikasiModel.AplikasiModel{}).Where("id = ?", req.IDAplikasi).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Aplikasi tidak ditemukan")
		}

		if err := tx.Model(&vendorModel.VendorModel{}).Where("id = ?", req.IDVendor).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Vendor tidak ditemukan")
		}

		if err := tx.Model(&avModel.AplikasiVendorModel{}).
			Where("id_aplikasi = ? AND id_vendor = ?", req.IDAplikasi, req.IDVendor).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Hubungan aplikasi-vendor ini sudah ada")
		}

		return tx.Create(m).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create aplikasi-vendor: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat hubungan aplikasi-vendor")
	}

	if err := h.DB.Preload("Aplikasi").Preload("Vendor").First(m, "id = ?", m.ID).Error; err != nil {
		log.Printf("[ERROR] reload aplikasi-vendor: %v", err)
	}

	return helper.SuccessWithMessage(c, avDTO.NewAplikasiVendorResponse(m), "Hubungan aplikasi-vendor berhasil dibuat")
}

// DELETE /api/aplikasi-vendor/:id
func (h *AplikasiVendorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m avModel.AplikasiVendorModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Hubungan aplikasi-vendor tidak ditemukan")
		}
		log.Printf("[ERROR] find aplikasi-vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus hubungan aplikasi-vendor")
	}

	if err := h.DB.Delete(&avModel.AplikasiVendorModel{}, "id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete aplikasi-vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus hubungan aplikasi-vendor")
	}

	return helper.SuccessWithMessage(c, nil, "Hubungan aplikasi-vendor berhasil dihapus")
}
