// internals/features/bahasa_pemrograman/controller/bahasa_pemrograman_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	bahasaDTO "inventaris_backend/internals/features/bahasa_pemrograman/dto"
	bahasaModel "inventaris_backend/internals/features/bahasa_pemrograman/model"
	helper "inventaris_backend/internals/helpers"
)

type BahasaPemrogramanController struct {
	DB *gorm.DB
}

func NewBahasaPemrogramanController(db *gorm.DB) *BahasaPemrogramanController {
	return &BahasaPemrogramanController{DB: db}
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"nama":      "nama",
}

/* ===================== HANDLERS ===================== */

// GET /api/bahasa-pemrograman
func (h *BahasaPemrogramanController) List(c *fiber.Ctx) error {
	p := helper.ResolveListParams(c, "createdAt")

	applyFilters := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&bahasaModel.BahasaPemrogramanModel{})
		if p.Search != "" {
			q = q.Where("LOWER(nama) LIKE ?", p.LikePattern())
		}
		return q
	}

	var total int64
	if err := applyFilters(h.DB).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count bahasa pemrograman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data bahasa pemrograman")
	}

	var rows []bahasaModel.BahasaPemrogramanModel
	if err := applyFilters(h.DB).
		Order(p.OrderClause(sortColumns, "createdAt")).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list bahasa pemrograman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data bahasa pemrograman")
	}

	items := make([]*bahasaDTO.BahasaPemrogramanResponse, 0, len(rows))
	for i := range rows {
		items = append(items, bahasaDTO.NewBahasaPemrogramanResponse(&rows[i]))
	}

	return helper.Success(c, fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
	})
}

// GET /api/bahasa-pemrograman/:id
func (h *BahasaPemrogramanController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m bahasaModel.BahasaPemrogramanModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bahasa pemrograman tidak ditemukan")
		}
		log.Printf("[ERROR] detail bahasa pemrograman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data bahasa pemrograman")
	}

	var aplikasiCount int64
	if err := h.DB.Model(&aplikasiModel.AplikasiModel{}).
		Where("id_bahasa = ?", id).
		Count(&aplikasiCount).Error; err != nil {
		log.Printf("[ERROR] count aplikasi bahasa pemrograman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data bahasa pemrograman")
	}

	return helper.Success(c, &bahasaDTO.BahasaPemrogramanDetailResponse{
		BahasaPemrogramanResponse: *bahasaDTO.NewBahasaPemrogramanResponse(&m),
		AplikasiCount:             aplikasiCount,
	})
}

// POST /api/bahasa-pemrograman
func (h *BahasaPemrogramanController) Create(c *fiber.Ctx) error {
	var req bahasaDTO.CreateBahasaPemrogramanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Nama = strings.TrimSpace(req.Nama)

	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&bahasaModel.BahasaPemrogramanModel{}).
			Where("nama = ?", req.Nama).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Bahasa pemrograman dengan nama tersebut sudah ada")
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create bahasa pemrograman: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat bahasa pemrograman")
	}

	return helper.SuccessWithMessage(c, bahasaDTO.NewBahasaPemrogramanResponse(m), "Bahasa pemrograman berhasil dibuat")
}

// PUT /api/bahasa-pemrograman/:id
func (h *BahasaPemrogramanController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req bahasaDTO.UpdateBahasaPemrogramanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m bahasaModel.BahasaPemrogramanModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bahasa pemrograman tidak ditemukan")
		}
		log.Printf("[ERROR] find bahasa pemrograman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui bahasa pemrograman")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		// rename ke nama yang sudah dipakai bahasa lain → tolak
		if req.Nama != nil {
			var cnt int64
			if err := tx.Model(&bahasaModel.BahasaPemrogramanModel{}).
				Where("nama = ? AND id <> ?", strings.TrimSpace(*req.Nama), id).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Bahasa pemrograman dengan nama tersebut sudah ada")
			}
		}
		req.ApplyToModel(&m)
		return tx.Save(&m).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] update bahasa pemrograman: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui bahasa pemrograman")
	}

	return helper.SuccessWithMessage(c, bahasaDTO.NewBahasaPemrogramanResponse(&m), "Bahasa pemrograman berhasil diperbarui")
}

// DELETE /api/bahasa-pemrograman/:id
func (h *BahasaPemrogramanController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m bahasaModel.BahasaPemrogramanModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Bahasa pemrograman tidak ditemukan")
		}
		log.Printf("[ERROR] find bahasa pemrograman: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus bahasa pemrograman")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&aplikasiModel.AplikasiModel{}).
			Where("id_bahasa = ?", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tidak dapat menghapus bahasa pemrograman yang digunakan oleh aplikasi")
		}
		return tx.Delete(&bahasaModel.BahasaPemrogramanModel{}, "id = ?", id).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] delete bahasa pemrograman: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus bahasa pemrograman")
	}

	return helper.SuccessWithMessage(c, nil, "Bahasa pemrograman berhasil dihapus")
}
