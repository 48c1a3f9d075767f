// internals/features/framework/controller/framework_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	frameworkDTO "inventaris_backend/internals/features/framework/dto"
	frameworkModel "inventaris_backend/internals/features/framework/model"
	helper "inventaris_backend/internals/helpers"
)

type FrameworkController struct {
	DB *gorm.DB
}

func NewFrameworkController(db *gorm.DB) *FrameworkController {
	return &FrameworkController{DB: db}
}

var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"nama":      "nama",
}

/* ===================== HANDLERS ===================== */

// GET /api/framework
func (h *FrameworkController) List(c *fiber.Ctx) error {
	p := helper.ResolveListParams(c, "createdAt")

	applyFilters := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&frameworkModel.FrameworkModel{})
		if p.Search != "" {
			q = q.Where("LOWER(nama) LIKE ?", p.LikePattern())
		}
		return q
	}

	var total int64
	if err := applyFilters(h.DB).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count framework: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data framework")
	}

	var rows []frameworkModel.FrameworkModel
	if err := applyFilters(h.DB).
		Order(p.OrderClause(sortColumns, "createdAt")).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list framework: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data framework")
	}

	items := make([]*frameworkDTO.FrameworkResponse, 0, len(rows))
	for i := range rows {
		items = append(items, frameworkDTO.NewFrameworkResponse(&rows[i]))
	}

	return helper.Success(c, fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
	})
}

// GET /api/framework/:id
func (h *FrameworkController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m frameworkModel.FrameworkModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Framework tidak ditemukan")
		}
		log.Printf("[ERROR] detail framework: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data framework")
	}

	var aplikasiCount int64
	if err := h.DB.Model(&aplikasiModel.AplikasiModel{}).
		Where("id_framework = ?", id).
		Count(&aplikasiCount).Error; err != nil {
		log.Printf("[ERROR] count aplikasi framework: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data framework")
	}

	return helper.Success(c, &frameworkDTO.FrameworkDetailResponse{
		FrameworkResponse: *frameworkDTO.NewFrameworkResponse(&m),
		AplikasiCount:     aplikasiCount,
	})
}

// POST /api/framework
func (h *FrameworkController) Create(c *fiber.Ctx) error {
	var req frameworkDTO.CreateFrameworkRequest
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
		if err := tx.Model(&frameworkModel.FrameworkModel{}).
			Where("nama = ?", req.Nama).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Framework dengan nama tersebut sudah ada")
		}
		return tx.Create(m).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create framework: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat framework")
	}

	return helper.SuccessWithMessage(c, frameworkDTO.NewFrameworkResponse(m), "Framework berhasil dibuat")
}

// PUT /api/framework/:id
func (h *FrameworkController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req frameworkDTO.UpdateFrameworkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m frameworkModel.FrameworkModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Framework tidak ditemukan")
		}
		log.Printf("[ERROR] find framework: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui framework")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.Nama != nil {
			var cnt int64
			if err := tx.Model(&frameworkModel.FrameworkModel{}).
				Where("nama = ? AND id <> ?", strings.TrimSpace(*req.Nama), id).
				Count(&cnt).Error; err != nil {
				return err
			}
			if cnt > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Framework dengan nama tersebut sudah ada")
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
		log.Printf("[ERROR] update framework: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui framework")
	}

	return helper.SuccessWithMessage(c, frameworkDTO.NewFrameworkResponse(&m), "Framework berhasil diperbarui")
}

// DELETE /api/framework/:id
func (h *FrameworkController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m frameworkModel.FrameworkModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Framework tidak ditemukan")
		}
		log.Printf("[ERROR] find framework: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus framework")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&aplikasiModel.AplikasiModel{}).
			Where("id_framework = ?", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tidak dapat menghapus framework yang digunakan oleh aplikasi")
		}
		return tx.Delete(&frameworkModel.FrameworkModel{}, "id = ?", id).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] delete framework: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus framework")
	}

	return helper.SuccessWithMessage(c, nil, "Framework berhasil dihapus")
}
