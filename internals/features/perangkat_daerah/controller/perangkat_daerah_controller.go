// internals/features/perangkat_daerah/controller/perangkat_daerah_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	pdDTO "inventaris_backend/internals/features/perangkat_daerah/dto"
	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
	helper "inventaris_backend/internals/helpers"
)

type PerangkatDaerahController struct {
	DB *gorm.DB
}

func NewPerangkatDaerahController(db *gorm.DB) *PerangkatDaerahController {
	return &PerangkatDaerahController{DB: db}
}

// whitelist kolom sort (key query → kolom DB)
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"nama":      "nama",
	"jenis":     "jenis",
}

/* ===================== HANDLERS ===================== */

// GET /api/perangkat-daerah
func (h *PerangkatDaerahController) List(c *fiber.Ctx) error {
	p := helper.ResolveListParams(c, "createdAt")

	applyFilters := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&pdModel.PerangkatDaerahModel{})
		if p.Search != "" {
			pat := p.LikePattern()
			q = q.Where("LOWER(nama) LIKE ? OR LOWER(jenis) LIKE ?", pat, pat)
		}
		return q
	}

	var total int64
	if err := applyFilters(h.DB).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data perangkat daerah")
	}

	var rows []pdModel.PerangkatDaerahModel
	if err := applyFilters(h.DB).
		Order(p.OrderClause(sortColumns, "createdAt")).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data perangkat daerah")
	}

	items := make([]*pdDTO.PerangkatDaerahResponse, 0, len(rows))
	for i := range rows {
		items = append(items, pdDTO.NewPerangkatDaerahResponse(&rows[i]))
	}

	return helper.Success(c, fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
	})
}

// GET /api/perangkat-daerah/:id
func (h *PerangkatDaerahController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m pdModel.PerangkatDaerahModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perangkat daerah tidak ditemukan")
		}
		log.Printf("[ERROR] detail perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data perangkat daerah")
	}

	var aplikasiCount int64
	if err := h.DB.Model(&aplikasiModel.AplikasiModel{}).
		Where("id_perangkat_daerah = ?", id).
		Count(&aplikasiCount).Error; err != nil {
		log.Printf("[ERROR] count aplikasi perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data perangkat daerah")
	}

	return helper.Success(c, &pdDTO.PerangkatDaerahDetailResponse{
		PerangkatDaerahResponse: *pdDTO.NewPerangkatDaerahResponse(&m),
		AplikasiCount:           aplikasiCount,
	})
}

// POST /api/perangkat-daerah
func (h *PerangkatDaerahController) Create(c *fiber.Ctx) error {
	var req pdDTO.CreatePerangkatDaerahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Nama = strings.TrimSpace(req.Nama)

	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat perangkat daerah")
	}

	return helper.SuccessWithMessage(c, pdDTO.NewPerangkatDaerahResponse(m), "Perangkat daerah berhasil dibuat")
}

// PUT /api/perangkat-daerah/:id
func (h *PerangkatDaerahController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req pdDTO.UpdatePerangkatDaerahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m pdModel.PerangkatDaerahModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perangkat daerah tidak ditemukan")
		}
		log.Printf("[ERROR] find perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui perangkat daerah")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		log.Printf("[ERROR] update perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui perangkat daerah")
	}

	return helper.SuccessWithMessage(c, pdDTO.NewPerangkatDaerahResponse(&m), "Perangkat daerah berhasil diperbarui")
}

// DELETE /api/perangkat-daerah/:id
func (h *PerangkatDaerahController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m pdModel.PerangkatDaerahModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Perangkat daerah tidak ditemukan")
		}
		log.Printf("[ERROR] find perangkat daerah: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus perangkat daerah")
	}

	// Guard + delete dalam satu transaksi supaya tidak ada aplikasi
	// yang menunjuk ke referent di antara cek dan hapus.
	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&aplikasiModel.AplikasiModel{}).
			Where("id_perangkat_daerah = ?", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tidak dapat menghapus perangkat daerah yang memiliki aplikasi terkait")
		}
		return tx.Delete(&pdModel.PerangkatDaerahModel{}, "id = ?", id).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] delete perangkat daerah: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus perangkat daerah")
	}

	return helper.SuccessWithMessage(c, nil, "Perangkat daerah berhasil dihapus")
}
