// internals/features/pic/controller/pic_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	picDTO "inventaris_backend/internals/features/pic/dto"
	picModel "inventaris_backend/internals/features/pic/model"
	helper "inventaris_backend/internals/helpers"
)

type PicController struct {
	DB *gorm.DB
}

func NewPicController(db *gorm.DB) *PicController {
	return &PicController{DB: db}
}

var sortColumns = map[string]string{
	"createdAt": "pic.created_at",
	"updatedAt": "pic.updated_at",
	"nama":      "pic.nama",
	"jabatan":   "pic.jabatan",
}

/* ===================== HANDLERS ===================== */

// GET /api/pic
// Default urut nama, pencarian ikut menjangkau nama aplikasinya.
func (h *PicController) List(c *fiber.Ctx) error {
	p := helper.ResolveListParams(c, "nama")

	applyFilters := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&picModel.PicModel{}).
			Joins("LEFT JOIN aplikasi ON aplikasi.id = pic.id_aplikasi")
		if p.Search != "" {
			pat := p.LikePattern()
			q = q.Where(
				"LOWER(pic.nama) LIKE ? OR LOWER(pic.jabatan) LIKE ? OR LOWER(aplikasi.nama) LIKE ?",
				pat, pat, pat,
			)
		}
		return q
	}

	var total int64
	if err := applyFilters(h.DB).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count pic: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data PIC")
	}

	var rows []picModel.PicModel
	if err := applyFilters(h.DB).
		Preload("Aplikasi").
		Order(p.OrderClause(sortColumns, "nama")).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list pic: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data PIC")
	}

	items := make([]*picDTO.PicResponse, 0, len(rows))
	for i := range rows {
		items = append(items, picDTO.NewPicResponse(&rows[i]))
	}

	return helper.Success(c, fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
	})
}

// GET /api/pic/:id
func (h *PicController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m picModel.PicModel
	if err := h.DB.
		Preload("Aplikasi").
		First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "PIC tidak ditemukan")
		}
		log.Printf("[ERROR] detail pic: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data PIC")
	}

	return helper.Success(c, picDTO.NewPicDetailResponse(&m))
}

// POST /api/pic
func (h *PicController) Create(c *fiber.Ctx) error {
	var req picDTO.CreatePicRequest
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
		return tx.Create(m).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] create pic: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat PIC")
	}

	if err := h.DB.Preload("Aplikasi").First(m, "id = ?", m.ID).Error; err != nil {
		log.Printf("[ERROR] reload pic: %v", err)
	}

	return helper.SuccessWithMessage(c, picDTO.NewPicResponse(m), "PIC berhasil dibuat")
}

// PUT /api/pic/:id
func (h *PicController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req picDTO.UpdatePicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m picModel.PicModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "PIC tidak ditemukan")
		}
		log.Printf("[ERROR] find pic: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui PIC")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.IDAplikasi != nil {
			var cnt int64
			if err := tx.Model(&aplikasiModel.AplikasiModel{}).Where("id = ?", *req.IDAplikasi).Count(&cnt).Error; err != nil {
				return err
			}
			if cnt == 0 {
				return fiber.NewError(fiber.StatusBadRequest, "Aplikasi tidak ditemukan")
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
		log.Printf("[ERROR] update pic: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui PIC")
	}

	if err := h.DB.Preload("Aplikasi").First(&m, "id = ?", m.ID).Error; err != nil {
		log.Printf("[ERROR] reload pic: %v", err)
	}

	return helper.SuccessWithMessage(c, picDTO.NewPicResponse(&m), "PIC berhasil diperbarui")
}

// DELETE /api/pic/:id
func (h *PicController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m picModel.PicModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "PIC tidak ditemukan")
		}
		log.Printf("[ERROR] find pic: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus PIC")
	}

	if err := h.DB.Delete(&picModel.PicModel{}, "id = ?", id).Error; err != nil {
		log.Printf("[ERROR] delete pic: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus PIC")
	}

	return helper.SuccessWithMessage(c, nil, "PIC berhasil dihapus")
}
