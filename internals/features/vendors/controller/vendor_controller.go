// internals/features/vendor/controller/vendor_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiVendorModel "inventaris_backend/internals/features/aplikasi_vendor/model"
	vendorDTO "inventaris_backend/internals/features/vendors/dto"
	vendorModel "inventaris_backend/internals/features/vendors/model"
	helper "inventaris_backend/internals/helpers"
)

type VendorController struct {
	DB *gorm.DB
}

func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{DB: db}
}

var sortColumns = map[string]string{
	"createdAt":  "vendor.created_at",
	"updatedAt":  "vendor.updated_at",
	"namaVendor": "vendor.nama_vendor",
}

// Baris hasil join vendor ↔ aplikasi untuk merakit aplikasiList per vendor.
type vendorAplikasiRow struct {
	IDVendor uint
	ID       uint
	Nama     string
	Status   *string
	Platform *string
}

/* ===================== HANDLERS ===================== */

// GET /api/vendor
// Tiap baris membawa jumlah dan daftar nama aplikasinya. Daftar itu
// diambil lewat query kedua lalu dirakit per vendor di sini.
func (h *VendorController) List(c *fiber.Ctx) error {
	p := helper.ResolveListParams(c, "namaVendor")

	// Pencarian juga menjangkau nama aplikasi lewat tabel penghubung.
	// Join bikin baris vendor bisa ganda, jadi count dan halaman
	// sama-sama dideduplikasi lewat vendor.id.
	applyFilters := func(db *gorm.DB) *gorm.DB {
		q := db.Model(&vendorModel.VendorModel{})
		if p.Search != "" {
			pat := p.LikePattern()
			q = q.
				Joins("LEFT JOIN aplikasi_vendor ON aplikasi_vendor.id_vendor = vendor.id").
				Joins("LEFT JOIN aplikasi ON aplikasi.id = aplikasi_vendor.id_aplikasi").
				Where("LOWER(vendor.nama_vendor) LIKE ? OR LOWER(vendor.kontak) LIKE ? OR LOWER(aplikasi.nama) LIKE ?", pat, pat, pat)
		}
		return q
	}

	var total int64
	if err := applyFilters(h.DB).Distinct("vendor.id").Count(&total).Error; err != nil {
		log.Printf("[ERROR] count vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data vendor")
	}

	var rows []vendorModel.VendorModel
	if err := applyFilters(h.DB).
		Group("vendor.id").
		Order(p.OrderClause(sortColumns, "namaVendor")).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data vendor")
	}

	apps, err := h.loadAplikasiByVendor(vendorIDs(rows))
	if err != nil {
		log.Printf("[ERROR] vendor aplikasi list: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data vendor")
	}

	items := make([]*vendorDTO.VendorListItemResponse, 0, len(rows))
	for i := range rows {
		names := make([]string, 0, len(apps[rows[i].ID]))
		for _, a := range apps[rows[i].ID] {
			names = append(names, a.Nama)
		}
		items = append(items, &vendorDTO.VendorListItemResponse{
			VendorResponse: *vendorDTO.NewVendorResponse(&rows[i]),
			AplikasiCount:  int64(len(names)),
			AplikasiList:   names,
		})
	}

	return helper.Success(c, fiber.Map{
		"data":       items,
		"pagination": helper.BuildPagination(total, p.Page, p.Limit),
	})
}

// GET /api/vendor/:id
func (h *VendorController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m vendorModel.VendorModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Vendor tidak ditemukan")
		}
		log.Printf("[ERROR] detail vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data vendor")
	}

	apps, err := h.loadAplikasiByVendor([]uint{id})
	if err != nil {
		log.Printf("[ERROR] vendor aplikasi detail: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data vendor")
	}

	briefs := make([]vendorDTO.VendorAplikasiBrief, 0, len(apps[id]))
	for _, a := range apps[id] {
		briefs = append(briefs, vendorDTO.VendorAplikasiBrief{
			ID:       a.ID,
			Nama:     a.Nama,
			Status:   a.Status,
			Platform: a.Platform,
		})
	}

	return helper.Success(c, &vendorDTO.VendorDetailResponse{
		VendorResponse: *vendorDTO.NewVendorResponse(&m),
		AplikasiCount:  int64(len(briefs)),
		Aplikasi:       briefs,
	})
}

// POST /api/vendor
func (h *VendorController) Create(c *fiber.Ctx) error {
	var req vendorDTO.CreateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat vendor")
	}

	return helper.SuccessWithMessage(c, vendorDTO.NewVendorResponse(m), "Vendor berhasil dibuat")
}

// PUT /api/vendor/:id
func (h *VendorController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req vendorDTO.UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m vendorModel.VendorModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Vendor tidak ditemukan")
		}
		log.Printf("[ERROR] find vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui vendor")
	}

	req.ApplyToModel(&m)
	if err := h.DB.Save(&m).Error; err != nil {
		log.Printf("[ERROR] update vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui vendor")
	}

	return helper.SuccessWithMessage(c, vendorDTO.NewVendorResponse(&m), "Vendor berhasil diperbarui")
}

// DELETE /api/vendor/:id
func (h *VendorController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m vendorModel.VendorModel
	if err := h.DB.First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Vendor tidak ditemukan")
		}
		log.Printf("[ERROR] find vendor: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus vendor")
	}

	txErr := h.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&aplikasiVendorModel.AplikasiVendorModel{}).
			Where("id_vendor = ?", id).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Tidak dapat menghapus vendor yang memiliki aplikasi terkait")
		}
		return tx.Delete(&vendorModel.VendorModel{}, "id = ?", id).Error
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.Error(c, fe.Code, fe.Message)
		}
		log.Printf("[ERROR] delete vendor: %v", txErr)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus vendor")
	}

	return helper.SuccessWithMessage(c, nil, "Vendor berhasil dihapus")
}

/* ===================== INTERNAL ===================== */

func vendorIDs(rows []vendorModel.VendorModel) []uint {
	ids := make([]uint, 0, len(rows))
	for i := range rows {
		ids = append(ids, rows[i].ID)
	}
	return ids
}

// loadAplikasiByVendor mengambil aplikasi milik sekumpulan vendor
// lewat tabel penghubung, dikelompokkan per id vendor.
func (h *VendorController) loadAplikasiByVendor(ids []uint) (map[uint][]vendorAplikasiRow, error) {
	out := make(map[uint][]vendorAplikasiRow, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []vendorAplikasiRow
	err := h.DB.
		Table("aplikasi_vendor").
		Select("aplikasi_vendor.id_vendor AS id_vendor, aplikasi.id AS id, aplikasi.nama AS nama, aplikasi.status AS status, aplikasi.platform AS platform").
		Joins("JOIN aplikasi ON aplikasi.id = aplikasi_vendor.id_aplikasi").
		Where("aplikasi_vendor.id_vendor IN ?", ids).
		Order("aplikasi.nama ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		out[r.IDVendor] = append(out[r.IDVendor], r)
	}
	return out, nil
}
