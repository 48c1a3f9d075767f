// internals/features/aplikasi_vendor/dto/aplikasi_vendor_dto.go
package dto

import (
	"time"

	avModel "inventaris_backend/internals/features/aplikasi_vendor/model"
)

/* ===================== REQUESTS ===================== */

type CreateAplikasiVendorRequest struct {
	IDAplikasi uint `json:"idAplikasi" validate:"required,min=1"`
	IDVendor   uint `json:"idVendor" validate:"required,min=1"`
}

func (r *CreateAplikasiVendorRequest) ToModel() *avModel.AplikasiVendorModel {
	return &avModel.AplikasiVendorModel{
		IDAplikasi: r.IDAplikasi,
		IDVendor:   r.IDVendor,
	}
}

/* ===================== RESPONSES ===================== */

type AplikasiVendorAplikasiBrief struct {
	ID       uint    `json:"id"`
	Nama     string  `json:"nama"`
	Status   *string `json:"status"`
	Platform *string `json:"platform"`
}

type AplikasiVendorVendorBrief struct {
	ID         uint    `json:"id"`
	NamaVendor string  `json:"namaVendor"`
	Kontak     *string `json:"kontak"`
}

type AplikasiVendorResponse struct {
	ID         uint                         `json:"id"`
	IDAplikasi uint                         `json:"idAplikasi"`
	IDVendor   uint                         `json:"idVendor"`
	Aplikasi   *AplikasiVendorAplikasiBrief `json:"aplikasi"`
	Vendor     *AplikasiVendorVendorBrief   `json:"vendor"`
	CreatedAt  time.Time                    `json:"createdAt"`
}

func NewAplikasiVendorResponse(m *avModel.AplikasiVendorModel) *AplikasiVendorResponse {
	if m == nil {
		return nil
	}
	resp := &AplikasiVendorResponse{
		ID:         m.ID,
		IDAplikasi: m.IDAplikasi,
		IDVendor:   m.IDVendor,
		CreatedAt:  m.CreatedAt,
	}
	if m.Aplikasi != nil {
		resp.Aplikasi = &AplikasiVendorAplikasiBrief{
			ID:       m.Aplikasi.ID,
			Nama:     m.Aplikasi.Nama,
			Status:   m.Aplikasi.Status,
			Platform: m.Aplikasi.Platform,
		}
	}
	if m.Vendor != nil {
		resp.Vendor = &AplikasiVendorVendorBrief{
			ID:         m.Vendor.ID,
			NamaVendor: m.Vendor.NamaVendor,
			Kontak:     m.Vendor.Kontak,
		}
	}
	return resp
}
