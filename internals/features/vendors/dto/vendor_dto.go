// internals/features/vendor/dto/vendor_dto.go
package dto

import (
	"strings"
	"time"

	vendorModel "inventaris_backend/internals/features/vendors/model"
)

/* ===================== REQUESTS ===================== */

type CreateVendorRequest struct {
	NamaVendor string  `json:"namaVendor" validate:"required,min=1,max=255"`
	Kontak     *string `json:"kontak" validate:"omitempty,max=100"`
	Alamat     *string `json:"alamat" validate:"omitempty"`
}

func (r *CreateVendorRequest) ToModel() *vendorModel.VendorModel {
	return &vendorModel.VendorModel{
		NamaVendor: strings.TrimSpace(r.NamaVendor),
		Kontak:     r.Kontak,
		Alamat:     r.Alamat,
	}
}

type UpdateVendorRequest struct {
	NamaVendor *string `json:"namaVendor" validate:"omitempty,min=1,max=255"`
	Kontak     *string `json:"kontak" validate:"omitempty,max=100"`
	Alamat     *string `json:"alamat" validate:"omitempty"`
}

func (r *UpdateVendorRequest) ApplyToModel(m *vendorModel.VendorModel) {
	if r.NamaVendor != nil {
		m.NamaVendor = strings.TrimSpace(*r.NamaVendor)
	}
	if r.Kontak != nil {
		m.Kontak = r.Kontak
	}
	if r.Alamat != nil {
		m.Alamat = r.Alamat
	}
	m.UpdatedAt = time.Now()
}

/* ===================== RESPONSES ===================== */

type VendorResponse struct {
	ID         uint      `json:"id"`
	NamaVendor string    `json:"namaVendor"`
	Kontak     *string   `json:"kontak"`
	Alamat     *string   `json:"alamat"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func NewVendorResponse(m *vendorModel.VendorModel) *VendorResponse {
	if m == nil {
		return nil
	}
	return &VendorResponse{
		ID:         m.ID,
		NamaVendor: m.NamaVendor,
		Kontak:     m.Kontak,
		Alamat:     m.Alamat,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// Baris list membawa jumlah plus nama aplikasi yang digarap vendor.
type VendorListItemResponse struct {
	VendorResponse
	AplikasiCount int64    `json:"aplikasiCount"`
	AplikasiList  []string `json:"aplikasiList"`
}

// Ringkasan aplikasi pada detail vendor.
type VendorAplikasiBrief struct {
	ID       uint    `json:"id"`
	Nama     string  `json:"nama"`
	Status   *string `json:"status"`
	Platform *string `json:"platform"`
}

type VendorDetailResponse struct {
	VendorResponse
	AplikasiCount int64                 `json:"aplikasiCount"`
	Aplikasi      []VendorAplikasiBrief `json:"aplikasi"`
}
