// internals/features/perangkat_daerah/dto/perangkat_daerah_dto.go
package dto

import (
	"time"

	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
)

/* ===================== REQUESTS ===================== */

type CreatePerangkatDaerahRequest struct {
	Nama        string  `json:"nama" validate:"required,min=1,max=255"`
	Jenis       *string `json:"jenis" validate:"omitempty,max=100"`
	Alamat      *string `json:"alamat" validate:"omitempty"`
	KepalaDinas *string `json:"kepalaDinas" validate:"omitempty,max=255"`
}

func (r *CreatePerangkatDaerahRequest) ToModel() *pdModel.PerangkatDaerahModel {
	return &pdModel.PerangkatDaerahModel{
		Nama:        r.Nama,
		Jenis:       r.Jenis,
		Alamat:      r.Alamat,
		KepalaDinas: r.KepalaDinas,
	}
}

// Varian partial-update: semua field opsional, aturan per field sama dengan create.
type UpdatePerangkatDaerahRequest struct {
	Nama        *string `json:"nama" validate:"omitempty,min=1,max=255"`
	Jenis       *string `json:"jenis" validate:"omitempty,max=100"`
	Alamat      *string `json:"alamat" validate:"omitempty"`
	KepalaDinas *string `json:"kepalaDinas" validate:"omitempty,max=255"`
}

func (r *UpdatePerangkatDaerahRequest) ApplyToModel(m *pdModel.PerangkatDaerahModel) {
	if r.Nama != nil {
		m.Nama = *r.Nama
	}
	if r.Jenis != nil {
		m.Jenis = r.Jenis
	}
	if r.Alamat != nil {
		m.Alamat = r.Alamat
	}
	if r.KepalaDinas != nil {
		m.KepalaDinas = r.KepalaDinas
	}
	m.UpdatedAt = time.Now()
}

/* ===================== RESPONSES ===================== */

type PerangkatDaerahResponse struct {
	ID          uint      `json:"id"`
	Nama        string    `json:"nama"`
	Jenis       *string   `json:"jenis"`
	Alamat      *string   `json:"alamat"`
	KepalaDinas *string   `json:"kepalaDinas"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewPerangkatDaerahResponse(m *pdModel.PerangkatDaerahModel) *PerangkatDaerahResponse {
	if m == nil {
		return nil
	}
	return &PerangkatDaerahResponse{
		ID:          m.ID,
		Nama:        m.Nama,
		Jenis:       m.Jenis,
		Alamat:      m.Alamat,
		KepalaDinas: m.KepalaDinas,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// Detail membawa jumlah aplikasi milik perangkat daerah tsb.
type PerangkatDaerahDetailResponse struct {
	PerangkatDaerahResponse
	AplikasiCount int64 `json:"aplikasiCount"`
}
