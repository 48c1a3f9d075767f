// internals/features/bahasa_pemrograman/dto/bahasa_pemrograman_dto.go
package dto

import (
	"strings"
	"time"

	bahasaModel "inventaris_backend/internals/features/bahasa_pemrograman/model"
)

/* ===================== REQUESTS ===================== */

type CreateBahasaPemrogramanRequest struct {
	Nama string `json:"nama" validate:"required,min=1,max=100"`
}

func (r *CreateBahasaPemrogramanRequest) ToModel() *bahasaModel.BahasaPemrogramanModel {
	return &bahasaModel.BahasaPemrogramanModel{
		Nama: strings.TrimSpace(r.Nama),
	}
}

type UpdateBahasaPemrogramanRequest struct {
	Nama *string `json:"nama" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateBahasaPemrogramanRequest) ApplyToModel(m *bahasaModel.BahasaPemrogramanModel) {
	if r.Nama != nil {
		m.Nama = strings.TrimSpace(*r.Nama)
	}
	m.UpdatedAt = time.Now()
}

/* ===================== RESPONSES ===================== */

type BahasaPemrogramanResponse struct {
	ID        uint      `json:"id"`
	Nama      string    `json:"nama"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewBahasaPemrogramanResponse(m *bahasaModel.BahasaPemrogramanModel) *BahasaPemrogramanResponse {
	if m == nil {
		return nil
	}
	return &BahasaPemrogramanResponse{
		ID:        m.ID,
		Nama:      m.Nama,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Detail membawa jumlah aplikasi yang memakai bahasa ini.
type BahasaPemrogramanDetailResponse struct {
	BahasaPemrogramanResponse
	AplikasiCount int64 `json:"aplikasiCount"`
}
