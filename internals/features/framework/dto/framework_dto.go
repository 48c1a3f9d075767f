// internals/features/framework/dto/framework_dto.go
package dto

import (
	"strings"
	"time"

	frameworkModel "inventaris_backend/internals/features/framework/model"
)

/* ===================== REQUESTS ===================== */

type CreateFrameworkRequest struct {
	Nama string `json:"nama" validate:"required,min=1,max=100"`
}

func (r *CreateFrameworkRequest) ToModel() *frameworkModel.FrameworkModel {
	return &frameworkModel.FrameworkModel{
		Nama: strings.TrimSpace(r.Nama),
	}
}

type UpdateFrameworkRequest struct {
	Nama *string `json:"nama" validate:"omitempty,min=1,max=100"`
}

func (r *UpdateFrameworkRequest) ApplyToModel(m *frameworkModel.FrameworkModel) {
	if r.Nama != nil {
		m.Nama = strings.TrimSpace(*r.Nama)
	}
	m.UpdatedAt = time.Now()
}

/* ===================== RESPONSES ===================== */

type FrameworkResponse struct {
	ID        uint      `json:"id"`
	Nama      string    `json:"nama"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewFrameworkResponse(m *frameworkModel.FrameworkModel) *FrameworkResponse {
	if m == nil {
		return nil
	}
	return &FrameworkResponse{
		ID:        m.ID,
		Nama:      m.Nama,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Detail membawa jumlah aplikasi yang memakai framework ini.
type FrameworkDetailResponse struct {
	FrameworkResponse
	AplikasiCount int64 `json:"aplikasiCount"`
}
