// internals/features/pic/dto/pic_dto.go
package dto

import (
	"strings"
	"time"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	picModel "inventaris_backend/internals/features/pic/model"
)

/* ===================== REQUESTS ===================== */

type CreatePicRequest struct {
	Nama       string  `json:"nama" validate:"required,min=1,max=255"`
	Jabatan    *string `json:"jabatan" validate:"omitempty,max=255"`
	Kontak     *string `json:"kontak" validate:"omitempty,max=100"`
	IDAplikasi uint    `json:"idAplikasi" validate:"required,min=1"`
}

func (r *CreatePicRequest) ToModel() *picModel.PicModel {
	return &picModel.PicModel{
		Nama:       strings.TrimSpace(r.Nama),
		Jabatan:    r.Jabatan,
		Kontak:     r.Kontak,
		IDAplikasi: r.IDAplikasi,
	}
}

type UpdatePicRequest struct {
	Nama       *string `json:"nama" validate:"omitempty,min=1,max=255"`
	Jabatan    *string `json:"jabatan" validate:"omitempty,max=255"`
	Kontak     *string `json:"kontak" validate:"omitempty,max=100"`
	IDAplikasi *uint   `json:"idAplikasi" validate:"omitempty,min=1"`
}

func (r *UpdatePicRequest) ApplyToModel(m *picModel.PicModel) {
	if r.Nama != nil {
		m.Nama = strings.TrimSpace(*r.Nama)
	}
	if r.Jabatan != nil {
		m.Jabatan = r.Jabatan
	}
	if r.Kontak != nil {
		m.Kontak = r.Kontak
	}
	if r.IDAplikasi != nil {
		m.IDAplikasi = *r.IDAplikasi
	}
	m.UpdatedAt = time.Now()
}

/* ===================== RESPONSES ===================== */

// Ringkasan aplikasi yang ditempel di baris PIC.
type AplikasiBrief struct {
	ID     uint    `json:"id"`
	Nama   string  `json:"nama"`
	Status *string `json:"status"`
}

// Versi detail ikut membawa platform.
type AplikasiDetailBrief struct {
	ID       uint    `json:"id"`
	Nama     string  `json:"nama"`
	Status   *string `json:"status"`
	Platform *string `json:"platform"`
}

type PicResponse struct {
	ID         uint           `json:"id"`
	Nama       string         `json:"nama"`
	Jabatan    *string        `json:"jabatan"`
	Kontak     *string        `json:"kontak"`
	IDAplikasi uint           `json:"idAplikasi"`
	Aplikasi   *AplikasiBrief `json:"aplikasi"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

func NewPicResponse(m *picModel.PicModel) *PicResponse {
	if m == nil {
		return nil
	}
	resp := &PicResponse{
		ID:         m.ID,
		Nama:       m.Nama,
		Jabatan:    m.Jabatan,
		Kontak:     m.Kontak,
		IDAplikasi: m.IDAplikasi,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Aplikasi != nil {
		resp.Aplikasi = &AplikasiBrief{
			ID:     m.Aplikasi.ID,
			Nama:   m.Aplikasi.Nama,
			Status: m.Aplikasi.Status,
		}
	}
	return resp
}

type PicDetailResponse struct {
	ID         uint                 `json:"id"`
	Nama       string               `json:"nama"`
	Jabatan    *string              `json:"jabatan"`
	Kontak     *string              `json:"kontak"`
	IDAplikasi uint                 `json:"idAplikasi"`
	Aplikasi   *AplikasiDetailBrief `json:"aplikasi"`
	CreatedAt  time.Time            `json:"createdAt"`
	UpdatedAt  time.Time            `json:"updatedAt"`
}

func NewPicDetailResponse(m *picModel.PicModel) *PicDetailResponse {
	if m == nil {
		return nil
	}
	resp := &PicDetailResponse{
		ID:         m.ID,
		Nama:       m.Nama,
		Jabatan:    m.Jabatan,
		Kontak:     m.Kontak,
		IDAplikasi: m.IDAplikasi,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.Aplikasi != nil {
		resp.Aplikasi = newAplikasiDetailBrief(m.Aplikasi)
	}
	return resp
}

func newAplikasiDetailBrief(a *aplikasiModel.AplikasiModel) *AplikasiDetailBrief {
	return &AplikasiDetailBrief{
		ID:       a.ID,
		Nama:     a.Nama,
		Status:   a.Status,
		Platform: a.Platform,
	}
}
