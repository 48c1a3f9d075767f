// internals/features/aplikasi/dto/aplikasi_dto.go
package dto

import (
	"strings"
	"time"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	pdDTO "inventaris_backend/internals/features/perangkat_daerah/dto"
	picModel "inventaris_backend/internals/features/pic/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
)

/* ===================== REQUESTS ===================== */

type CreateAplikasiRequest struct {
	Nama              string  `json:"nama" validate:"required,min=1,max=255"`
	Deskripsi         *string `json:"deskripsi" validate:"omitempty"`
	Status            *string `json:"status" validate:"omitempty,oneof=aktif 'tidak aktif' pengembangan maintenance"`
	Platform          *string `json:"platform" validate:"omitempty,oneof=web mobile desktop hybrid"`
	URLAplikasi       *string `json:"urlAplikasi" validate:"omitempty,url"`
	TahunDibuat       *int    `json:"tahunDibuat" validate:"omitempty,min=1990"`
	Anggaran          *int64  `json:"anggaran" validate:"omitempty,min=0"`
	IDPerangkatDaerah *uint   `json:"idPerangkatDaerah" validate:"omitempty,min=1"`
	IDBahasa          *uint   `json:"idBahasa" validate:"omitempty,min=1"`
	IDFramework       *uint   `json:"idFramework" validate:"omitempty,min=1"`
}

func (r *CreateAplikasiRequest) ToModel() *aplikasiModel.AplikasiModel {
	return &aplikasiModel.AplikasiModel{
		Nama:              strings.TrimSpace(r.Nama),
		Deskripsi:         r.Deskripsi,
		Status:            r.Status,
		Platform:          r.Platform,
		URLAplikasi:       r.URLAplikasi,
		TahunDibuat:       r.TahunDibuat,
		Anggaran:          r.Anggaran,
		IDPerangkatDaerah: r.IDPerangkatDaerah,
		IDBahasa:          r.IDBahasa,
		IDFramework:       r.IDFramework,
	}
}

type UpdateAplikasiRequest struct {
	Nama              *string `json:"nama" validate:"omitempty,min=1,max=255"`
	Deskripsi         *string `json:"deskripsi" validate:"omitempty"`
	Status            *string `json:"status" validate:"omitempty,oneof=aktif 'tidak aktif' pengembangan maintenance"`
	Platform          *string `json:"platform" validate:"omitempty,oneof=web mobile desktop hybrid"`
	URLAplikasi       *string `json:"urlAplikasi" validate:"omitempty,url"`
	TahunDibuat       *int    `json:"tahunDibuat" validate:"omitempty,min=1990"`
	Anggaran          *int64  `json:"anggaran" validate:"omitempty,min=0"`
	IDPerangkatDaerah *uint   `json:"idPerangkatDaerah" validate:"omitempty,min=1"`
	IDBahasa          *uint   `json:"idBahasa" validate:"omitempty,min=1"`
	IDFramework       *uint   `json:"idFramework" validate:"omitempty,min=1"`
}

func (r *UpdateAplikasiRequest) ApplyToModel(m *aplikasiModel.AplikasiModel) {
	if r.Nama != nil {
		m.Nama = strings.TrimSpace(*r.Nama)
	}
	if r.Deskripsi != nil {
		m.Deskripsi = r.Deskripsi
	}
	if r.Status != nil {
		m.Status = r.Status
	}
	if r.Platform != nil {
		m.Platform = r.Platform
	}
	if r.URLAplikasi != nil {
		m.URLAplikasi = r.URLAplikasi
	}
	if r.TahunDibuat != nil {
		m.TahunDibuat = r.TahunDibuat
	}
	if r.Anggaran != nil {
		m.Anggaran = r.Anggaran
	}
	if r.IDPerangkatDaerah != nil {
		m.IDPerangkatDaerah = r.IDPerangkatDaerah
	}
	if r.IDBahasa != nil {
		m.IDBahasa = r.IDBahasa
	}
	if r.IDFramework != nil {
		m.IDFramework = r.IDFramework
	}
	m.UpdatedAt = time.Now()
}

/* ===================== RESPONSES ===================== */

// Ringkasan relasi untuk baris list.
type PerangkatDaerahBrief struct {
	ID    uint    `json:"id"`
	Nama  string  `json:"nama"`
	Jenis *string `json:"jenis"`
}

type BahasaPemrogramanBrief struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

type FrameworkBrief struct {
	ID   uint   `json:"id"`
	Nama string `json:"nama"`
}

type PicBrief struct {
	ID      uint    `json:"id"`
	Nama    string  `json:"nama"`
	Jabatan *string `json:"jabatan"`
	Kontak  *string `json:"kontak"`
}

type VendorBrief struct {
	ID         uint    `json:"id"`
	NamaVendor string  `json:"namaVendor"`
	Kontak     *string `json:"kontak"`
}

type AplikasiResponse struct {
	ID                uint    `json:"id"`
	Nama              string  `json:"nama"`
	Deskripsi         *string `json:"deskripsi"`
	Status            *string `json:"status"`
	Platform          *string `json:"platform"`
	URLAplikasi       *string `json:"urlAplikasi"`
	TahunDibuat       *int    `json:"tahunDibuat"`
	Anggaran          *int64  `json:"anggaran"`
	IDPerangkatDaerah *uint   `json:"idPerangkatDaerah"`
	IDBahasa          *uint   `json:"idBahasa"`
	IDFramework       *uint   `json:"idFramework"`

	PerangkatDaerah   *PerangkatDaerahBrief   `json:"perangkatDaerah"`
	BahasaPemrograman *BahasaPemrogramanBrief `json:"bahasaPemrograman"`
	Framework         *FrameworkBrief         `json:"framework"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewAplikasiResponse(m *aplikasiModel.AplikasiModel) *AplikasiResponse {
	if m == nil {
		return nil
	}
	resp := &AplikasiResponse{
		ID:                m.ID,
		Nama:              m.Nama,
		Deskripsi:         m.Deskripsi,
		Status:            m.Status,
		Platform:          m.Platform,
		URLAplikasi:       m.URLAplikasi,
		TahunDibuat:       m.TahunDibuat,
		Anggaran:          m.Anggaran,
		IDPerangkatDaerah: m.IDPerangkatDaerah,
		IDBahasa:          m.IDBahasa,
		IDFramework:       m.IDFramework,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.PerangkatDaerah != nil {
		resp.PerangkatDaerah = &PerangkatDaerahBrief{
			ID:    m.PerangkatDaerah.ID,
			Nama:  m.PerangkatDaerah.Nama,
			Jenis: m.PerangkatDaerah.Jenis,
		}
	}
	if m.BahasaPemrograman != nil {
		resp.BahasaPemrograman = &BahasaPemrogramanBrief{
			ID:   m.BahasaPemrograman.ID,
			Nama: m.BahasaPemrograman.Nama,
		}
	}
	if m.Framework != nil {
		resp.Framework = &FrameworkBrief{
			ID:   m.Framework.ID,
			Nama: m.Framework.Nama,
		}
	}
	return resp
}

// Detail membawa perangkat daerah lengkap (termasuk alamat dan kepala
// dinas) plus daftar PIC dan vendor.
type AplikasiDetailResponse struct {
	ID                uint    `json:"id"`
	Nama              string  `json:"nama"`
	Deskripsi         *string `json:"deskripsi"`
	Status            *string `json:"status"`
	Platform          *string `json:"platform"`
	URLAplikasi       *string `json:"urlAplikasi"`
	TahunDibuat       *int    `json:"tahunDibuat"`
	Anggaran          *int64  `json:"anggaran"`
	IDPerangkatDaerah *uint   `json:"idPerangkatDaerah"`
	IDBahasa          *uint   `json:"idBahasa"`
	IDFramework       *uint   `json:"idFramework"`

	PerangkatDaerah   *pdDTO.PerangkatDaerahResponse `json:"perangkatDaerah"`
	BahasaPemrograman *BahasaPemrogramanBrief        `json:"bahasaPemrograman"`
	Framework         *FrameworkBrief                `json:"framework"`
	Pic               []PicBrief                     `json:"pic"`
	Vendors           []VendorBrief                  `json:"vendors"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewAplikasiDetailResponse(m *aplikasiModel.AplikasiModel, pics []picModel.PicModel, vendors []vendorModel.VendorModel) *AplikasiDetailResponse {
	resp := &AplikasiDetailResponse{
		ID:                m.ID,
		Nama:              m.Nama,
		Deskripsi:         m.Deskripsi,
		Status:            m.Status,
		Platform:          m.Platform,
		URLAplikasi:       m.URLAplikasi,
		TahunDibuat:       m.TahunDibuat,
		Anggaran:          m.Anggaran,
		IDPerangkatDaerah: m.IDPerangkatDaerah,
		IDBahasa:          m.IDBahasa,
		IDFramework:       m.IDFramework,
		Pic:               make([]PicBrief, 0, len(pics)),
		Vendors:           make([]VendorBrief, 0, len(vendors)),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.PerangkatDaerah != nil {
		resp.PerangkatDaerah = pdDTO.NewPerangkatDaerahResponse(m.PerangkatDaerah)
	}
	if m.BahasaPemrograman != nil {
		resp.BahasaPemrograman = &BahasaPemrogramanBrief{
			ID:   m.BahasaPemrograman.ID,
			Nama: m.BahasaPemrograman.Nama,
		}
	}
	if m.Framework != nil {
		resp.Framework = &FrameworkBrief{
			ID:   m.Framework.ID,
			Nama: m.Framework.Nama,
		}
	}
	for i := range pics {
		resp.Pic = append(resp.Pic, PicBrief{
			ID:      pics[i].ID,
			Nama:    pics[i].Nama,
			Jabatan: pics[i].Jabatan,
			Kontak:  pics[i].Kontak,
		})
	}
	for i := range vendors {
		resp.Vendors = append(resp.Vendors, VendorBrief{
			ID:         vendors[i].ID,
			NamaVendor: vendors[i].NamaVendor,
			Kontak:     vendors[i].Kontak,
		})
	}
	return resp
}
