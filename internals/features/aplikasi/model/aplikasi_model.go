// internals/features/aplikasi/model/aplikasi_model.go
package model

import (
	"time"

	bahasaModel "inventaris_backend/internals/features/bahasa_pemrograman/model"
	frameworkModel "inventaris_backend/internals/features/framework/model"
	pdModel "inventaris_backend/internals/features/perangkat_daerah/model"
)

/*
Status aplikasi (sesuai data di DB):
- "aktif"
- "tidak aktif"
- "pengembangan"
- "maintenance"
*/
const (
	StatusAktif        = "aktif"
	StatusTidakAktif   = "tidak aktif"
	StatusPengembangan = "pengembangan"
	StatusMaintenance  = "maintenance"
)

/*
Platform aplikasi:
- "web" | "mobile" | "desktop" | "hybrid"
*/
const (
	PlatformWeb     = "web"
	PlatformMobile  = "mobile"
	PlatformDesktop = "desktop"
	PlatformHybrid  = "hybrid"
)

type AplikasiModel struct {
	// PK
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	// Identitas
	Nama      string  `gorm:"type:varchar(255);not null;column:nama;index:aplikasi_nama_idx" json:"nama"`
	Deskripsi *string `gorm:"type:text;column:deskripsi" json:"deskripsi"`
	Status    *string `gorm:"type:varchar(50);column:status;index:aplikasi_status_idx" json:"status"`
	Platform  *string `gorm:"type:varchar(50);column:platform" json:"platform"`

	// Teknis
	URLAplikasi *string `gorm:"type:text;column:url_aplikasi" json:"urlAplikasi"`
	TahunDibuat *int    `gorm:"column:tahun_dibuat" json:"tahunDibuat"`
	Anggaran    *int64  `gorm:"type:bigint;column:anggaran" json:"anggaran"`

	// Relasi (nullable; referent dihapus → FK di-NULL-kan, bukan cascade)
	IDPerangkatDaerah *uint `gorm:"column:id_perangkat_daerah;index:aplikasi_perangkat_daerah_idx" json:"idPerangkatDaerah"`
	IDBahasa          *uint `gorm:"column:id_bahasa" json:"idBahasa"`
	IDFramework       *uint `gorm:"column:id_framework" json:"idFramework"`

	PerangkatDaerah   *pdModel.PerangkatDaerahModel       `gorm:"foreignKey:IDPerangkatDaerah;references:ID;constraint:OnDelete:SET NULL" json:"-"`
	BahasaPemrograman *bahasaModel.BahasaPemrogramanModel `gorm:"foreignKey:IDBahasa;references:ID;constraint:OnDelete:SET NULL" json:"-"`
	Framework         *frameworkModel.FrameworkModel      `gorm:"foreignKey:IDFramework;references:ID;constraint:OnDelete:SET NULL" json:"-"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (AplikasiModel) TableName() string { return "aplikasi" }
