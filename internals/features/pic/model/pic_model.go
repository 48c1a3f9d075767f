// internals/features/pic/model/pic_model.go
package model

import (
	"time"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
)

type PicModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	Nama    string  `gorm:"type:varchar(255);not null;column:nama;index:pic_nama_idx" json:"nama"`
	Jabatan *string `gorm:"type:varchar(255);column:jabatan" json:"jabatan"`
	Kontak  *string `gorm:"type:varchar(100);column:kontak" json:"kontak"`

	// Relasi wajib; aplikasi dihapus → PIC ikut terhapus
	IDAplikasi uint                         `gorm:"not null;column:id_aplikasi;index:pic_aplikasi_idx" json:"idAplikasi"`
	Aplikasi   *aplikasiModel.AplikasiModel `gorm:"foreignKey:IDAplikasi;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (PicModel) TableName() string { return "pic" }
