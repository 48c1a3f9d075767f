// internals/features/perangkat_daerah/model/perangkat_daerah_model.go
package model

import (
	"time"
)

type PerangkatDaerahModel struct {
	// PK
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	// Identitas
	Nama        string  `gorm:"type:varchar(255);not null;column:nama;index:perangkat_daerah_nama_idx" json:"nama"`
	Jenis       *string `gorm:"type:varchar(100);column:jenis" json:"jenis"`
	Alamat      *string `gorm:"type:text;column:alamat" json:"alamat"`
	KepalaDinas *string `gorm:"type:varchar(255);column:kepala_dinas" json:"kepalaDinas"`

	// Audit
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (PerangkatDaerahModel) TableName() string { return "perangkat_daerah" }
