// internals/features/bahasa_pemrograman/model/bahasa_pemrograman_model.go
package model

import (
	"time"
)

type BahasaPemrogramanModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	// Nama bahasa (unik global)
	Nama string `gorm:"type:varchar(100);not null;unique;column:nama;index:bahasa_pemrograman_nama_idx" json:"nama"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (BahasaPemrogramanModel) TableName() string { return "bahasa_pemrograman" }
