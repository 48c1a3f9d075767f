// internals/features/framework/model/framework_model.go
package model

import (
	"time"
)

type FrameworkModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	// Nama framework (unik global)
	Nama string `gorm:"type:varchar(100);not null;unique;column:nama;index:framework_nama_idx" json:"nama"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (FrameworkModel) TableName() string { return "framework" }
