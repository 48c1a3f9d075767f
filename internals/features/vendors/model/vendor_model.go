// internals/features/vendor/model/vendor_model.go
package model

import (
	"time"
)

type VendorModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	NamaVendor string  `gorm:"type:varchar(255);not null;column:nama_vendor;index:vendor_nama_vendor_idx" json:"namaVendor"`
	Kontak     *string `gorm:"type:varchar(100);column:kontak" json:"kontak"`
	Alamat     *string `gorm:"type:text;column:alamat" json:"alamat"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (VendorModel) TableName() string { return "vendor" }
