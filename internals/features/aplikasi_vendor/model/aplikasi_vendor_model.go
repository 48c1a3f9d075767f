// internals/features/aplikasi_vendor/model/aplikasi_vendor_model.go
package model

import (
	"time"

	aplikasiModel "inventaris_backend/internals/features/aplikasi/model"
	vendorModel "inventaris_backend/internals/features/vendors/model"
)

// Tabel penghubung aplikasi ↔ vendor.
// Pasangan (id_aplikasi, id_vendor) harus unik.
type AplikasiVendorModel struct {
	ID uint `gorm:"primaryKey;column:id" json:"id"`

	IDAplikasi uint `gorm:"not null;column:id_aplikasi;uniqueIndex:aplikasi_vendor_unique_idx" json:"idAplikasi"`
	IDVendor   uint `gorm:"not null;column:id_vendor;uniqueIndex:aplikasi_vendor_unique_idx" json:"idVendor"`

	Aplikasi *aplikasiModel.AplikasiModel `gorm:"foreignKey:IDAplikasi;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Vendor   *vendorModel.VendorModel     `gorm:"foreignKey:IDVendor;references:ID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (AplikasiVendorModel) TableName() string { return "aplikasi_vendor" }
