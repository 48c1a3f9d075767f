// internals/features/dashboard/dto/dashboard_dto.go
package dto

import "time"

// Agregat ringkas untuk halaman dashboard.
type DashboardSummary struct {
	TotalAplikasi                int64 `json:"totalAplikasi"`
	TotalPerangkatDaerah         int64 `json:"totalPerangkatDaerah"`
	TotalPerangkatDaerahWithApps int64 `json:"totalPerangkatDaerahWithApps"`
	TotalPic                     int64 `json:"totalPic"`
	TotalVendor                  int64 `json:"totalVendor"`
	TotalBahasaPemrograman       int64 `json:"totalBahasaPemrograman"`
	TotalFramework               int64 `json:"totalFramework"`
	TotalAnggaran                int64 `json:"totalAnggaran"`
}

type StatusCount struct {
	Status     string `json:"status"`
	Count      int64  `json:"count"`
	Percentage int    `json:"percentage"`
}

type PlatformCount struct {
	Platform   string `json:"platform"`
	Count      int64  `json:"count"`
	Percentage int    `json:"percentage"`
}

type TopPerangkatDaerah struct {
	ID            uint    `json:"id"`
	Nama          string  `json:"nama"`
	Jenis         *string `json:"jenis"`
	AplikasiCount int64   `json:"aplikasiCount"`
}

type PopularItem struct {
	ID    uint   `json:"id"`
	Nama  string `json:"nama"`
	Count int64  `json:"count"`
}

// PerangkatDaerah diisi placeholder "Tidak ditemukan" bila aplikasi
// belum terikat ke perangkat daerah mana pun.
type RecentAplikasi struct {
	ID              uint      `json:"id"`
	Nama            string    `json:"nama"`
	Status          *string   `json:"status"`
	Platform        *string   `json:"platform"`
	CreatedAt       time.Time `json:"createdAt"`
	PerangkatDaerah string    `json:"perangkatDaerah"`
}

type DashboardStatsResponse struct {
	Summary            DashboardSummary     `json:"summary"`
	AplikasiByStatus   []StatusCount        `json:"aplikasiByStatus"`
	AplikasiByPlatform []PlatformCount      `json:"aplikasiByPlatform"`
	TopPerangkatDaerah []TopPerangkatDaerah `json:"topPerangkatDaerah"`
	PopularBahasa      []PopularItem        `json:"popularBahasa"`
	PopularFramework   []PopularItem        `json:"popularFramework"`
	RecentAplikasi     []RecentAplikasi     `json:"recentAplikasi"`
}
