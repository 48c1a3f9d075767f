// internals/route/routes.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aplikasiRoute "inventaris_backend/internals/features/aplikasi/route"
	aplikasiVendorRoute "inventaris_backend/internals/features/aplikasi_vendor/route"
	bahasaRoute "inventaris_backend/internals/features/bahasa_pemrograman/route"
	dashboardRoute "inventaris_backend/internals/features/dashboard/route"
	frameworkRoute "inventaris_backend/internals/features/framework/route"
	pdRoute "inventaris_backend/internals/features/perangkat_daerah/route"
	picRoute "inventaris_backend/internals/features/pic/route"
	vendorRoute "inventaris_backend/internals/features/vendors/route"
)

// SetupRoutes memasang seluruh endpoint di bawah prefix /api.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	pdRoute.PerangkatDaerahRoutes(api, db)
	bahasaRoute.BahasaPemrogramanRoutes(api, db)
	frameworkRoute.FrameworkRoutes(api, db)
	aplikasiRoute.AplikasiRoutes(api, db)
	picRoute.PicRoutes(api, db)
	vendorRoute.VendorRoutes(api, db)
	aplikasiVendorRoute.AplikasiVendorRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
}
