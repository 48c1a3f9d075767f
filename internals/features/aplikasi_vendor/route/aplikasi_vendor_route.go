// internals/features/aplikasi_vendor/route/aplikasi_vendor_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventaris_backend/internals/features/aplikasi_vendor/controller"
	"inventaris_backend/internals/middlewares/auth"
)

// Tidak ada PUT; hubungan diganti dengan hapus lalu buat baru.
func AplikasiVendorRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAplikasiVendorController(db)

	grp := api.Group("/aplikasi-vendor")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", auth.AuthMiddleware(), ctrl.Create)
	grp.Delete("/:id", auth.AuthMiddleware(), ctrl.Delete)
}
