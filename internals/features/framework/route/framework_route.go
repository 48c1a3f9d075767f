// internals/features/framework/route/framework_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventaris_backend/internals/features/framework/controller"
	"inventaris_backend/internals/middlewares/auth"
)

func FrameworkRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewFrameworkController(db)

	grp := api.Group("/framework")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", auth.AuthMiddleware(), ctrl.Create)
	grp.Put("/:id", auth.AuthMiddleware(), ctrl.Update)
	grp.Delete("/:id", auth.AuthMiddleware(), ctrl.Delete)
}
