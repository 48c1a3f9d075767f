// internals/features/pic/route/pic_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"inventaris_backend/internals/features/pic/controller"
	"inventaris_backend/internals/middlewares/auth"
)

func PicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPicController(db)

	grp := api.Group("/pic")
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.Detail)
	grp.Post("/", auth.AuthMiddleware(), ctrl.Create)
	grp.Put("/:id", auth.AuthMiddleware(), ctrl.Update)
	grp.Delete("/:id", auth.AuthMiddleware(), ctrl.Delete)
}
