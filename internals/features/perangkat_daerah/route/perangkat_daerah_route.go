package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pdCtrl "inventaris_backend/internals/features/perangkat_daerah/controller"
	"inventaris_backend/internals/middlewares/auth"
)

func PerangkatDaerahRoutes(api fiber.Router, db *gorm.DB) {
	h := pdCtrl.NewPerangkatDaerahController(db)

	g := api.Group("/perangkat-daerah")
	g.Get("/", h.List)
	g.Get("/:id", h.Detail)
	g.Post("/", auth.AuthMiddleware(), h.Create)
	g.Put("/:id", auth.AuthMiddleware(), h.Update)
	g.Delete("/:id", auth.AuthMiddleware(), h.Delete)
}
