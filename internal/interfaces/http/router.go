package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-api/internal/application/auth"
	"github.com/jhoicas/restaurante-api/internal/application/dto"
	"github.com/jhoicas/restaurante-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
	OrderUC   *usecase.OrderUseCase
	ReceiptUC *usecase.ReceiptUseCase
	StatsUC   *usecase.StatsUseCase
	TableUC   *usecase.TableUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authRequired := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireAdmin()

	// Users: registro y login públicos; el resto con Bearer Token.
	users := api.Group("/users")
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/register", RequireFields("name", "email", "password"), authHandler.Register)
	users.Post("/login", RequireFields("email", "password"), authHandler.Login)
	users.Get("/profile", authRequired, userHandler.Profile)
	users.Get("/clients", authRequired, adminOnly, userHandler.Clients)
	users.Get("/admins", authRequired, adminOnly, userHandler.Admins)
	users.Put("/update", authRequired, userHandler.Update)
	users.Delete("/delete/:id", authRequired, adminOnly, userHandler.Delete)

	// Products: el menú y el detalle son públicos (carta con QR);
	// la gestión del catálogo es solo del admin.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/menu", productHandler.Menu)
	products.Get("/getproduct/:id", productHandler.Get)
	products.Get("/list", authRequired, adminOnly, productHandler.List)
	products.Post("/create",
		authRequired, adminOnly,
		RequireFields("name", "description", "price", "image"),
		productHandler.Create)
	products.Put("/update/:id", authRequired, adminOnly, productHandler.Update)
	products.Delete("/delete/:id", authRequired, adminOnly, productHandler.Delete)

	// Orders: crear requiere token; el listado por estado es público para que
	// la pantalla de cocina/espera lo consulte sin sesión.
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	orders.Post("/create", authRequired, orderHandler.Create)
	orders.Get("/receipt/:id", authRequired, orderHandler.Receipt)
	orders.Put("/status/:id",
		authRequired, adminOnly,
		RequireFields("estado"),
		orderHandler.UpdateEstado)
	orders.Get("/:status", orderHandler.ListByEstado)

	// Stats: panel del admin.
	statsHandler := NewStatsHandler(deps.StatsUC)
	api.Get("/stats", authRequired, adminOnly, statsHandler.Get)

	// Tables: gestión de mesas, solo admin.
	tables := api.Group("/tables")
	tableHandler := NewTableHandler(deps.TableUC)
	tables.Post("/",
		authRequired, adminOnly,
		RequireFields("number", "qrCode"),
		tableHandler.Create)
	tables.Get("/", authRequired, adminOnly, tableHandler.List)

	// Cualquier ruta no registrada responde 404 con el mismo sobre {status, data}.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("endpoint no encontrado"))
	})
}
