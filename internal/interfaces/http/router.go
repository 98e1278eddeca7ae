package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PhotoCRM-api/internal/application/auth"
	"github.com/jhoicas/PhotoCRM-api/internal/application/documents"
	"github.com/jhoicas/PhotoCRM-api/internal/application/sync"
	"github.com/jhoicas/PhotoCRM-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC  *usecase.CustomerUseCase
	PlanUC      *usecase.PlanUseCase
	ExpenseUC   *usecase.ExpenseUseCase
	TeamUC      *usecase.TeamUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *usecase.DashboardUseCase
	DocumentUC  *documents.UseCase
	SyncUC      *sync.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string

	// LocalUserID activa el modo local: sin login, todas las rutas operan
	// sobre este usuario fijo. Vacío = modo nube con JWT.
	LocalUserID string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	var protected fiber.Router
	if deps.LocalUserID != "" {
		protected = api.Group("/", LocalUserMiddleware(deps.LocalUserID))
	} else {
		// Auth (público)
		authGroup := api.Group("/auth")
		authHandler := NewAuthHandler(deps.AuthUC)
		authGroup.Post("/register", authHandler.Register)
		authGroup.Post("/login", authHandler.Login)

		// Rutas protegidas (requieren Bearer Token)
		protected = api.Group("/", AuthMiddleware(deps.JWTSecret))
	}

	// Customers + tareas + documentos por cliente
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)
	customers.Post("/:id/tasks", customerHandler.AddTask)
	customers.Patch("/:id/tasks/:taskId/toggle", customerHandler.ToggleTask)
	customers.Delete("/:id/tasks/:taskId", customerHandler.DeleteTask)

	documentHandler := NewDocumentHandler(deps.DocumentUC)
	customers.Post("/:id/documents/:kind", documentHandler.Preview)
	customers.Post("/:id/documents/:kind/pdf", documentHandler.Download)
	customers.Post("/:id/contract", documentHandler.PreviewContract)
	customers.Post("/:id/contract/pdf", documentHandler.DownloadContract)

	// Plan catalog
	plans := protected.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC)
	plans.Get("/", planHandler.List)
	plans.Post("/", planHandler.Create)
	plans.Put("/:name", planHandler.Update)
	plans.Delete("/:name", planHandler.Delete)

	// Expenses
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Get("/", expenseHandler.List)
	expenses.Post("/", expenseHandler.Create)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Team (altas y bajas solo para admin)
	team := protected.Group("/team")
	teamHandler := NewTeamHandler(deps.TeamUC)
	team.Get("/", teamHandler.List)
	team.Post("/", RequireRole("admin"), teamHandler.Add)
	team.Delete("/:id", RequireRole("admin"), teamHandler.Remove)

	// Settings
	settings := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/tax", settingsHandler.GetTaxSettings)
	settings.Put("/tax", settingsHandler.SaveTaxSettings)
	settings.Get("/sender", settingsHandler.GetSenderProfile)
	settings.Put("/sender", settingsHandler.SaveSenderProfile)
	settings.Get("/custom-fields", settingsHandler.ListCustomFields)
	settings.Post("/custom-fields", settingsHandler.AddCustomField)
	settings.Delete("/custom-fields/:id", settingsHandler.RemoveCustomField)
	settings.Get("/calendar-filters", settingsHandler.GetCalendarFilters)
	settings.Put("/calendar-filters", settingsHandler.SaveCalendarFilters)
	settings.Get("/options", settingsHandler.GetOptions)
	settings.Put("/options", settingsHandler.SaveOptions)
	settings.Get("/preferences/:name", settingsHandler.GetPreference)
	settings.Put("/preferences/:name", settingsHandler.SetPreference)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Exports
	export := protected.Group("/export")
	exportHandler := NewExportHandler(deps.CustomerUC, deps.SettingsUC)
	export.Get("/customers.csv", exportHandler.CSV)
	export.Get("/customers.xlsx", exportHandler.XLSX)
	export.Get("/calendar.ics", exportHandler.ICS)

	// Sync (snapshots JSON)
	syncGroup := protected.Group("/sync")
	syncHandler := NewSyncHandler(deps.SyncUC)
	syncGroup.Get("/export", syncHandler.Export)
	syncGroup.Post("/import", syncHandler.Import)
}
