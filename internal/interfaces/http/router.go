package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AmbientalSC/licencas/internal/application/analytics"
	"github.com/AmbientalSC/licencas/internal/application/auth"
	"github.com/AmbientalSC/licencas/internal/application/usecase"
	"github.com/AmbientalSC/licencas/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	FilialUC        *usecase.FilialUseCase
	TipoLicencaUC   *usecase.TipoLicencaUseCase
	LaoUC           *usecase.LaoUseCase
	CondicionanteUC *usecase.CondicionanteUseCase
	VistoriaUC      *usecase.VistoriaUseCase
	ImportUC        *usecase.ImportUseCase
	ImportPDF       relatorioGenerator
	DashboardUC     *analytics.DashboardUseCase
	AuthUC          *auth.AuthUseCase
	JWTSecret       string
}

// Router registra as rotas da API.
//
// Perfis: consulta lê tudo; gestor também escreve cadastros e importa;
// admin também gerencia usuários e faz exclusões físicas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	escrita := RequireRole(entity.RoleAdmin, entity.RoleGestor)
	somenteAdmin := RequireRole(entity.RoleAdmin)

	// Filiais
	filiais := protected.Group("/filiais")
	filialHandler := NewFilialHandler(deps.FilialUC)
	filiais.Get("/", filialHandler.List)
	filiais.Get("/:id", filialHandler.GetByID)
	filiais.Post("/", escrita, filialHandler.Create)
	filiais.Put("/:id", escrita, filialHandler.Update)
	filiais.Delete("/:id", somenteAdmin, filialHandler.Delete)

	// Tipos de licença
	tipos := protected.Group("/tipos-licenca")
	tipoHandler := NewTipoLicencaHandler(deps.TipoLicencaUC)
	tipos.Get("/", tipoHandler.List)
	tipos.Get("/:id", tipoHandler.GetByID)
	tipos.Post("/", escrita, tipoHandler.Create)
	tipos.Put("/:id", escrita, tipoHandler.Update)
	tipos.Delete("/:id", somenteAdmin, tipoHandler.Delete)

	// Licenças LAO
	laos := protected.Group("/laos")
	laoHandler := NewLaoHandler(deps.LaoUC)
	laos.Get("/", laoHandler.List)
	laos.Get("/:id", laoHandler.GetByID)
	laos.Post("/", escrita, laoHandler.Create)
	laos.Put("/:id", escrita, laoHandler.Update)
	laos.Post("/:id/desativar", escrita, laoHandler.Desativar)
	laos.Delete("/:id", somenteAdmin, laoHandler.Delete)

	// Condicionantes (aninhadas na licença e por ID próprio)
	condHandler := NewCondicionanteHandler(deps.CondicionanteUC)
	laos.Get("/:laoId/condicionantes", condHandler.ListByLao)
	laos.Post("/:laoId/condicionantes", escrita, condHandler.Create)
	conds := protected.Group("/condicionantes")
	conds.Get("/:id", condHandler.GetByID)
	conds.Put("/:id", escrita, condHandler.Update)
	conds.Delete("/:id", somenteAdmin, condHandler.Delete)
	conds.Get("/:id/agenda", condHandler.Agenda)

	// Vistorias
	vistoriaHandler := NewVistoriaHandler(deps.VistoriaUC)
	conds.Get("/:condicionanteId/vistorias", vistoriaHandler.ListByCondicionante)
	conds.Post("/:condicionanteId/vistorias", escrita, vistoriaHandler.Registrar)
	laos.Get("/:laoId/vistorias", vistoriaHandler.ListByLao)
	protected.Delete("/vistorias/:id", somenteAdmin, vistoriaHandler.Delete)

	// Importação de planilhas
	importacoes := protected.Group("/importacoes")
	importHandler := NewImportHandler(deps.ImportUC, deps.ImportPDF)
	importacoes.Post("/", escrita, importHandler.Upload)
	importacoes.Get("/relatorio", importHandler.Relatorio)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
