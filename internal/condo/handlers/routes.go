package handlers

import "github.com/gin-gonic/gin"

// registerRoutes mounts every authenticated route on the /v1 group.
func (h *Handler) registerRoutes(api *gin.RouterGroup) {
	api.POST("/users", h.CreateUser)
	api.GET("/users", h.ListUsers)
	api.GET("/users/:id", h.GetUser)
	api.PATCH("/users/:id", h.UpdateUser)
	api.DELETE("/users/:id", h.DeleteUser)
	api.POST("/users/:id/password", h.ChangePassword)

	api.POST("/condominios", h.CreateCondominio)
	api.GET("/condominios", h.ListCondominios)
	api.GET("/condominios/:id", h.GetCondominio)
	api.PATCH("/condominios/:id", h.UpdateCondominio)
	api.DELETE("/condominios/:id", h.DeleteCondominio)

	api.POST("/unidades", h.CreateUnidade)
	api.GET("/unidades", h.ListUnidades)
	api.GET("/unidades/:id", h.GetUnidade)
	api.PATCH("/unidades/:id", h.UpdateUnidade)
	api.DELETE("/unidades/:id", h.DeleteUnidade)

	api.POST("/veiculos", h.CreateVeiculo)
	api.GET("/veiculos", h.ListVeiculos)
	api.GET("/veiculos/:id", h.GetVeiculo)
	api.PATCH("/veiculos/:id", h.UpdateVeiculo)
	api.DELETE("/veiculos/:id", h.DeleteVeiculo)

	api.POST("/visitantes", h.CreateVisitante)
	api.GET("/visitantes", h.ListVisitantes)
	api.GET("/visitantes/:id", h.GetVisitante)
	api.PATCH("/visitantes/:id", h.UpdateVisitante)
	api.DELETE("/visitantes/:id", h.DeleteVisitante)
	api.POST("/visitantes/:id/saida", h.RegistrarSaida)

	api.POST("/encomendas", h.CreateEncomenda)
	api.GET("/encomendas", h.ListEncomendas)
	api.GET("/encomendas/badge", h.EncomendaBadge)
	api.GET("/encomendas/:id", h.GetEncomenda)
	api.PATCH("/encomendas/:id", h.UpdateEncomenda)
	api.DELETE("/encomendas/:id", h.DeleteEncomenda)
	api.POST("/encomendas/:id/retirada", h.RegistrarRetirada)

	api.POST("/espacos", h.CreateEspaco)
	api.GET("/espacos", h.ListEspacos)
	api.GET("/espacos/:id", h.GetEspaco)
	api.PATCH("/espacos/:id", h.UpdateEspaco)
	api.DELETE("/espacos/:id", h.DeleteEspaco)
	api.GET("/espacos/:id/inventario", h.ListInventario)
	api.POST("/espacos/:id/inventario", h.CreateInventarioItem)
	api.GET("/inventario/:id", h.GetInventarioItem)
	api.PATCH("/inventario/:id", h.UpdateInventarioItem)
	api.DELETE("/inventario/:id", h.DeleteInventarioItem)

	api.POST("/reservas", h.CreateReserva)
	api.GET("/reservas", h.ListReservas)
	api.GET("/reservas/:id", h.GetReserva)
	api.PATCH("/reservas/:id", h.UpdateReserva)
	api.DELETE("/reservas/:id", h.CancelReserva)

	api.POST("/avisos", h.CreateAviso)
	api.GET("/avisos", h.ListAvisos)
	api.GET("/avisos/:id", h.GetAviso)
	api.PATCH("/avisos/:id", h.UpdateAviso)
	api.DELETE("/avisos/:id", h.DeleteAviso)

	api.POST("/eventos", h.CreateEvento)
	api.GET("/eventos", h.ListEventos)
	api.GET("/eventos/:id", h.GetEvento)
	api.PATCH("/eventos/:id", h.UpdateEvento)
	api.DELETE("/eventos/:id", h.DeleteEvento)

	api.GET("/dashboard/morador", h.MoradorDashboard)
	api.GET("/dashboard/sindico", h.SindicoDashboard)
}
