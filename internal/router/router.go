package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"ventaslive/internal/backend"
	"ventaslive/internal/config"
	"ventaslive/internal/handler"
	"ventaslive/internal/identity"
	"ventaslive/internal/middleware"
	"ventaslive/internal/service"
	"ventaslive/internal/session"
	"ventaslive/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← backend.Client ← remote API
func New(cfg *config.Config, cliente *backend.Client, rdb *redis.Client, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter())

	// ── Sessions e identidad ─────────────────────────────────────────────────
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	sesiones := session.NewStore(rdb, cfg.JWTSecret, ttl)
	proveedor := identity.NewStubProvider(time.Duration(cfg.LoginDelayMS) * time.Millisecond)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(proveedor, sesiones, ttl)
	clienteSvc := service.NewClienteService(cliente)
	inventarioSvc := service.NewInventarioService(cliente)
	pedidoSvc := service.NewPedidoService(cliente, dispatcher, cfg.NombreNegocio, cfg.PDFStoragePath)
	empresaSvc := service.NewEmpresaService(cliente)
	usuarioSvc := service.NewUsuarioService(cliente)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	empresasH := handler.NewEmpresasHandler(empresaSvc, usuarioSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(cliente, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Protected routes
	sesMW := middleware.SesionAuth(sesiones)
	r.POST("/v1/auth/logout", sesMW, authH.Logout)
	r.GET("/v1/auth/perfil", sesMW, authH.Perfil)

	v1 := r.Group("/v1", sesMW)
	{
		clientes := v1.Group("/clientes", middleware.RequireRole(identity.RolAdmin, identity.RolVendedor))
		{
			clientes.GET("", clientesH.Listar)
			clientes.GET("/:id", clientesH.Obtener)
			clientes.GET("/:id/perfil", clientesH.Perfil)
			clientes.POST("", clientesH.Crear)
			clientes.POST("/buscar-o-crear", clientesH.BuscarOCrear)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Desactivar)
			clientes.PATCH("/:id/reactivar", clientesH.Reactivar)
		}

		// Reads are open to every role; writes need admin or inventario.
		v1.GET("/inventario", inventarioH.Listar)
		v1.GET("/inventario/:id", inventarioH.Obtener)
		inv := v1.Group("/inventario", middleware.RequireRole(identity.RolAdmin, identity.RolInventario))
		{
			inv.POST("", inventarioH.Crear)
			inv.POST("/debug-variante", inventarioH.CrearConVarianteDebug)
			inv.PUT("/:id", inventarioH.Actualizar)
			inv.PATCH("/:id/stock", inventarioH.AjustarStock)
			inv.DELETE("/:id", inventarioH.Desactivar)
			inv.PATCH("/:id/reactivar", inventarioH.Reactivar)
			inv.POST("/importar", inventarioH.Importar)
			inv.GET("/plantilla", inventarioH.Plantilla)
			inv.GET("/exportar", inventarioH.Exportar)
		}

		pedidos := v1.Group("/pedidos", middleware.RequireRole(identity.RolAdmin, identity.RolVendedor))
		{
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/estadisticas", pedidosH.Estadisticas)
			pedidos.GET("/:id", pedidosH.Obtener)
			pedidos.POST("/venta-en-vivo", pedidosH.CrearVentaEnVivo)
			pedidos.PATCH("/:id/estado", pedidosH.ActualizarEstado)
			pedidos.POST("/:id/avanzar", pedidosH.Avanzar)
			pedidos.GET("/:id/recibo", pedidosH.ReciboHTML)
			pedidos.GET("/:id/recibo.pdf", pedidosH.ReciboPDF)
			pedidos.POST("/:id/recibo/email", pedidosH.EnviarRecibo)
		}

		// Tenant administration — cross-company, super_admin only.
		admin := v1.Group("/admin", middleware.RequireRole(identity.RolSuperAdmin))
		{
			admin.GET("/empresas", empresasH.Listar)
			admin.POST("/empresas", empresasH.Crear)
			admin.PUT("/empresas/:id", empresasH.Actualizar)
			admin.PATCH("/empresas/:id/activo", empresasH.CambiarActivo)
			admin.GET("/empresas/:id/usuarios", empresasH.ListarUsuarios)

			admin.POST("/usuarios", usuariosH.Crear)
			admin.PUT("/usuarios/:id", usuariosH.Actualizar)
			admin.PATCH("/usuarios/:id/activo", usuariosH.CambiarActivo)
			admin.DELETE("/usuarios/:id", usuariosH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
