package route

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"git.thinkinpower.net/cardsrv/binlist"
	"git.thinkinpower.net/cardsrv/charge"
	"git.thinkinpower.net/cardsrv/conf"
	"git.thinkinpower.net/cardsrv/mod"
)

type handler struct {
	cfg       *conf.Config
	lookup    binlist.Client
	simulator *charge.Simulator
}

// Register wires every endpoint onto the engine.
func Register(r *gin.Engine, cfg *conf.Config, lookup binlist.Client) {
	h := &handler{
		cfg:       cfg,
		lookup:    lookup,
		simulator: charge.NewSimulator(cfg),
	}

	r.GET("/health", h.health)

	api := r.Group("/api")
	{
		api.GET("/info", h.info)
		api.GET("/stripe", h.stripe)
		api.GET("/validate", h.validate)
		api.POST("/validate", h.validate)
		api.GET("/bin/:bin", h.binQuery)
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, mod.NewError("Endpoint not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, mod.NewError("Method not allowed"))
	})
}
