// Package server wires the gin router and runs the HTTP server
package server

import (
	"slices"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vigenere-backend/config"
	"vigenere-backend/crypto"
	"vigenere-backend/handlers"
	"vigenere-backend/middleware"
)

// NewRouter builds the gin engine with CORS, request ids, access logging and
// the cipher routes.
func NewRouter(cfg config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		cors.New(corsConfig(cfg.AllowOrigins)),
	)

	cipher := crypto.NewVigenere(crypto.WithDiacriticFolding(cfg.FoldDiacritics))
	vigenereHandler := handlers.NewVigenereHandler(cipher, logger, handlers.Limits{
		MinKeyLength:  cfg.MinKeyLength,
		MaxKeyLength:  cfg.MaxKeyLength,
		MaxTextLength: cfg.MaxTextLength,
	})

	router.NoRoute(vigenereHandler.NotFound)
	router.NoMethod(vigenereHandler.MethodNotAllowed)

	router.GET("/", vigenereHandler.Info)

	api := router.Group("/api")
	{
		api.GET("/health", vigenereHandler.HealthCheck)

		vigenere := api.Group("/vigenere")
		{
			vigenere.POST("/cifrar", vigenereHandler.Encrypt)
			vigenere.POST("/descifrar", vigenereHandler.Decrypt)
		}
	}

	return router
}

func corsConfig(origins []string) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(origins) == 0 || slices.Contains(origins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = origins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	return corsCfg
}
