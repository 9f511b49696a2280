package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"cicerone/cmd/fx/account_fx"
	"cicerone/cmd/fx/ai_fx"
	"cicerone/cmd/fx/db_fx"
	"cicerone/cmd/fx/favorites_fx"
	"cicerone/cmd/fx/sights_fx"
	"cicerone/cmd/fx/tours_fx"
	"cicerone/internal/api/controllers"
	"cicerone/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		ai_fx.Module,
		account_fx.Module,
		sights_fx.Module,
		tours_fx.Module,
		favorites_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountsController *controllers.AccountsController,
	sightsController *controllers.SightsController,
	toursController *controllers.ToursController,
	favoritesController *controllers.FavoritesController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountsController, sightsController, toursController, favoritesController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountsController *controllers.AccountsController,
	sightsController *controllers.SightsController,
	toursController *controllers.ToursController,
	favoritesController *controllers.FavoritesController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountsController.Register)
	accounts.POST("/login", accountsController.Login)
	accounts.GET("/me", middleware.JWTAuthMiddleware(), accountsController.Me)

	sights := r.Group("/sights")
	sights.GET("/nearby", sightsController.GetNearby)
	sights.GET("/viewport", sightsController.GetInViewport)
	sights.GET("", sightsController.List)
	sights.GET("/:id", sightsController.GetByID)
	sights.GET("/:id/related", sightsController.GetRelated)
	sights.POST("", sightsController.Create)
	sights.POST("/:id/narration", sightsController.Narrate)

	tours := r.Group("/tours")
	tours.Use(middleware.JWTAuthMiddleware())
	tours.POST("/generate", toursController.Generate)
	tours.GET("/current", toursController.Current)
	tours.GET("/status", toursController.Status)
	tours.POST("/save", toursController.Save)
	tours.GET("/saved", toursController.ListSaved)
	tours.POST("/saved/:id/load", toursController.Load)
	tours.DELETE("/saved/:id", toursController.Delete)

	favorites := r.Group("/favorites")
	favorites.Use(middleware.JWTAuthMiddleware())
	favorites.POST("/:sightId", favoritesController.Add)
	favorites.DELETE("/:sightId", favoritesController.Remove)
	favorites.GET("", favoritesController.List)
}
