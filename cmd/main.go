package main

import (
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/app"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/config"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/controllers"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/routes"
	"github.com/MohammadRazak-AbdulRasheeth/san-gabriel-sub000/internal/utils"
)

func main() {
	utils.InitLogger(config.AppNameOrDefault())

	// 1) Config
	cfg := config.LoadConfig()
	defer cfg.Close()

	// 2) Core application (catalog, sinks, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize app")
	}
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController(application.QuoteService)
	quoteCtrl := controllers.NewQuoteController(application.QuoteService)

	// 4) Router
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.QuoteOptions, quoteCtrl.GetOptions).Methods(http.MethodGet)
	router.HandleFunc(routes.Quotes, quoteCtrl.SubmitQuote).Methods(http.MethodPost)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Route not found", nil)
	})

	// 5) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
