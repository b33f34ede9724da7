package main

import (
	"EnasClinic/Controllers"
	"EnasClinic/CronJobs"
	"EnasClinic/FirebaseMessaging"
	"EnasClinic/Models"
	"EnasClinic/Routes"
	"EnasClinic/Whatsapp"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	Models.ConnectDataBase()
	Controllers.SetupSessionCapture()
	FirebaseMessaging.Setup()

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"https://enasclinic.ddns.net", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	},
	))
	Routes.ConfigRoutes(router)

	reviewService := CronJobs.NewReviewRequester(Models.DB)
	scheduler := reviewService.StartReviewCron()
	_ = scheduler

	go Whatsapp.Listen()

	router.Run(":3005")
}
