package Routes

import (
	"EnasClinic/Controllers"
	"EnasClinic/Middleware"
	"EnasClinic/SSE"
	"EnasClinic/Whatsapp"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", Controllers.Login)
		public.POST("/register", Controllers.Register)
		public.POST("/SaveFcmToken", Controllers.SaveFcmToken)
		public.POST("/SubmitReview", Controllers.SubmitReview)
		public.POST("/ReceiveWhatsappMessage", Whatsapp.ReceiveMessage)
		public.GET("/FetchRegionCatalog", Controllers.FetchRegionCatalog)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{

		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)

		// Capture workflow routes
		authorized.POST("/ToggleRegion", Controllers.ToggleRegion)
		authorized.POST("/ClearSelection", Controllers.ClearSelection)
		authorized.GET("/FetchSelection", Controllers.FetchSelection)
		authorized.POST("/OpenCaptureForm", Controllers.OpenCaptureForm)
		authorized.POST("/CancelCapture", Controllers.CancelCapture)
		authorized.POST("/SubmitCapture", Controllers.SubmitCapture)

		// Session-related routes
		authorized.POST("/FetchClientSessions", Controllers.FetchClientSessions)
		authorized.POST("/FetchRecentSessions", Controllers.FetchRecentSessions)
		authorized.GET("/StreamClientSessions", Controllers.StreamClientSessions)

		// Payment-related routes
		authorized.GET("/FetchOutstandingBalances", Controllers.FetchOutstandingBalances)
		authorized.POST("/FetchPaymentSummary", Controllers.FetchPaymentSummary)

		// Client-related routes
		authorized.GET("/FetchClients", Controllers.FetchClients)
		authorized.POST("/FetchClient", Controllers.FetchClient)
		authorized.POST("/CreateClient", Controllers.CreateClient)
		authorized.POST("/UpdateClient", Controllers.UpdateClient)

		// Pricing-related routes
		authorized.GET("/FetchRegionPrices", Controllers.FetchRegionPrices)
		authorized.POST("/SetRegionPrice", Controllers.SetRegionPrice)

		// Discount-related routes
		authorized.GET("/FetchDiscounts", Controllers.FetchDiscounts)
		authorized.POST("/AddDiscount", Controllers.AddDiscount)
		authorized.POST("/EditDiscount", Controllers.EditDiscount)

		// Review-related routes
		authorized.GET("/FetchReviews", Controllers.FetchReviews)
		authorized.POST("/FetchClientReviews", Controllers.FetchClientReviews)

		// WhatsApp-related routes
		authorized.GET("/CheckWhatsAppLogin", Whatsapp.CheckLogin)
		authorized.GET("/GetWhatsAppQRCode", Whatsapp.GetQRCode)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)

		// Export-related routes
		authorized.POST("/ExportSessionsTable", Controllers.ExportSessionsTable)
		authorized.GET("/ExportReviewsTable", Controllers.ExportReviewsTable)
	}

	// Admin routes
	admin := router.Group("/api/protected/admin")
	admin.Use(Middleware.JwtAuthMiddleware())
	admin.Use(Middleware.PermissionCheckAdmin())
	{
		admin.POST("/DeleteUser", Controllers.DeleteUser)
		admin.POST("/DeleteClient", Controllers.DeleteClient)
		admin.POST("/ImportRegionPrices", Controllers.ImportRegionPrices)
		admin.POST("/DeleteRegionPrice", Controllers.DeleteRegionPrice)
		admin.POST("/DeleteDiscount", Controllers.DeleteDiscount)
		admin.POST("/DeleteReview", Controllers.DeleteReview)
	}

	// Static file serving
	router.Static("/Web", "./Static")
}
