package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"voicesalon/handlers"
)

// RegisterHealthRoutes registers the health check and the endpoint index.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.Health)
	r.GET("/", handlers.Root)
}

// RegisterServiceRoutes registers the catalog endpoints. Static paths are
// registered before /:category so they take precedence.
func RegisterServiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.Services.ListServices)
		api.GET("/search", hb.Services.SearchServices)
		api.GET("/popular", hb.Services.PopularServices)
		api.GET("/price-range/:min/:max", hb.Services.ServicesByPrice)
		api.GET("/:category", hb.Services.GetCategory)
	}
}

func RegisterHoursRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/hours")
	{
		api.GET("", hb.Hours.GetAllHours)
		api.GET("/today", hb.Hours.GetToday)
		api.GET("/status", hb.Hours.GetStatus)
		api.GET("/week", hb.Hours.GetWeek)
	}
}

func RegisterLocationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/location")
	{
		api.GET("", hb.Location.GetLocation)
		api.GET("/address", hb.Location.GetAddress)
		api.GET("/directions", hb.Location.GetDirections)
		api.GET("/transport", hb.Location.GetTransport)
		api.GET("/parking", hb.Location.GetParking)
		api.GET("/summary", hb.Location.GetSummary)
	}
}

func RegisterGeneralRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/general")
	{
		api.GET("/welcome", hb.General.Welcome)
		api.GET("/about", hb.General.About)
		api.GET("/services-overview", hb.General.ServicesOverview)
		api.GET("/contact", hb.General.Contact)
		api.GET("/status", hb.General.Status)
	}
}

func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("/book", hb.Appointments.BookAppointment)
		api.GET("/available-times/:date", hb.Appointments.AvailableTimes)
		api.POST("/parse-datetime", hb.Appointments.ParseDateTime)
	}
}

// RegisterVoiceRoutes registers the ElevenLabs and Vapi integration endpoints.
func RegisterVoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	eleven := r.Group("/api/elevenlabs")
	{
		eleven.POST("/webhook", hb.Voice.ElevenLabsWebhook)
		eleven.GET("/health", hb.Voice.ElevenLabsHealth)
		eleven.GET("/signed-url", hb.Voice.SignedURL)
		eleven.GET("/conversation-token", hb.Voice.ConversationToken)
	}

	vapi := r.Group("/api/vapi")
	{
		vapi.POST("/webhook", hb.Voice.VapiWebhook)
		vapi.GET("/tools", hb.Voice.VapiTools)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"https://api.elevenlabs.io",
			"https://elevenlabs.io",
			"https://app.elevenlabs.io",
			"https://dashboard.vapi.ai",
		},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Authorization", "Content-Type", "Accept-Language", "xi-api-key", "X-Vapi-Secret"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	RegisterHealthRoutes(r)
	RegisterServiceRoutes(r, hb)
	RegisterHoursRoutes(r, hb)
	RegisterLocationRoutes(r, hb)
	RegisterGeneralRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterVoiceRoutes(r, hb)

	r.NoRoute(handlers.NoRoute)
}
