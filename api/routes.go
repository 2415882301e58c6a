package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {

	// --- Static site content ---
	contentGroup := router.Group("/api")
	{
		contentGroup.GET("/content/:lang", h.GetContent)
		contentGroup.GET("/services", h.GetServices)
		contentGroup.GET("/gallery", h.GetGallery)
		contentGroup.GET("/festivals", h.GetFestivals)
		contentGroup.GET("/festivals.ics", h.GetFestivalsICS)
	}

	// --- Hero slides ---
	slidesGroup := router.Group("/api/slides")
	{
		slidesGroup.GET("", h.GetSlides)
		slidesGroup.POST("/next", h.NextSlide)
		slidesGroup.POST("/prev", h.PrevSlide)
	}

	// --- Festival calendar widget ---
	calendarGroup := router.Group("/api/calendar/sessions")
	{
		calendarGroup.POST("", h.CreateCalendarSession)
		calendarGroup.GET("/:id", h.GetCalendarView)
		calendarGroup.POST("/:id/navigate", h.NavigateMonth)
		calendarGroup.POST("/:id/select", h.SelectDate)
		calendarGroup.POST("/:id/rsvp", h.ToggleRSVP)
	}

	// --- AI Priest chat ---
	chatGroup := router.Group("/api/chat/sessions")
	{
		chatGroup.POST("", h.CreateChatSession)
		chatGroup.POST("/:id/messages", h.SendChatMessage)
	}

	// --- Donations (mock) and contact ---
	router.POST("/api/donate", h.Donate)
	router.POST("/api/contact", h.Contact)

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
