package api

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"mandir_server/internal/calendar"
	"mandir_server/internal/catalog"
	"mandir_server/internal/chat"
	"mandir_server/internal/locale"
	"mandir_server/internal/slides"
	"mandir_server/internal/store"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	cat       *catalog.Catalog
	calendars *calendar.SessionStore
	chats     *chat.Store
	rotator   *slides.Rotator
	rsvps     *store.RSVPStore // nil when persistence is disabled
	now       func() time.Time
}

// NewAPIHandler initializes a new API handler with its dependencies.
// rsvps may be nil, in which case RSVP state is session-scoped only.
func NewAPIHandler(
	cat *catalog.Catalog,
	calendars *calendar.SessionStore,
	chats *chat.Store,
	rotator *slides.Rotator,
	rsvps *store.RSVPStore,
	nowFn func() time.Time,
) *APIHandler {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &APIHandler{
		cat:       cat,
		calendars: calendars,
		chats:     chats,
		rotator:   rotator,
		rsvps:     rsvps,
		now:       nowFn,
	}
}

func queryLang(c *gin.Context) locale.Language {
	return locale.Normalize(c.Query("lang"))
}

// --- Static content ---

// GET /api/content/:lang
func (h *APIHandler) GetContent(c *gin.Context) {
	lang := locale.Normalize(c.Param("lang"))
	c.JSON(http.StatusOK, gin.H{
		"language":     lang,
		"translations": locale.Table(lang),
	})
}

// GET /api/services
func (h *APIHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.cat.Services})
}

// GET /api/gallery
func (h *APIHandler) GetGallery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"gallery": h.cat.Gallery})
}

// GET /api/festivals
func (h *APIHandler) GetFestivals(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"festivals": h.cat.Festivals})
}

// GET /api/festivals.ics
func (h *APIHandler) GetFestivalsICS(c *gin.Context) {
	body := h.cat.ExportICS(h.now())
	c.Header("Content-Disposition", `attachment; filename="festivals.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// --- Hero slides ---

type slidesResponse struct {
	Current int             `json:"current"`
	Slides  []catalog.Slide `json:"slides"`
}

// GET /api/slides
func (h *APIHandler) GetSlides(c *gin.Context) {
	c.JSON(http.StatusOK, slidesResponse{Current: h.rotator.Current(), Slides: h.cat.Slides})
}

// POST /api/slides/next
func (h *APIHandler) NextSlide(c *gin.Context) {
	c.JSON(http.StatusOK, slidesResponse{Current: h.rotator.Next(), Slides: h.cat.Slides})
}

// POST /api/slides/prev
func (h *APIHandler) PrevSlide(c *gin.Context) {
	c.JSON(http.StatusOK, slidesResponse{Current: h.rotator.Prev(), Slides: h.cat.Slides})
}

// --- Calendar widget sessions ---

type createCalendarSessionRequest struct {
	VisitorID string `json:"visitorId"`
}

// POST /api/calendar/sessions
func (h *APIHandler) CreateCalendarSession(c *gin.Context) {
	var req createCalendarSessionRequest
	// Body is optional; ignore bind errors from an empty body.
	_ = c.ShouldBindJSON(&req)

	s := h.calendars.Create(req.VisitorID)

	// Seed durable flags for a returning visitor.
	if h.rsvps != nil && req.VisitorID != "" {
		flags, err := h.rsvps.RSVPsForVisitor(req.VisitorID)
		if err != nil {
			log.Printf("Error loading stored RSVPs for visitor %s: %v", req.VisitorID, err)
		} else if len(flags) > 0 {
			s.Do(func(e *calendar.Engine) { e.SeedRSVPs(flags) })
		}
	}

	c.JSON(http.StatusCreated, h.buildCalendarView(s, queryLang(c)))
}

// GET /api/calendar/sessions/:id
func (h *APIHandler) GetCalendarView(c *gin.Context) {
	s, ok := h.calendars.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Calendar session not found"})
		return
	}
	c.JSON(http.StatusOK, h.buildCalendarView(s, queryLang(c)))
}

type navigateRequest struct {
	// Pointer so an explicit zero offset still binds.
	Offset *int `json:"offset" binding:"required"`
}

// POST /api/calendar/sessions/:id/navigate
func (h *APIHandler) NavigateMonth(c *gin.Context) {
	s, ok := h.calendars.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Calendar session not found"})
		return
	}
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	s.Do(func(e *calendar.Engine) { e.ChangeMonth(*req.Offset) })
	c.JSON(http.StatusOK, h.buildCalendarView(s, queryLang(c)))
}

type selectDateRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
}

// POST /api/calendar/sessions/:id/select
func (h *APIHandler) SelectDate(c *gin.Context) {
	s, ok := h.calendars.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Calendar session not found"})
		return
	}
	var req selectDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	when, err := time.Parse(catalog.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	s.Do(func(e *calendar.Engine) { e.SelectDate(calendar.DateOf(when)) })
	c.JSON(http.StatusOK, h.buildCalendarView(s, queryLang(c)))
}

type rsvpRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

// POST /api/calendar/sessions/:id/rsvp
func (h *APIHandler) ToggleRSVP(c *gin.Context) {
	s, ok := h.calendars.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Calendar session not found"})
		return
	}
	var req rsvpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var attending bool
	s.Do(func(e *calendar.Engine) { attending = e.ToggleRSVP(req.EventID) })

	if h.rsvps != nil && s.VisitorID != "" {
		if err := h.rsvps.SetRSVP(s.VisitorID, req.EventID, attending); err != nil {
			// Durable storage is best-effort; the session flag already flipped.
			log.Printf("Error persisting RSVP for visitor %s event %s: %v", s.VisitorID, req.EventID, err)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"eventId":   req.EventID,
		"attending": attending,
		"view":      h.buildCalendarView(s, queryLang(c)),
	})
}

// --- Chat (AI Priest) ---

// POST /api/chat/sessions
func (h *APIHandler) CreateChatSession(c *gin.Context) {
	s := h.chats.Create()
	c.JSON(http.StatusCreated, gin.H{"sessionId": s.ID})
}

type chatMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// POST /api/chat/sessions/:id/messages
func (h *APIHandler) SendChatMessage(c *gin.Context) {
	var req chatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	reply, err := h.chats.Send(c.Request.Context(), c.Param("id"), req.Text)
	switch err {
	case nil:
	case chat.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
		return
	case chat.ErrBusy:
		c.JSON(http.StatusConflict, gin.H{"error": "A reply is already pending for this session"})
		return
	default:
		log.Printf("Error sending chat message for session %s: %v", c.Param("id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	s, _ := h.chats.Get(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"reply":      reply,
		"transcript": s.Transcript(),
	})
}

// --- Donations (cosmetic mock, no payment processing) ---

type donateRequest struct {
	Name   string `json:"name"`
	Amount int    `json:"amount" binding:"required,gt=0"`
}

// POST /api/donate
func (h *APIHandler) Donate(c *gin.Context) {
	var req donateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	receipt := uuid.New().String()
	log.Printf("Donation pledge recorded: receipt %s, amount %d", receipt, req.Amount)
	c.JSON(http.StatusCreated, gin.H{
		"receiptId": receipt,
		"status":    "recorded",
		"message":   "Thank you for your seva. This is a pledge record only; no payment was processed.",
	})
}

// --- Contact ---

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// POST /api/contact
func (h *APIHandler) Contact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	log.Printf("Contact message from %s <%s>: %s", req.Name, req.Email, req.Message)
	c.JSON(http.StatusAccepted, gin.H{"status": "received"})
}
