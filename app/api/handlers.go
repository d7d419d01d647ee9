package api

import (
	"cmp"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/isabella232/www-teepy/app/contact"
	"github.com/isabella232/www-teepy/app/news"
	"github.com/isabella232/www-teepy/app/pages"
	"github.com/isabella232/www-teepy/app/sheet"
)

const robotsTxt = "User-agent: *\nDisallow:\n"

type Handler struct {
	renderer   *pages.Renderer
	news       news.Fetcher
	dispatcher DispatcherInterface
	recorder   contact.Recorder
	status     Status
}

// NewHandler wires the request handlers. recorder is only used for health
// reporting and may be nil.
func NewHandler(renderer *pages.Renderer, newsFetcher news.Fetcher, dispatcher DispatcherInterface,
	recorder contact.Recorder, status Status) *Handler {
	return &Handler{
		renderer:   renderer,
		news:       newsFetcher,
		dispatcher: dispatcher,
		recorder:   recorder,
		status:     status,
	}
}

func (h *Handler) GetPage(c *gin.Context) {
	page := cmp.Or(c.Param("page"), pages.IndexPage)

	name, err := h.renderer.Lookup(page)
	if err != nil {
		slog.Debug("Page template not found", "page", page)
		h.NotFound(c)
		return
	}

	data := h.renderer.Data(page)
	if page == pages.IndexPage {
		data.News = h.news.Fetch(c.Request.Context())
	}

	c.HTML(http.StatusOK, name, data)
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, pages.TemplateName(pages.NotFoundPage), h.renderer.Data(pages.NotFoundPage))
}

func (h *Handler) GetRobots(c *gin.Context) {
	c.String(http.StatusOK, robotsTxt)
}

func (h *Handler) PostContact(c *gin.Context) {
	name := c.Param("name")

	if err := c.Request.ParseForm(); err != nil {
		slog.Warn("Malformed contact form", "kind", name, "error", err)
	}

	location, err := h.dispatcher.Dispatch(c.Request.Context(), name, c.Request.PostForm)
	if err != nil {
		if !errors.Is(err, contact.ErrUnknownKind) {
			slog.Error("Contact dispatch error", "kind", name, "error", err)
		}
		h.NotFound(c)
		return
	}

	c.Redirect(http.StatusFound, location)
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp":     time.Now().In(time.Local).Format(time.RFC3339),
		"version":       h.status.Version,
		"debug":         h.status.Debug,
		"sheet_backend": h.status.SheetBackend,
		"news_enabled":  h.status.NewsFeedURL != "",
		"templates":     h.renderer.Count(),
	}

	if counter, ok := h.recorder.(sheet.Counter); ok {
		if count, err := counter.Count(c.Request.Context()); err == nil {
			health["recorded_submissions"] = count
		}
	}

	c.JSON(http.StatusOK, health)
}
