package gallery

import (
	"crypto/subtle"

	"gallery-manager/core/logger"
	"gallery-manager/feature/gallery/sync"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// WebhookHeaderName is the header carrying the shared webhook secret.
const WebhookHeaderName = "x-webhook-secret"

// Handler handles HTTP requests for the gallery.
type Handler struct {
	service       *Service
	webhookSecret string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, webhookSecret string) *Handler {
	return &Handler{service: service, webhookSecret: webhookSecret}
}

// RegisterRoutes registers the authenticated gallery routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/gallery")
	group.Get("/albums", h.HandleListAlbums)
	group.Get("/albums/:id", h.HandleGetAlbum)
	group.Delete("/albums/:id", h.HandleDeleteAlbum)
	group.Put("/albums/:id/order", h.HandleReorderAlbum)
	group.Post("/albums/:id/upload", h.HandleUploadImage)
	group.Post("/sync", h.HandleSync)
	group.Get("/updates", h.HandleUpdates)
	group.Post("/exif/import", h.HandleImportLocalExif)
	group.Post("/exif/rebuild", h.HandleRebuildExif)
	group.Put("/photos/star", h.HandleSetStar)
	group.Put("/photos/likes", h.HandleSetLikes)
	group.Get("/photos/geotagged", h.HandleGeotagged)
	group.Get("/settings", h.HandleGetSettings)
	group.Put("/settings", h.HandlePutSettings)
}

// RegisterPublicRoutes registers the routes that bypass API-key auth.
func (h *Handler) RegisterPublicRoutes(app fiber.Router) {
	app.Get("/webhook", h.HandleWebhookPing)
	app.Post("/webhook", h.HandleWebhook)
}

// HandleListAlbums returns all non-empty albums.
// @Summary List Albums
// @Description List all albums that contain at least one image.
// @Tags gallery
// @Produce json
// @Success 200 {array} models.Album "Albums"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/albums [get]
func (h *Handler) HandleListAlbums(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	albums, err := h.service.Albums()
	if err != nil {
		l.Error("Listing albums failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(albums)
}

// HandleGetAlbum returns one album with its ordered images.
// @Summary Get Album
// @Description Get a single album and its images in display order.
// @Tags gallery
// @Produce json
// @Param id path string true "Album ID"
// @Success 200 {object} models.Album "Album"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/albums/{id} [get]
func (h *Handler) HandleGetAlbum(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	albumID := c.Params("id")

	album, err := h.service.AlbumWithImages(albumID)
	if err != nil {
		l.Error("Loading album failed", zap.String("album", albumID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if album == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "album not found"})
	}
	return c.JSON(album)
}

// HandleDeleteAlbum deletes an album everywhere.
// @Summary Delete Album
// @Description Delete an album, its images and EXIF rows, and its objects in the storage bucket.
// @Tags gallery
// @Produce json
// @Param id path string true "Album ID"
// @Success 200 {object} map[string]string "Deleted"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/albums/{id} [delete]
func (h *Handler) HandleDeleteAlbum(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	albumID := c.Params("id")

	if err := h.service.DeleteAlbum(c.Context(), albumID); err != nil {
		l.Error("Deleting album failed", zap.String("album", albumID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "deleted", "album": albumID})
}

type reorderRequest struct {
	OrderedIDs []string `json:"ordered_ids"`
}

// HandleReorderAlbum applies a manual image ordering.
// @Summary Reorder Album Images
// @Description Set image positions to their index in the given ordering.
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Album ID"
// @Param request body reorderRequest true "Ordered image IDs"
// @Success 200 {object} map[string]string "Reordered"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/albums/{id}/order [put]
func (h *Handler) HandleReorderAlbum(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	albumID := c.Params("id")

	var req reorderRequest
	if err := c.BodyParser(&req); err != nil || len(req.OrderedIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ordered_ids is required"})
	}

	if err := h.service.ReorderAlbumImages(albumID, req.OrderedIDs); err != nil {
		l.Error("Reordering album failed", zap.String("album", albumID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "reordered", "album": albumID})
}

// HandleUploadImage uploads one image into an album's images folder.
// @Summary Upload Image
// @Description Upload an image file into the album's folder in the storage bucket.
// @Tags gallery
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Album ID"
// @Param file formData file true "Image file"
// @Success 200 {object} map[string]string "Uploaded"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/albums/{id}/upload [post]
func (h *Handler) HandleUploadImage(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	albumID := c.Params("id")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		l.Error("Opening uploaded file failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	key, err := h.service.UploadImage(c.Context(), albumID, fileHeader.Filename, file,
		fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		l.Error("Upload failed", zap.String("album", albumID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "uploaded", "key": key})
}

// HandleSync triggers a synchronization run.
// @Summary Trigger Sync
// @Description Run the storage synchronization pipeline synchronously and return the classified outcome. Scope can be narrowed with the albums_only or exif_only query flags.
// @Tags gallery
// @Produce json
// @Param albums_only query bool false "Sync albums only"
// @Param exif_only query bool false "Sync EXIF only"
// @Success 200 {object} sync.Outcome "Outcome"
// @Failure 500 {object} sync.Outcome "Failed Outcome"
// @Router /gallery/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	switch {
	case c.QueryBool("albums_only"):
		return writeOutcome(c, h.service.SyncAlbums(c.Context()))
	case c.QueryBool("exif_only"):
		return writeOutcome(c, h.service.SyncExif(c.Context()))
	default:
		return writeOutcome(c, h.service.SyncAll(c.Context()))
	}
}

// HandleUpdates returns the recent operation log.
// @Summary Get Updates
// @Description Get the most recent operation log entries plus per-category freshness timestamps. Limit defaults to 50 and is clamped to [1, 200].
// @Tags gallery
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} UpdatesFeed "Updates"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/updates [get]
func (h *Handler) HandleUpdates(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	feed, err := h.service.Updates(c.QueryInt("limit", 0))
	if err != nil {
		l.Error("Loading updates failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(feed)
}

// HandleImportLocalExif ingests the locally generated EXIF document.
// @Summary Import Local EXIF
// @Description Read the EXIF JSON document the extraction tool wrote locally and reconcile it.
// @Tags gallery
// @Produce json
// @Success 200 {object} sync.Outcome "Outcome"
// @Failure 500 {object} sync.Outcome "Failed Outcome"
// @Router /gallery/exif/import [post]
func (h *Handler) HandleImportLocalExif(c *fiber.Ctx) error {
	return writeOutcome(c, h.service.ImportLocalExif())
}

// HandleRebuildExif spawns the EXIF extraction tool.
// @Summary Rebuild EXIF
// @Description Spawn the configured EXIF extraction tool as a detached process.
// @Tags gallery
// @Produce json
// @Success 202 {object} map[string]string "Spawned"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/exif/rebuild [post]
func (h *Handler) HandleRebuildExif(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.RebuildExif(); err != nil {
		l.Error("Spawning EXIF rebuild failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "rebuild started"})
}

type starRequest struct {
	ID   string `json:"id"`
	Star int    `json:"star"`
}

// HandleSetStar sets an image's star rating.
// @Summary Set Star Rating
// @Description Set the star rating (0-5) of an image.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body starRequest true "Image ID and rating"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/photos/star [put]
func (h *Handler) HandleSetStar(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req starRequest
	if err := c.BodyParser(&req); err != nil || req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}
	if req.Star < 0 || req.Star > 5 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "star must be between 0 and 5"})
	}

	ok, err := h.service.SetImageStar(req.ID, req.Star)
	if err != nil {
		l.Error("Setting star failed", zap.String("image", req.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "image not found"})
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

type likesRequest struct {
	ID    string `json:"id"`
	Likes int    `json:"likes"`
}

// HandleSetLikes sets an image's like counter.
// @Summary Set Likes
// @Description Set the like count of an image.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body likesRequest true "Image ID and like count"
// @Success 200 {object} map[string]string "Updated"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/photos/likes [put]
func (h *Handler) HandleSetLikes(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req likesRequest
	if err := c.BodyParser(&req); err != nil || req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id is required"})
	}
	if req.Likes < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "likes must not be negative"})
	}

	ok, err := h.service.SetImageLikes(req.ID, req.Likes)
	if err != nil {
		l.Error("Setting likes failed", zap.String("image", req.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "image not found"})
	}
	return c.JSON(fiber.Map{"status": "updated"})
}

// HandleGeotagged lists photos with EXIF coordinates.
// @Summary Get Geotagged Photos
// @Description List all photos whose EXIF records carry GPS coordinates.
// @Tags gallery
// @Produce json
// @Success 200 {array} models.GeotaggedPhoto "Photos"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/photos/geotagged [get]
func (h *Handler) HandleGeotagged(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	photos, err := h.service.GeotaggedPhotos()
	if err != nil {
		l.Error("Listing geotagged photos failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(photos)
}

// HandleGetSettings returns all settings.
// @Summary Get Settings
// @Description Get all stored key/value settings.
// @Tags gallery
// @Produce json
// @Success 200 {object} map[string]string "Settings"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/settings [get]
func (h *Handler) HandleGetSettings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	settings, err := h.service.Settings()
	if err != nil {
		l.Error("Loading settings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(settings)
}

// HandlePutSettings stores key/value settings.
// @Summary Put Settings
// @Description Store the given key/value settings, last writer wins.
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body map[string]string true "Settings to store"
// @Success 200 {object} map[string]string "Stored"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /gallery/settings [put]
func (h *Handler) HandlePutSettings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var values map[string]string
	if err := c.BodyParser(&values); err != nil || len(values) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "a settings object is required"})
	}

	if err := h.service.SetSettings(values); err != nil {
		l.Error("Storing settings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"status": "stored"})
}

// HandleWebhookPing answers storage-provider reachability probes.
// @Summary Webhook Ping
// @Description Reachability probe endpoint for the storage provider's webhook configuration.
// @Tags webhook
// @Produce json
// @Success 200 {object} map[string]string "OK"
// @Router /webhook [get]
func (h *Handler) HandleWebhookPing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// HandleWebhook runs a full sync when the shared secret matches.
// @Summary Webhook Trigger
// @Description Run the full synchronization pipeline when the x-webhook-secret header matches. A mismatch yields 401 and an error entry in the operation log.
// @Tags webhook
// @Produce json
// @Success 200 {object} sync.Outcome "Outcome"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /webhook [post]
func (h *Handler) HandleWebhook(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	secret := c.Get(WebhookHeaderName)
	if h.webhookSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(h.webhookSecret)) != 1 {
		l.Warn("Webhook rejected", zap.String("ip", c.IP()))
		h.service.RecordWebhookRejection()
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid webhook secret"})
	}

	l.Info("Webhook accepted, starting sync")
	return writeOutcome(c, h.service.SyncAll(c.Context()))
}

// writeOutcome maps a classified outcome onto an HTTP response. Failed runs
// report 500 so callers without JSON parsing still see the failure.
func writeOutcome(c *fiber.Ctx, outcome sync.Outcome) error {
	status := fiber.StatusOK
	if !outcome.Success {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(outcome)
}
