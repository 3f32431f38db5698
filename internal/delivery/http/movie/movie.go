package http_movie

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/cinevault/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/cinevault/internal/model"
	usecase_movie "github.com/humanbelnik/cinevault/internal/usecase/movie"
)

const maxThumbnailSize = 5 << 20

const (
	msgRequired  = "Title and Thumbnail are required!"
	msgPublish   = "Error publishing content"
	msgDelete    = "Error deleting content"
	msgSeed      = "Error uploading demo data"
	msgNotFound  = "Content not found"
	msgNotSeries = "Content is not a series"
)

//go:generate mockery --name=Usecase --output=./mocks --filename=usecase.go
type Usecase interface {
	List(ctx context.Context) ([]*model.Movie, error)
	Get(ctx context.Context, id uuid.UUID) (model.Movie, error)
	Publish(ctx context.Context, m model.Movie) (model.Movie, error)
	Update(ctx context.Context, m model.Movie) (model.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SeedDemo(ctx context.Context) (int, error)
	SetPriority(ctx context.Context, id uuid.UUID, priority int) error
	ToggleFeature(ctx context.Context, id uuid.UUID, flag model.FeatureFlag) (bool, error)
	AddEpisode(ctx context.Context, id uuid.UUID, draft model.EpisodeDraft) ([]model.Episode, error)
	RemoveEpisode(ctx context.Context, id uuid.UUID, episodeID string) ([]model.Episode, error)
	UploadThumbnail(ctx context.Context, filename string, contentType string, content []byte) (string, error)
	OpenThumbnail(ctx context.Context, key string) (string, *model.Thumbnail, error)
}

type Controller struct {
	uc         Usecase
	middleware *http_auth_middleware.Middleware
	basePath   string

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc Usecase,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:         uc,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	c.basePath = strings.TrimSuffix(router.BasePath(), "/")

	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/options", c.getOptions)
	movies.GET("/:movie_id", c.getMovie)

	admin := movies.Group("", c.middleware.AuthRequired())
	admin.POST("", c.createMovie)
	admin.POST("/seed", c.seedDemo)
	admin.PUT("/:movie_id", c.updateMovie)
	admin.DELETE("/:movie_id", c.deleteMovie)
	admin.PATCH("/:movie_id/priority", c.setPriority)
	admin.POST("/:movie_id/features/:flag/toggle", c.toggleFeature)
	admin.POST("/:movie_id/episodes", c.addEpisode)
	admin.DELETE("/:movie_id/episodes/:episode_id", c.removeEpisode)

	router.POST("/thumbnails", c.middleware.AuthRequired(), c.uploadThumbnail)
	// Public, image tags cannot send the session header.
	router.GET("/thumbnails/*key", c.openThumbnail)
}

// @Summary Form options
// @Description Categories, qualities and the priority range for the upload form
// @Tags Movies operations
// @Produce json
// @Success 200 {object} OptionsResponseDTO
// @Router /movies/options [get]
func (c *Controller) getOptions(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, NewOptionsResponse())
}

// @Summary List catalog
// @Description Returns every entry, newest first
// @Tags Movies operations
// @Produce json
// @Success 200 {object} MoviesListResponseDTO
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	movies, err := c.uc.List(ctx.Request.Context())
	if err != nil {
		c.logger.Error("failed to load movies", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusInternalServerError, "Failed to load movies", nil)
		return
	}

	ctx.JSON(http.StatusOK, MoviesListResponseDTO{
		Movies: ConvertFromMovieList(movies),
		Total:  len(movies),
	})
}

// @Summary Get catalog entry
// @Tags Movies operations
// @Produce json
// @Param movie_id path string true "Entry ID"
// @Success 200 {object} MovieResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Malformed id"
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	id, ok := c.movieID(ctx)
	if !ok {
		return
	}

	m, err := c.uc.Get(ctx.Request.Context(), id)
	if err != nil {
		c.fail(ctx, err, "Failed to load movie")
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromMovie(m))
}

// @Summary Publish content
// @Tags Movies operations
// @Accept json
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Param request body MovieRequestDTO true "Upload form"
// @Success 201 {object} MovieResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Title and Thumbnail are required!"
// @Failure 500 {object} http_common.ErrorResponse "Error publishing content"
// @Router /movies [post]
func (c *Controller) createMovie(ctx *gin.Context) {
	var req MovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	m, err := c.uc.Publish(ctx.Request.Context(), req.ConvertToMovie(uuid.Nil))
	if err != nil {
		c.fail(ctx, err, msgPublish)
		return
	}

	c.logger.Info("content published", slog.String("id", m.ID.String()), slog.String("title", m.Title))
	ctx.JSON(http.StatusCreated, ConvertFromMovie(m))
}

// @Summary Update content
// @Description Overwrites the entry. The entry is re-stamped and moves to the top of the list
// @Tags Movies operations
// @Accept json
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Param movie_id path string true "Entry ID"
// @Param request body MovieRequestDTO true "Upload form"
// @Success 200 {object} MovieResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Title and Thumbnail are required!"
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Failure 500 {object} http_common.ErrorResponse "Error publishing content"
// @Router /movies/{movie_id} [put]
func (c *Controller) updateMovie(ctx *gin.Context) {
	id, ok := c.movieID(ctx)
	if !ok {
		return
	}

	var req MovieRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	m, err := c.uc.Update(ctx.Request.Context(), req.ConvertToMovie(id))
	if err != nil {
		c.fail(ctx, err, msgPublish)
		return
	}
	ctx.JSON(http.StatusOK, ConvertFromMovie(m))
}

// @Summary Delete content
// @Tags Movies operations
// @Param X-admin-token header string true "Session token"
// @Param movie_id path string true "Entry ID"
// @Success 204
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Failure 500 {object} http_common.ErrorResponse "Error deleting content"
// @Router /movies/{movie_id} [delete]
func (c *Controller) deleteMovie(ctx *gin.Context) {
	id, ok := c.movieID(ctx)
	if !ok {
		return
	}

	if err := c.uc.Delete(ctx.Request.Context(), id); err != nil {
		c.fail(ctx, err, msgDelete)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Upload demo data
// @Description Writes the demo catalog in one transaction
// @Tags Movies operations
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Success 201 {object} SeedResponseDTO
// @Failure 500 {object} http_common.ErrorResponse "Error uploading demo data"
// @Router /movies/seed [post]
func (c *Controller) seedDemo(ctx *gin.Context) {
	n, err := c.uc.SeedDemo(ctx.Request.Context())
	if err != nil {
		c.fail(ctx, err, msgSeed)
		return
	}
	ctx.JSON(http.StatusCreated, SeedResponseDTO{Count: n})
}

// @Summary Set priority
// @Tags Movies operations
// @Accept json
// @Param X-admin-token header string true "Session token"
// @Param movie_id path string true "Entry ID"
// @Param request body PriorityRequestDTO true "1 is highest, 10 is lowest"
// @Success 204
// @Failure 400 {object} http_common.ErrorResponse "Priority out of bounds"
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Router /movies/{movie_id}/priority [patch]
func (c *Controller) setPriority(ctx *gin.Context) {
	id, ok := c.movieID(ctx)
	if !ok {
		return
	}

	var req PriorityRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.uc.SetPriority(ctx.Request.Context(), id, req.Priority); err != nil {
		c.fail(ctx, err, "Error updating priority")
		return
	}
	ctx.Status(http.StatusNoContent)
}

// @Summary Toggle feature flag
// @Tags Movies operations
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Param movie_id path string true "Entry ID"
// @Param flag path string true "featured or top10"
// @Success 200 {object} FeatureResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Unknown flag"
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Router /movies/{movie_id}/features/{flag}/toggle [post]
func (c *Controller) toggleFeature(ctx *gin.Context) {
	id, ok := c.movieID(ctx)
	if !ok {
		return
	}

	flag, err := model.ParseFeatureFlag(ctx.Param("flag"))
	if err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "Unknown feature flag", err)
		return
	}

	v, err := c.uc.ToggleFeature(ctx.Request.Context(), id, flag)
	if err != nil {
		c.fail(ctx, err, "Error updating content")
		return
	}
	ctx.JSON(http.StatusOK, FeatureResponseDTO{Flag: string(flag), Value: v})
}

// @Summary Add episode
// @Description Series only. Numbering follows the season's episode count
// @Tags Movies operations
// @Accept json
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Param movie_id path string true "Entry ID"
// @Param request body EpisodeRequestDTO true "Episode row"
// @Success 201 {object} EpisodesResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Title and code are required"
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Failure 409 {object} http_common.ErrorResponse "Content is not a series"
// @Router /movies/{movie_id}/episodes [post]
func (c *Controller) addEpisode(ctx *gin.Context) {
	id, ok := c.movieID(ctx)
	if !ok {
		return
	}

	var req EpisodeRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	episodes, err := c.uc.AddEpisode(ctx.Request.Context(), id, req.ConvertToDraft())
	if err != nil {
		c.fail(ctx, err, "Error updating episodes")
		return
	}
	ctx.JSON(http.StatusCreated, EpisodesResponseDTO{Episodes: episodes})
}

// @Summary Remove episode
// @Tags Movies operations
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Param movie_id path string true "Entry ID"
// @Param episode_id path string true "Episode ID"
// @Success 200 {object} EpisodesResponseDTO
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Failure 409 {object} http_common.ErrorResponse "Content is not a series"
// @Router /movies/{movie_id}/episodes/{episode_id} [delete]
func (c *Controller) removeEpisode(ctx *gin.Context) {
	id, ok := c.movieID(ctx)
	if !ok {
		return
	}

	episodes, err := c.uc.RemoveEpisode(ctx.Request.Context(), id, ctx.Param("episode_id"))
	if err != nil {
		c.fail(ctx, err, "Error updating episodes")
		return
	}
	if episodes == nil {
		episodes = []model.Episode{}
	}
	ctx.JSON(http.StatusOK, EpisodesResponseDTO{Episodes: episodes})
}

// @Summary Upload thumbnail
// @Description Stores an image and returns a stable link to use as thumbnail
// @Tags Movies operations
// @Accept multipart/form-data
// @Produce json
// @Param X-admin-token header string true "Session token"
// @Param file formData file true "Image"
// @Success 201 {object} ThumbnailResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Not an image"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /thumbnails [post]
func (c *Controller) uploadThumbnail(ctx *gin.Context) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "No file", err)
		return
	}
	if fh.Size > maxThumbnailSize {
		http_common.Abort(ctx, http.StatusRequestEntityTooLarge, "File too large",
			fmt.Errorf("limit is %d bytes", maxThumbnailSize))
		return
	}

	f, err := fh.Open()
	if err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "Unreadable file", err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, maxThumbnailSize))
	if err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "Unreadable file", err)
		return
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}

	key, err := c.uc.UploadThumbnail(ctx.Request.Context(), fh.Filename, contentType, content)
	if err != nil {
		c.fail(ctx, err, "Error uploading thumbnail")
		return
	}
	ctx.JSON(http.StatusCreated, ThumbnailResponseDTO{URL: c.thumbnailURL(ctx, key), Key: key})
}

// @Summary Open thumbnail
// @Description Redirects to a freshly signed storage link, or serves the image when storage cannot sign
// @Tags Movies operations
// @Produce image/png,image/jpeg,image/webp
// @Param key path string true "Object key"
// @Success 200 {file} file "Image"
// @Success 302 "Redirect to storage"
// @Failure 400 {object} http_common.ErrorResponse "Invalid input"
// @Failure 404 {object} http_common.ErrorResponse "Content not found"
// @Router /thumbnails/{key} [get]
func (c *Controller) openThumbnail(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("key"), "/")

	link, obj, err := c.uc.OpenThumbnail(ctx.Request.Context(), key)
	if err != nil {
		c.fail(ctx, err, "Error loading thumbnail")
		return
	}

	ctx.Header("Cache-Control", "private, max-age=60")
	if link != "" {
		ctx.Redirect(http.StatusFound, link)
		return
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = http.DetectContentType(obj.Content)
	}
	ctx.Data(http.StatusOK, contentType, obj.Content)
}

func (c *Controller) thumbnailURL(ctx *gin.Context, key string) string {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	if proto := ctx.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + ctx.Request.Host + c.basePath + "/thumbnails/" + key
}

func (c *Controller) movieID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("movie_id"))
	if err != nil {
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid movie id", err)
		return uuid.Nil, false
	}
	return id, true
}

// fail maps usecase errors to responses. internal is the public message
// for everything unexpected.
func (c *Controller) fail(ctx *gin.Context, err error, internal string) {
	switch {
	case errors.Is(err, model.ErrTitleRequired), errors.Is(err, model.ErrThumbnailRequired):
		http_common.Abort(ctx, http.StatusBadRequest, msgRequired, nil)
	case errors.Is(err, usecase_movie.ErrInvalidInput):
		http_common.Abort(ctx, http.StatusBadRequest, "Invalid input", err)
	case errors.Is(err, usecase_movie.ErrResourceNotFound):
		http_common.Abort(ctx, http.StatusNotFound, msgNotFound, nil)
	case errors.Is(err, usecase_movie.ErrNotSeries):
		http_common.Abort(ctx, http.StatusConflict, msgNotSeries, nil)
	default:
		c.logger.Error(internal,
			slog.String("path", ctx.FullPath()),
			slog.String("error", err.Error()),
		)
		http_common.Abort(ctx, http.StatusInternalServerError, internal, nil)
	}
}
