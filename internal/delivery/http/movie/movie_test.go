package http_movie

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/cinevault/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth"
	resolver_mocks "github.com/humanbelnik/cinevault/internal/delivery/http/middleware/auth/mocks"
	usecase_mocks "github.com/humanbelnik/cinevault/internal/delivery/http/movie/mocks"
	"github.com/humanbelnik/cinevault/internal/model"
	session_auth "github.com/humanbelnik/cinevault/internal/service/auth/session"
	usecase_movie "github.com/humanbelnik/cinevault/internal/usecase/movie"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "tok"

type MovieControllerUnitSuite struct {
	suite.Suite
}

type resources struct {
	router   *gin.Engine
	uc       *usecase_mocks.Usecase
	resolver *resolver_mocks.SessionResolver
}

func initResources(t provider.T) *resources {
	gin.SetMode(gin.TestMode)

	uc := usecase_mocks.NewUsecase(t)
	resolver := resolver_mocks.NewSessionResolver(t)
	resolver.On("Session", mock.Anything, testToken).
		Return(model.Session{Token: testToken, Email: "admin@example.com"}, nil).Maybe()
	resolver.On("Session", mock.Anything, mock.MatchedBy(func(s string) bool { return s != testToken })).
		Return(model.Session{}, session_auth.ErrNoSession).Maybe()

	router := gin.New()
	New(uc, http_auth_middleware.New(resolver)).RegisterRoutes(router.Group("/api/v1"))

	return &resources{
		router:   router,
		uc:       uc,
		resolver: resolver,
	}
}

func (r *resources) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set(http_auth_middleware.Header, testToken)
	}
	w := httptest.NewRecorder()
	r.router.ServeHTTP(w, req)
	return w
}

func errorOf(t provider.T, w *httptest.ResponseRecorder) http_common.ErrorResponse {
	var resp http_common.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func testMovie() model.Movie {
	m := model.DefaultMovie()
	m.ID = uuid.New()
	m.Title = "Jawan"
	m.Thumbnail = "https://example.com/jawan.jpg"
	return m
}

func (s *MovieControllerUnitSuite) TestGetMovies(t provider.T) {
	t.Parallel()

	t.Run("Should list without token", func(t provider.T) {
		r := initResources(t)
		m := testMovie()
		r.uc.On("List", mock.Anything).Return([]*model.Movie{&m}, nil).Once()

		w := r.do(http.MethodGet, "/api/v1/movies", "", false)
		require.Equal(t, http.StatusOK, w.Code)

		var resp MoviesListResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 1, resp.Total)
		assert.Equal(t, "Jawan", resp.Movies[0].Title)
	})

	t.Run("Should report storage failure", func(t provider.T) {
		r := initResources(t)
		r.uc.On("List", mock.Anything).Return(nil, usecase_movie.ErrInternal).Once()

		w := r.do(http.MethodGet, "/api/v1/movies", "", false)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func (s *MovieControllerUnitSuite) TestGetMovie(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		path     func(id uuid.UUID) string
		setup    func(r *resources, id uuid.UUID)
		expected int
	}{
		{
			name: "Should return entry",
			path: func(id uuid.UUID) string { return "/api/v1/movies/" + id.String() },
			setup: func(r *resources, id uuid.UUID) {
				m := testMovie()
				m.ID = id
				r.uc.On("Get", mock.Anything, id).Return(m, nil).Once()
			},
			expected: http.StatusOK,
		},
		{
			name: "Should report missing entry",
			path: func(id uuid.UUID) string { return "/api/v1/movies/" + id.String() },
			setup: func(r *resources, id uuid.UUID) {
				r.uc.On("Get", mock.Anything, id).Return(model.Movie{}, usecase_movie.ErrResourceNotFound).Once()
			},
			expected: http.StatusNotFound,
		},
		{
			name:     "Should reject malformed id",
			path:     func(uuid.UUID) string { return "/api/v1/movies/not-a-uuid" },
			setup:    func(*resources, uuid.UUID) {},
			expected: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			id := uuid.New()
			tc.setup(r, id)

			w := r.do(http.MethodGet, tc.path(id), "", false)
			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

func (s *MovieControllerUnitSuite) TestCreateMovie(t provider.T) {
	t.Parallel()

	t.Run("Should publish with form defaults", func(t provider.T) {
		r := initResources(t)
		r.uc.On("Publish", mock.Anything, mock.MatchedBy(func(m model.Movie) bool {
			return m.Title == "Jawan" &&
				m.Year == model.DefaultYear &&
				m.Priority == model.DefaultPriority &&
				m.Category == model.DefaultCategory
		})).Return(testMovie(), nil).Once()

		w := r.do(http.MethodPost, "/api/v1/movies", `{"title":"Jawan","thumbnail":"https://example.com/jawan.jpg"}`, true)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Should require session", func(t provider.T) {
		r := initResources(t)
		w := r.do(http.MethodPost, "/api/v1/movies", `{"title":"Jawan"}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should explain missing title or thumbnail", func(t provider.T) {
		r := initResources(t)
		r.uc.On("Publish", mock.Anything, mock.Anything).
			Return(model.Movie{}, fmt.Errorf("%w: %w", usecase_movie.ErrInvalidInput, model.ErrThumbnailRequired)).Once()

		w := r.do(http.MethodPost, "/api/v1/movies", `{"title":"Jawan"}`, true)
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Title and Thumbnail are required!", errorOf(t, w).Error)
	})

	t.Run("Should report publish failure", func(t provider.T) {
		r := initResources(t)
		r.uc.On("Publish", mock.Anything, mock.Anything).
			Return(model.Movie{}, errors.Join(usecase_movie.ErrInternal, errors.New("db down"))).Once()

		w := r.do(http.MethodPost, "/api/v1/movies", `{"title":"Jawan","thumbnail":"t"}`, true)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error publishing content", errorOf(t, w).Error)
	})
}

func (s *MovieControllerUnitSuite) TestUpdateMovie(t provider.T) {
	t.Parallel()

	r := initResources(t)
	id := uuid.New()
	r.uc.On("Update", mock.Anything, mock.MatchedBy(func(m model.Movie) bool {
		return m.ID == id && m.Year == 2020
	})).Return(testMovie(), nil).Once()

	w := r.do(http.MethodPut, "/api/v1/movies/"+id.String(), `{"title":"Jawan","thumbnail":"t","year":2020}`, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func (s *MovieControllerUnitSuite) TestDeleteMovie(t provider.T) {
	t.Parallel()

	t.Run("Should delete entry", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.uc.On("Delete", mock.Anything, id).Return(nil).Once()

		w := r.do(http.MethodDelete, "/api/v1/movies/"+id.String(), "", true)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Should report delete failure", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.uc.On("Delete", mock.Anything, id).Return(usecase_movie.ErrInternal).Once()

		w := r.do(http.MethodDelete, "/api/v1/movies/"+id.String(), "", true)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error deleting content", errorOf(t, w).Error)
	})
}

func (s *MovieControllerUnitSuite) TestSeedDemo(t provider.T) {
	t.Parallel()

	t.Run("Should report count", func(t provider.T) {
		r := initResources(t)
		r.uc.On("SeedDemo", mock.Anything).Return(6, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/movies/seed", "", true)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp SeedResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 6, resp.Count)
	})

	t.Run("Should report failed batch", func(t provider.T) {
		r := initResources(t)
		r.uc.On("SeedDemo", mock.Anything).Return(0, usecase_movie.ErrInternal).Once()

		w := r.do(http.MethodPost, "/api/v1/movies/seed", "", true)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Error uploading demo data", errorOf(t, w).Error)
	})
}

func (s *MovieControllerUnitSuite) TestSetPriority(t provider.T) {
	t.Parallel()

	t.Run("Should set priority", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.uc.On("SetPriority", mock.Anything, id, 1).Return(nil).Once()

		w := r.do(http.MethodPatch, "/api/v1/movies/"+id.String()+"/priority", `{"priority":1}`, true)
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Should reject out of range priority", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.uc.On("SetPriority", mock.Anything, id, 11).
			Return(fmt.Errorf("%w: %w", usecase_movie.ErrInvalidInput, model.ErrPriorityOutOfBounds)).Once()

		w := r.do(http.MethodPatch, "/api/v1/movies/"+id.String()+"/priority", `{"priority":11}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *MovieControllerUnitSuite) TestToggleFeature(t provider.T) {
	t.Parallel()

	t.Run("Should return new value", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.uc.On("ToggleFeature", mock.Anything, id, model.FeatureTop10).Return(true, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/movies/"+id.String()+"/features/top10/toggle", "", true)
		require.Equal(t, http.StatusOK, w.Code)

		var resp FeatureResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, FeatureResponseDTO{Flag: "top10", Value: true}, resp)
	})

	t.Run("Should reject unknown flag", func(t provider.T) {
		r := initResources(t)
		w := r.do(http.MethodPost, "/api/v1/movies/"+uuid.NewString()+"/features/trending/toggle", "", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *MovieControllerUnitSuite) TestEpisodes(t provider.T) {
	t.Parallel()

	t.Run("Should add episode", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		episodes := []model.Episode{{ID: "1", Number: 1, Season: 2, Title: "Pilot", TelegramCode: "c"}}
		r.uc.On("AddEpisode", mock.Anything, id, model.EpisodeDraft{
			Season: "2", Title: "Pilot", TelegramCode: "c",
		}).Return(episodes, nil).Once()

		w := r.do(http.MethodPost, "/api/v1/movies/"+id.String()+"/episodes",
			`{"season":"2","title":"Pilot","telegramCode":"c"}`, true)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp EpisodesResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, episodes, resp.Episodes)
	})

	t.Run("Should refuse episodes for movies", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.uc.On("AddEpisode", mock.Anything, id, mock.Anything).Return(nil, usecase_movie.ErrNotSeries).Once()

		w := r.do(http.MethodPost, "/api/v1/movies/"+id.String()+"/episodes", `{"title":"Pilot","telegramCode":"c"}`, true)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Should remove last episode", func(t provider.T) {
		r := initResources(t)
		id := uuid.New()
		r.uc.On("RemoveEpisode", mock.Anything, id, "42").Return(nil, nil).Once()

		w := r.do(http.MethodDelete, "/api/v1/movies/"+id.String()+"/episodes/42", "", true)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"episodes":[]}`, w.Body.String())
	})
}

func (s *MovieControllerUnitSuite) TestUploadThumbnail(t provider.T) {
	t.Parallel()

	png := []byte("\x89PNG\r\n\x1a\n0000")

	t.Run("Should return stable link", func(t provider.T) {
		r := initResources(t)
		r.uc.On("UploadThumbnail", mock.Anything, "poster.png", "image/png", png).
			Return("thumbnails/2024-05-01/poster.png", nil).Once()

		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		fw, err := mw.CreateFormFile("file", "poster.png")
		require.NoError(t, err)
		_, err = fw.Write(png)
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/thumbnails", body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		req.Header.Set("X-Forwarded-Proto", "https")
		req.Header.Set(http_auth_middleware.Header, testToken)
		w := httptest.NewRecorder()
		r.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var resp ThumbnailResponseDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "https://example.com/api/v1/thumbnails/thumbnails/2024-05-01/poster.png", resp.URL)
		assert.Equal(t, "thumbnails/2024-05-01/poster.png", resp.Key)
		assert.NotContains(t, resp.URL, "X-Amz-")
	})

	t.Run("Should require file", func(t provider.T) {
		r := initResources(t)
		w := r.do(http.MethodPost, "/api/v1/thumbnails", "", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *MovieControllerUnitSuite) TestOpenThumbnail(t provider.T) {
	t.Parallel()

	const key = "thumbnails/2024-05-01/poster.png"

	t.Run("Should redirect to a fresh link on every open", func(t provider.T) {
		r := initResources(t)
		r.uc.On("OpenThumbnail", mock.Anything, key).
			Return("https://cdn.example.com/poster.png?sig=1", (*model.Thumbnail)(nil), nil).Once()
		r.uc.On("OpenThumbnail", mock.Anything, key).
			Return("https://cdn.example.com/poster.png?sig=2", (*model.Thumbnail)(nil), nil).Once()

		w := r.do(http.MethodGet, "/api/v1/thumbnails/"+key, "", false)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://cdn.example.com/poster.png?sig=1", w.Header().Get("Location"))

		w = r.do(http.MethodGet, "/api/v1/thumbnails/"+key, "", false)
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://cdn.example.com/poster.png?sig=2", w.Header().Get("Location"))
	})

	t.Run("Should serve image when storage cannot sign", func(t provider.T) {
		r := initResources(t)
		r.uc.On("OpenThumbnail", mock.Anything, key).
			Return("", &model.Thumbnail{ContentType: "image/png", Content: []byte("png")}, nil).Once()

		w := r.do(http.MethodGet, "/api/v1/thumbnails/"+key, "", false)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, "png", w.Body.String())
	})

	t.Run("Should map usecase errors", func(t provider.T) {
		r := initResources(t)
		r.uc.On("OpenThumbnail", mock.Anything, "missing.png").
			Return("", (*model.Thumbnail)(nil), usecase_movie.ErrResourceNotFound).Once()
		r.uc.On("OpenThumbnail", mock.Anything, "bad//key.png").
			Return("", (*model.Thumbnail)(nil), fmt.Errorf("%w: bad key", usecase_movie.ErrInvalidInput)).Once()

		w := r.do(http.MethodGet, "/api/v1/thumbnails/missing.png", "", false)
		assert.Equal(t, http.StatusNotFound, w.Code)

		w = r.do(http.MethodGet, "/api/v1/thumbnails/bad//key.png", "", false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *MovieControllerUnitSuite) TestGetOptions(t provider.T) {
	t.Parallel()

	r := initResources(t)
	w := r.do(http.MethodGet, "/api/v1/movies/options", "", false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp OptionsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.Categories, resp.Categories)
	assert.Equal(t, model.Qualities, resp.Qualities)
	assert.Equal(t, []string{"movie", "series"}, resp.ContentTypes)
	assert.Equal(t, []string{"featured", "top10"}, resp.FeatureFlags)
	assert.Equal(t, PriorityRangeDTO{Highest: 1, Lowest: 10, Default: model.DefaultPriority}, resp.Priority)
	assert.Equal(t, model.DefaultCategory, resp.Defaults.Category)
	require.NotNil(t, resp.Defaults.Priority)
	assert.Equal(t, model.DefaultPriority, *resp.Defaults.Priority)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(MovieControllerUnitSuite))
}
