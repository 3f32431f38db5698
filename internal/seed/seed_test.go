package seed

import (
	"testing"

	"github.com/humanbelnik/cinevault/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SeedUnitSuite struct {
	suite.Suite
}

func (s *SeedUnitSuite) TestEmbeddedCatalog(t provider.T) {
	t.Parallel()

	movies, err := New().Movies()
	require.NoError(t, err)
	require.NotEmpty(t, movies)

	var series int
	for _, m := range movies {
		assert.NoError(t, m.Validate(), m.Title)
		if m.IsSeries() {
			series++
			assert.NotEmpty(t, m.Episodes, m.Title)
		} else {
			assert.Nil(t, m.Episodes, m.Title)
		}
	}
	assert.Positive(t, series)
}

func (s *SeedUnitSuite) TestDefaults(t provider.T) {
	t.Parallel()

	movies, err := FromYAML([]byte(`
movies:
  - title: Bare
    thumbnail: https://example.com/bare.jpg
`)).Movies()
	require.NoError(t, err)
	require.Len(t, movies, 1)

	m := movies[0]
	assert.Equal(t, model.DefaultCategory, m.Category)
	assert.Equal(t, model.DefaultQuality, m.Quality)
	assert.Equal(t, model.DefaultYear, m.Year)
	assert.Equal(t, model.DefaultRating, m.Rating)
	assert.Equal(t, model.DefaultPriority, m.Priority)
	assert.Equal(t, model.ContentTypeMovie, m.ContentType)
}

func (s *SeedUnitSuite) TestExplicitZeroValues(t provider.T) {
	t.Parallel()

	movies, err := FromYAML([]byte(`
movies:
  - title: Unrated
    thumbnail: https://example.com/unrated.jpg
    telegramCode: unrated_code
    rating: 0
    year: 0
    contentType: series
    isTop10: true
    episodes:
      - id: "1"
        number: 1
        season: 1
        title: Pilot
        telegramCode: unrated_s1e1
`)).Movies()
	require.NoError(t, err)
	require.Len(t, movies, 1)

	m := movies[0]
	assert.Equal(t, 0.0, m.Rating)
	assert.Equal(t, 0, m.Year)
	assert.Equal(t, "unrated_code", m.TelegramCode)
	assert.True(t, m.IsTop10)
	require.Len(t, m.Episodes, 1)
	assert.Equal(t, "unrated_s1e1", m.Episodes[0].TelegramCode)
}

func (s *SeedUnitSuite) TestInvalidDocument(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		raw         string
		expectedErr error
	}{
		{
			name:        "Should reject entry without thumbnail",
			raw:         "movies:\n  - title: No Thumb\n",
			expectedErr: model.ErrThumbnailRequired,
		},
		{
			name:        "Should reject unknown content type",
			raw:         "movies:\n  - title: X\n    thumbnail: t\n    contentType: podcast\n",
			expectedErr: model.ErrUnknownContentType,
		},
		{
			name:        "Should reject out of range priority",
			raw:         "movies:\n  - title: X\n    thumbnail: t\n    priority: 42\n",
			expectedErr: model.ErrPriorityOutOfBounds,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			_, err := FromYAML([]byte(tc.raw)).Movies()
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}

	t.Run("Should reject malformed yaml", func(t provider.T) {
		_, err := FromYAML([]byte("movies: [")).Movies()
		assert.ErrorContains(t, err, "failed to parse demo catalog")
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(SeedUnitSuite))
}
