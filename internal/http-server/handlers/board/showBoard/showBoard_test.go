package showBoard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventBoard/internal/http-server/handlers/board/showBoard"
	"eventBoard/internal/http-server/handlers/board/showBoard/mocks"
	"eventBoard/internal/lib/logger/handlers/slogdiscard"
	"eventBoard/internal/models"
	"eventBoard/internal/render"
)

func testEvents() []models.Event {
	return []models.Event{
		{Title: "Jazz Night", Date: "2025-09-10T19:00:00", Location: "Blue Room", Description: "live music", Tags: []string{"music", "live"}},
		{Title: "Book Fair", Date: "2025-09-12", Location: "Town Hall", Description: "books", Tags: []string{"books"}},
	}
}

func TestShowBoardHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		url            string
		mockSetup      func(mock *mocks.EventsProvider)
		expectedStatus int
		checkBody      func(t *testing.T, body string)
	}{
		{
			name: "full list without filters",
			url:  "/",
			mockSetup: func(mock *mocks.EventsProvider) {
				mock.On("Events").Return(testEvents(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Equal(t, 2, strings.Count(body, `<article class="card">`))
				assert.Contains(t, body, "Jazz Night")
				assert.Contains(t, body, "Book Fair")
				assert.Contains(t, body, `<option value="music">music</option>`)
				assert.Contains(t, body, `<option value="live">live</option>`)
				assert.Contains(t, body, `<option value="books">books</option>`)
			},
		},
		{
			name: "text query filters cards",
			url:  "/?q=jazz",
			mockSetup: func(mock *mocks.EventsProvider) {
				mock.On("Events").Return(testEvents(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Equal(t, 1, strings.Count(body, `<article class="card">`))
				assert.Contains(t, body, "Jazz Night")
				assert.NotContains(t, body, "Book Fair")
			},
		},
		{
			name: "tag selection filters cards",
			url:  "/?tag=books",
			mockSetup: func(mock *mocks.EventsProvider) {
				mock.On("Events").Return(testEvents(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Equal(t, 1, strings.Count(body, `<article class="card">`))
				assert.Contains(t, body, "Book Fair")
				assert.NotContains(t, body, "Jazz Night")
				assert.Contains(t, body, `<option value="books" selected>books</option>`)
			},
		},
		{
			name: "query and tag combine with AND",
			url:  "/?q=music&tag=books",
			mockSetup: func(mock *mocks.EventsProvider) {
				mock.On("Events").Return(testEvents(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Equal(t, 0, strings.Count(body, `<article class="card">`))
				assert.Contains(t, body, "No events found")
			},
		},
		{
			name: "tag index keeps options when filter empties the list",
			url:  "/?q=nothing-matches",
			mockSetup: func(mock *mocks.EventsProvider) {
				mock.On("Events").Return(testEvents(), nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "No events found")
				assert.Contains(t, body, `<option value="music">music</option>`)
			},
		},
		{
			name: "provider error renders error page",
			url:  "/",
			mockSetup: func(mock *mocks.EventsProvider) {
				mock.On("Events").Return(nil, errors.New("upstream unavailable"))
			},
			expectedStatus: http.StatusBadGateway,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Could not load events: upstream unavailable")
				assert.Equal(t, 0, strings.Count(body, `<article class="card">`))
			},
		},
		{
			name: "empty snapshot renders placeholder",
			url:  "/",
			mockSetup: func(mock *mocks.EventsProvider) {
				mock.On("Events").Return([]models.Event{}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "No events found")
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockProvider := mocks.NewEventsProvider(t)
			tc.mockSetup(mockProvider)

			handler := showBoard.New(logger, render.New(), mockProvider)

			req, err := http.NewRequest("GET", tc.url, nil)
			require.NoError(t, err)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

			tc.checkBody(t, rr.Body.String())

			mockProvider.AssertExpectations(t)
		})
	}
}

func TestShowBoardRecomputesPerRequest(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	mockProvider := mocks.NewEventsProvider(t)
	mockProvider.On("Events").Return(testEvents(), nil)

	handler := showBoard.New(logger, render.New(), mockProvider)

	// A narrow query followed by a broad one must not compound: each
	// request filters the full snapshot from scratch.
	narrow := httptest.NewRecorder()
	handler.ServeHTTP(narrow, httptest.NewRequest("GET", "/?q=jazz", nil))
	assert.Equal(t, 1, strings.Count(narrow.Body.String(), `<article class="card">`))

	broad := httptest.NewRecorder()
	handler.ServeHTTP(broad, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, 2, strings.Count(broad.Body.String(), `<article class="card">`))

	mockProvider.AssertNumberOfCalls(t, "Events", 2)
}
