package nemdeling_test

import (
	"encoding/base64"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"display-sync/core/displayapi"
	"display-sync/core/displayapi/mocks"
	"display-sync/core/middleware/auth"
	"display-sync/feature/nemdeling"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const serviceMessagePayload = `<?xml version="1.0" encoding="UTF-8"?>
<result>
  <item>
    <nid>101</nid>
    <title_field>Closed today</title_field>
    <body>text</body>
    <field_background_color>#ff0000</field_background_color>
    <field_display_institution><item>Main Library</item></field_display_institution>
    <field_os2_display_list_spot><item>alpha</item></field_os2_display_list_spot>
  </item>
</result>`

func newTestApp(client displayapi.Client, authCfg auth.Config) *fiber.App {
	app := fiber.New()
	api := app.Group("/api/v1", auth.New(authCfg))

	feature := nemdeling.NewFeature(client, zap.NewNop(), nemdeling.Config{
		Enabled:                true,
		ServiceMessageTemplate: "Servicemeddelelse",
		EventTemplate:          "event",
		EventListTemplate:      "Event List",
		EventThemeTemplate:     "Event Theme",
	})
	if err := feature.Load(api); err != nil {
		panic(err)
	}

	return app
}

func postXML(app *fiber.App, path, payload, authHeader string) (int, string, error) {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body), err
}

func TestHandleServiceMessages(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetTemplateID", mock.Anything, "Servicemeddelelse").Return("/v1/templates/sm", nil)
		client.On("FetchScreens", mock.Anything).Return([]displayapi.Screen{{Title: "alpha"}})
		client.On("GetPlaylistByName", mock.Anything, "service_message_alpha").
			Return(&displayapi.Playlist{ID: "p1", Name: "service_message_alpha"}, nil)
		client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{}, nil)
		client.On("CreateSlide", mock.Anything, mock.Anything).
			Return(&displayapi.Slide{ID: "s1", TemplateID: "/v1/templates/sm"}, nil)
		client.On("SavePlaylistSlides", mock.Anything, "p1", mock.Anything).Return(nil)

		app := newTestApp(client, auth.Config{})
		status, body, err := postXML(app, "/api/v1/nemdeling/service-messages", serviceMessagePayload, "")
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `[{"name":"alpha","status":"success"}]`, body)
		client.AssertExpectations(t)
	})

	t.Run("BusyReturns503", func(t *testing.T) {
		entered := make(chan struct{})
		release := make(chan struct{})

		client := new(mocks.Client)
		client.On("GetTemplateID", mock.Anything, "Servicemeddelelse").
			Run(func(args mock.Arguments) {
				close(entered)
				<-release
			}).
			Return("/v1/templates/sm", nil).Once()
		client.On("FetchScreens", mock.Anything).Return([]displayapi.Screen{})

		app := newTestApp(client, auth.Config{})

		firstDone := make(chan int, 1)
		go func() {
			status, _, _ := postXML(app, "/api/v1/nemdeling/service-messages", serviceMessagePayload, "")
			firstDone <- status
		}()

		select {
		case <-entered:
		case <-time.After(5 * time.Second):
			t.Fatal("first request never reached the service")
		}

		status, body, err := postXML(app, "/api/v1/nemdeling/service-messages", serviceMessagePayload, "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusServiceUnavailable, status)
		assert.Contains(t, body, "already being synced")

		close(release)
		select {
		case status := <-firstDone:
			assert.Equal(t, fiber.StatusOK, status)
		case <-time.After(5 * time.Second):
			t.Fatal("first request never finished")
		}
	})

	t.Run("TemplateMissingReturns500", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetTemplateID", mock.Anything, "Servicemeddelelse").
			Return("", displayapi.ErrTemplateNotFound)

		app := newTestApp(client, auth.Config{})
		status, _, err := postXML(app, "/api/v1/nemdeling/service-messages", serviceMessagePayload, "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, status)
	})

	t.Run("MalformedBodyReturns400", func(t *testing.T) {
		client := new(mocks.Client)
		app := newTestApp(client, auth.Config{})

		status, _, err := postXML(app, "/api/v1/nemdeling/service-messages", "<result><unclosed>", "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, status)
		client.AssertNotCalled(t, "GetTemplateID", mock.Anything, mock.Anything)
	})
}

func TestHandleEvents(t *testing.T) {
	payload := `<?xml version="1.0" encoding="UTF-8"?>
<result>
  <item>
    <title>Concert</title>
    <field_teaser>Music</field_teaser>
    <host>Culture House</host>
    <startdate><item>24.12.2023</item></startdate>
    <enddate><item>24.12.2023</item></enddate>
    <time><item>20:00 til 22:00</item></time>
    <billede><item><img src="https://cdn.example.com/concert.jpg"/></item></billede>
    <color>roed</color>
    <farvepar>farvepar1</farvepar>
    <screen><item>alpha</item><item>ghost</item></screen>
  </item>
</result>`

	client := new(mocks.Client)
	client.On("GetTemplateID", mock.Anything, "event").Return("/v1/templates/event", nil)
	client.On("FetchScreens", mock.Anything).Return([]displayapi.Screen{{Title: "alpha"}})
	client.On("GetPlaylistByName", mock.Anything, "event_alpha").
		Return(&displayapi.Playlist{ID: "p1", Name: "event_alpha"}, nil)
	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{}, nil)
	client.On("CreateSlide", mock.Anything, mock.MatchedBy(func(input displayapi.CreateSlideInput) bool {
		return input.Content["title"] == "Concert" && input.Content["bgColor"] == "#C10023"
	})).Return(&displayapi.Slide{ID: "s1", TemplateID: "/v1/templates/event"}, nil)
	client.On("SavePlaylistSlides", mock.Anything, "p1", mock.Anything).Return(nil)

	app := newTestApp(client, auth.Config{})
	status, body, err := postXML(app, "/api/v1/nemdeling/events", payload, "")
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, status)

	var results []map[string]string
	require.NoError(t, json.Unmarshal([]byte(body), &results))
	assert.Equal(t, []map[string]string{
		{"name": "alpha", "status": "success"},
		{"name": "ghost", "status": "not_found"},
	}, results)
	client.AssertExpectations(t)
}

func TestWebhookBasicAuth(t *testing.T) {
	authCfg := auth.Config{Username: "feed", Password: "secret"}

	t.Run("MissingCredentials", func(t *testing.T) {
		client := new(mocks.Client)
		app := newTestApp(client, authCfg)

		status, _, err := postXML(app, "/api/v1/nemdeling/service-messages", serviceMessagePayload, "")
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, status)
		client.AssertNotCalled(t, "GetTemplateID", mock.Anything, mock.Anything)
	})

	t.Run("ValidCredentials", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetTemplateID", mock.Anything, "Servicemeddelelse").Return("/v1/templates/sm", nil)
		client.On("FetchScreens", mock.Anything).Return([]displayapi.Screen{})

		app := newTestApp(client, authCfg)
		header := "Basic " + base64.StdEncoding.EncodeToString([]byte("feed:secret"))
		status, body, err := postXML(app, "/api/v1/nemdeling/service-messages", serviceMessagePayload, header)
		require.NoError(t, err)

		assert.Equal(t, fiber.StatusOK, status)
		assert.JSONEq(t, `[{"name":"alpha","status":"not_found"}]`, body)
	})
}
