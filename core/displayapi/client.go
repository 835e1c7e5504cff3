package displayapi

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// itemsPerPage is the page size used when walking paginated collections.
// The size doesn't matter much, as all pages are consumed; a page returning
// fewer members than this signals the last page.
const itemsPerPage = 24

// Client defines the operations consumed from the Display API.
type Client interface {
	// GetTemplateID resolves a template title to its IRI. The title must
	// match exactly one template, otherwise ErrTemplateNotFound is returned.
	GetTemplateID(ctx context.Context, title string) (string, error)
	// FetchSlides returns all slides rendered with the given template.
	// The Display API cannot filter slides by template, so all slides are
	// fetched and filtered client-side. Fetch errors degrade to an empty
	// result so a sync run can still make partial progress.
	FetchSlides(ctx context.Context, templateID string) []Slide
	// FetchScreens returns all screens. Fetch errors degrade to an empty
	// result.
	FetchScreens(ctx context.Context) []Screen
	// GetPlaylistByName returns the first playlist matching the name, or
	// nil when none exists. Absence is a normal outcome: it means the
	// screen is not configured for the feed.
	GetPlaylistByName(ctx context.Context, name string) (*Playlist, error)
	// GetPlaylistSlides returns the slides currently attached to a playlist.
	GetPlaylistSlides(ctx context.Context, playlistID string) ([]PlaylistSlide, error)
	// SavePlaylistSlides replaces a playlist's slide list in one call.
	SavePlaylistSlides(ctx context.Context, playlistID string, items []PlaylistItem) error
	// CreateSlide creates a new slide and returns it with its id set.
	CreateSlide(ctx context.Context, input CreateSlideInput) (*Slide, error)
	// UpdateSlide replaces a slide's title, template and content.
	UpdateSlide(ctx context.Context, id string, slide Slide) error
	// DeleteSlide removes a slide.
	DeleteSlide(ctx context.Context, id string) error
}

// NewClient creates a Display API client based on the configuration.
func NewClient(cfg Config, logger *zap.Logger) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}

	// A fractional rate truncates to a zero burst, which makes the
	// limiter reject every request.
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}

	transport := http.DefaultTransport
	if cfg.InsecureSkipVerify {
		transport = &http.Transport{
			Proxy:           http.ProxyFromEnvironment,
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &client{
		cfg: cfg,
		http: &http.Client{
			Timeout:   time.Duration(timeout) * time.Second,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

type client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	logger  *zap.Logger
	tokens  tokenCache
}

// collectionEnvelope is the hydra-style wrapper around paginated members.
type collectionEnvelope struct {
	Members []json.RawMessage `json:"hydra:member"`
}

type templateRef struct {
	IRI string `json:"@id"`
}

type slideResource struct {
	IRI          string         `json:"@id"`
	Title        string         `json:"title"`
	TemplateInfo templateRef    `json:"templateInfo"`
	Content      map[string]any `json:"content"`
}

type playlistResource struct {
	IRI   string `json:"@id"`
	Title string `json:"title"`
}

type screenResource struct {
	Title string `json:"title"`
}

type playlistSlideResource struct {
	Slide  slideResource `json:"slide"`
	Weight int           `json:"weight"`
}

func (c *client) GetTemplateID(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("title", title)
	q.Set("page", "1")
	q.Set("itemsPerPage", "1")

	var env collectionEnvelope
	if err := c.send(ctx, http.MethodGet, "/v1/templates", q, nil, &env, true); err != nil {
		return "", fmt.Errorf("fetching template id for title %q: %w", title, err)
	}

	if len(env.Members) != 1 {
		return "", fmt.Errorf("%w: title %q matched %d templates", ErrTemplateNotFound, title, len(env.Members))
	}

	var tpl templateRef
	if err := json.Unmarshal(env.Members[0], &tpl); err != nil {
		return "", fmt.Errorf("decoding template: %w", err)
	}

	return tpl.IRI, nil
}

func (c *client) FetchSlides(ctx context.Context, templateID string) []Slide {
	var slides []Slide
	err := c.forEachPage(ctx, "/v1/slides", nil, func(members []json.RawMessage) error {
		for _, member := range members {
			var res slideResource
			if err := json.Unmarshal(member, &res); err != nil {
				return err
			}
			if res.TemplateInfo.IRI != templateID {
				continue
			}
			slides = append(slides, slideFromResource(res))
		}
		return nil
	})
	if err != nil {
		c.logger.Error("Error fetching slides", zap.String("template", templateID), zap.Error(err))
		return nil
	}
	return slides
}

func (c *client) FetchScreens(ctx context.Context) []Screen {
	var screens []Screen
	err := c.forEachPage(ctx, "/v1/screens", nil, func(members []json.RawMessage) error {
		for _, member := range members {
			var res screenResource
			if err := json.Unmarshal(member, &res); err != nil {
				return err
			}
			screens = append(screens, Screen{Title: res.Title})
		}
		return nil
	})
	if err != nil {
		c.logger.Error("Error fetching screens", zap.Error(err))
		return nil
	}
	return screens
}

func (c *client) GetPlaylistByName(ctx context.Context, name string) (*Playlist, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("page", "1")
	q.Set("itemsPerPage", "1")

	var env collectionEnvelope
	if err := c.send(ctx, http.MethodGet, "/v1/playlists", q, nil, &env, true); err != nil {
		return nil, fmt.Errorf("getting playlist %q: %w", name, err)
	}

	if len(env.Members) == 0 {
		return nil, nil
	}

	var res playlistResource
	if err := json.Unmarshal(env.Members[0], &res); err != nil {
		return nil, fmt.Errorf("decoding playlist: %w", err)
	}
	if res.IRI == "" {
		return nil, nil
	}

	return &Playlist{ID: extractID(res.IRI), Name: res.Title}, nil
}

func (c *client) GetPlaylistSlides(ctx context.Context, playlistID string) ([]PlaylistSlide, error) {
	var slides []PlaylistSlide
	err := c.forEachPage(ctx, "/v1/playlists/"+playlistID+"/slides", nil, func(members []json.RawMessage) error {
		for _, member := range members {
			var res playlistSlideResource
			if err := json.Unmarshal(member, &res); err != nil {
				return err
			}
			slides = append(slides, PlaylistSlide{
				SlideID: extractID(res.Slide.IRI),
				Content: res.Slide.Content,
				Weight:  res.Weight,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetching slides of playlist %s: %w", playlistID, err)
	}
	return slides, nil
}

func (c *client) SavePlaylistSlides(ctx context.Context, playlistID string, items []PlaylistItem) error {
	if items == nil {
		items = []PlaylistItem{}
	}
	if err := c.send(ctx, http.MethodPut, "/v1/playlists/"+playlistID+"/slides", nil, items, nil, true); err != nil {
		return fmt.Errorf("saving slides of playlist %s: %w", playlistID, err)
	}
	return nil
}

func (c *client) CreateSlide(ctx context.Context, input CreateSlideInput) (*Slide, error) {
	body := map[string]any{
		"title":        input.Title,
		"templateInfo": templateRef{IRI: input.TemplateID},
		"content":      input.Content,
	}

	var res slideResource
	if err := c.send(ctx, http.MethodPost, "/v1/slides", nil, body, &res, true); err != nil {
		return nil, fmt.Errorf("creating slide %q: %w", input.Title, err)
	}
	if res.IRI == "" {
		return nil, fmt.Errorf("creating slide %q: response carried no id", input.Title)
	}

	slide := slideFromResource(res)
	return &slide, nil
}

func (c *client) UpdateSlide(ctx context.Context, id string, slide Slide) error {
	body := map[string]any{
		"title":        slide.Title,
		"templateInfo": templateRef{IRI: slide.TemplateID},
		"content":      slide.Content,
	}

	if err := c.send(ctx, http.MethodPut, "/v1/slides/"+id, nil, body, nil, true); err != nil {
		return fmt.Errorf("updating slide %s: %w", id, err)
	}
	return nil
}

func (c *client) DeleteSlide(ctx context.Context, id string) error {
	if err := c.send(ctx, http.MethodDelete, "/v1/slides/"+id, nil, nil, nil, true); err != nil {
		return fmt.Errorf("deleting slide %s: %w", id, err)
	}
	return nil
}

// forEachPage walks a paginated collection, invoking fn with the members of
// every page until a short page signals the end.
func (c *client) forEachPage(ctx context.Context, apiPath string, query url.Values, fn func(members []json.RawMessage) error) error {
	page := 1
	for {
		q := url.Values{}
		for key, vals := range query {
			q[key] = vals
		}
		q.Set("page", strconv.Itoa(page))
		q.Set("itemsPerPage", strconv.Itoa(itemsPerPage))

		var env collectionEnvelope
		if err := c.send(ctx, http.MethodGet, apiPath, q, nil, &env, true); err != nil {
			return err
		}

		if err := fn(env.Members); err != nil {
			return err
		}

		if len(env.Members) < itemsPerPage {
			return nil
		}
		page++
	}
}

// send performs one request against the Display API. The rate limiter gates
// every call, including token refreshes triggered by authenticated requests.
func (c *client) send(ctx context.Context, method, apiPath string, query url.Values, body, out any, authenticated bool) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	reqURL := c.cfg.Endpoint + apiPath
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if authenticated {
		token, err := c.token(ctx)
		if err != nil {
			return fmt.Errorf("authenticating: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s %s returned status %d", method, apiPath, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// extractID returns the trailing path segment of a resource IRI, e.g.
// "/v1/slides/01H..." -> "01H...".
func extractID(iri string) string {
	if iri == "" {
		return ""
	}
	return path.Base(iri)
}

func slideFromResource(res slideResource) Slide {
	return Slide{
		ID:         extractID(res.IRI),
		Title:      res.Title,
		TemplateID: res.TemplateInfo.IRI,
		Content:    res.Content,
	}
}
