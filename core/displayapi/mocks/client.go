package mocks

import (
	"context"

	"display-sync/core/displayapi"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of displayapi.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetTemplateID(ctx context.Context, title string) (string, error) {
	args := m.Called(ctx, title)
	return args.String(0), args.Error(1)
}

func (m *Client) FetchSlides(ctx context.Context, templateID string) []displayapi.Slide {
	args := m.Called(ctx, templateID)
	if slides, ok := args.Get(0).([]displayapi.Slide); ok {
		return slides
	}
	return nil
}

func (m *Client) FetchScreens(ctx context.Context) []displayapi.Screen {
	args := m.Called(ctx)
	if screens, ok := args.Get(0).([]displayapi.Screen); ok {
		return screens
	}
	return nil
}

func (m *Client) GetPlaylistByName(ctx context.Context, name string) (*displayapi.Playlist, error) {
	args := m.Called(ctx, name)
	if playlist, ok := args.Get(0).(*displayapi.Playlist); ok {
		return playlist, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetPlaylistSlides(ctx context.Context, playlistID string) ([]displayapi.PlaylistSlide, error) {
	args := m.Called(ctx, playlistID)
	if slides, ok := args.Get(0).([]displayapi.PlaylistSlide); ok {
		return slides, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) SavePlaylistSlides(ctx context.Context, playlistID string, items []displayapi.PlaylistItem) error {
	args := m.Called(ctx, playlistID, items)
	return args.Error(0)
}

func (m *Client) CreateSlide(ctx context.Context, input displayapi.CreateSlideInput) (*displayapi.Slide, error) {
	args := m.Called(ctx, input)
	if slide, ok := args.Get(0).(*displayapi.Slide); ok {
		return slide, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) UpdateSlide(ctx context.Context, id string, slide displayapi.Slide) error {
	args := m.Called(ctx, id, slide)
	return args.Error(0)
}

func (m *Client) DeleteSlide(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
