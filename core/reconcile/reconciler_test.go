package reconcile

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"display-sync/core/displayapi"
	"display-sync/core/displayapi/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func descriptor(content map[string]any) SlideDescriptor {
	return SlideDescriptor{TemplateID: "/v1/templates/t1", Content: content}
}

// capturedItems wires a SavePlaylistSlides expectation that records the
// committed playlist items.
func capturedItems(client *mocks.Client, playlistID string) *[]displayapi.PlaylistItem {
	var items []displayapi.PlaylistItem
	client.On("SavePlaylistSlides", mock.Anything, playlistID, mock.Anything).
		Run(func(args mock.Arguments) {
			items = args.Get(2).([]displayapi.PlaylistItem)
		}).
		Return(nil)
	return &items
}

func TestReconcile_CreatesInOrder(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{}, nil)

	for i, title := range []string{"A", "B", "C"} {
		id := []string{"s1", "s2", "s3"}[i]
		client.On("CreateSlide", mock.Anything, mock.MatchedBy(func(in displayapi.CreateSlideInput) bool {
			return in.Content["title"] == title
		})).Return(&displayapi.Slide{ID: id}, nil)
	}
	items := capturedItems(client, "p1")

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{
		descriptor(map[string]any{"title": "A"}),
		descriptor(map[string]any{"title": "B"}),
		descriptor(map[string]any{"title": "C"}),
	})

	require.NoError(t, err)
	require.Len(t, *items, 3)
	assert.Equal(t, displayapi.PlaylistItem{SlideID: "s1", Weight: 0}, (*items)[0])
	assert.Equal(t, displayapi.PlaylistItem{SlideID: "s2", Weight: 1}, (*items)[1])
	assert.Equal(t, displayapi.PlaylistItem{SlideID: "s3", Weight: 2}, (*items)[2])
	client.AssertNotCalled(t, "UpdateSlide", mock.Anything, mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "DeleteSlide", mock.Anything, mock.Anything)
}

func TestReconcile_SecondRunIsIdempotent(t *testing.T) {
	desired := []SlideDescriptor{
		descriptor(map[string]any{"title": "A"}),
		descriptor(map[string]any{"title": "B"}),
	}

	// First run: empty playlist, both slides created.
	first := new(mocks.Client)
	first.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{}, nil)
	first.On("CreateSlide", mock.Anything, mock.MatchedBy(func(in displayapi.CreateSlideInput) bool {
		return in.Content["title"] == "A"
	})).Return(&displayapi.Slide{ID: "s1"}, nil)
	first.On("CreateSlide", mock.Anything, mock.MatchedBy(func(in displayapi.CreateSlideInput) bool {
		return in.Content["title"] == "B"
	})).Return(&displayapi.Slide{ID: "s2"}, nil)
	firstItems := capturedItems(first, "p1")

	require.NoError(t, NewReconciler(first, zap.NewNop(), "event").Reconcile(context.Background(), "p1", desired))

	// Second run: playlist already converged. No create, update or delete
	// expectations are registered, so any mutation would fail the test.
	second := new(mocks.Client)
	second.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{
		{SlideID: "s1", Content: map[string]any{"title": "A"}, Weight: 0},
		{SlideID: "s2", Content: map[string]any{"title": "B"}, Weight: 1},
	}, nil)
	secondItems := capturedItems(second, "p1")

	require.NoError(t, NewReconciler(second, zap.NewNop(), "event").Reconcile(context.Background(), "p1", desired))

	assert.Equal(t, *firstItems, *secondItems)
	second.AssertNotCalled(t, "CreateSlide", mock.Anything, mock.Anything)
	second.AssertNotCalled(t, "UpdateSlide", mock.Anything, mock.Anything, mock.Anything)
	second.AssertNotCalled(t, "DeleteSlide", mock.Anything, mock.Anything)
}

func TestReconcile_ReusesByExternalID(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{
		{SlideID: "s1", Content: map[string]any{"externalId": "E1", "title": "old"}, Weight: 0},
	}, nil)
	client.On("UpdateSlide", mock.Anything, "s1", mock.MatchedBy(func(s displayapi.Slide) bool {
		return s.Content["title"] == "new"
	})).Return(nil)
	items := capturedItems(client, "p1")

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{
		descriptor(map[string]any{"externalId": "E1", "title": "new"}),
	})

	require.NoError(t, err)
	require.Len(t, *items, 1)
	assert.Equal(t, displayapi.PlaylistItem{SlideID: "s1", Weight: 0}, (*items)[0])
	client.AssertNotCalled(t, "CreateSlide", mock.Anything, mock.Anything)
}

func TestReconcile_ReusesByContentEquality(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	content := map[string]any{"title": "A", "text": "body"}
	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{
		{SlideID: "s1", Content: map[string]any{"title": "A", "text": "body"}, Weight: 3},
	}, nil)
	items := capturedItems(client, "p1")

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{descriptor(content)})

	require.NoError(t, err)
	assert.Equal(t, []displayapi.PlaylistItem{{SlideID: "s1", Weight: 0}}, *items)
	client.AssertNotCalled(t, "CreateSlide", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "UpdateSlide", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_DeletesOrphans(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{
		{SlideID: "s1", Content: map[string]any{"title": "stale-1"}, Weight: 0},
		{SlideID: "s2", Content: map[string]any{"title": "keep"}, Weight: 1},
		{SlideID: "s3", Content: map[string]any{"title": "stale-2"}, Weight: 2},
	}, nil)

	var deleted atomic.Int32
	client.On("DeleteSlide", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { deleted.Add(1) }).
		Return(nil)
	items := capturedItems(client, "p1")

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{
		descriptor(map[string]any{"title": "keep"}),
	})

	require.NoError(t, err)
	assert.Equal(t, []displayapi.PlaylistItem{{SlideID: "s2", Weight: 0}}, *items)

	// Deletions are fired without being awaited.
	assert.Eventually(t, func() bool { return deleted.Load() == 2 }, time.Second, 10*time.Millisecond)
	client.AssertCalled(t, "DeleteSlide", mock.Anything, "s1")
	client.AssertCalled(t, "DeleteSlide", mock.Anything, "s3")
}

func TestReconcile_DeleteFailureDoesNotFailRun(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{
		{SlideID: "s1", Content: map[string]any{"title": "stale"}, Weight: 0},
	}, nil)
	client.On("DeleteSlide", mock.Anything, "s1").Return(errors.New("boom"))
	client.On("SavePlaylistSlides", mock.Anything, "p1", mock.Anything).Return(nil)

	err := rec.Reconcile(context.Background(), "p1", nil)
	assert.NoError(t, err)
}

func TestReconcile_CreateFailureAborts(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{}, nil)
	client.On("CreateSlide", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{
		descriptor(map[string]any{"title": "A"}),
	})

	assert.Error(t, err)
	client.AssertNotCalled(t, "SavePlaylistSlides", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_UpdateFailureAborts(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{
		{SlideID: "s1", Content: map[string]any{"externalId": "E1", "title": "old"}, Weight: 0},
	}, nil)
	client.On("UpdateSlide", mock.Anything, "s1", mock.Anything).Return(errors.New("boom"))

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{
		descriptor(map[string]any{"externalId": "E1", "title": "new"}),
	})

	assert.Error(t, err)
	client.AssertNotCalled(t, "SavePlaylistSlides", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcile_CommitFailureFailsRun(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return([]displayapi.PlaylistSlide{
		{SlideID: "s1", Content: map[string]any{"title": "A"}, Weight: 0},
	}, nil)
	client.On("SavePlaylistSlides", mock.Anything, "p1", mock.Anything).Return(errors.New("boom"))

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{
		descriptor(map[string]any{"title": "A"}),
	})
	assert.Error(t, err)
}

func TestReconcile_FetchFailureAbortsBeforeMutations(t *testing.T) {
	client := new(mocks.Client)
	rec := NewReconciler(client, zap.NewNop(), "event")

	client.On("GetPlaylistSlides", mock.Anything, "p1").Return(nil, errors.New("boom"))

	err := rec.Reconcile(context.Background(), "p1", []SlideDescriptor{
		descriptor(map[string]any{"title": "A"}),
	})

	assert.Error(t, err)
	client.AssertNotCalled(t, "CreateSlide", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "SavePlaylistSlides", mock.Anything, mock.Anything, mock.Anything)
}

func TestContentEqual(t *testing.T) {
	a := map[string]any{"title": "A", "nested": map[string]any{"x": 1.0}}
	b := map[string]any{"nested": map[string]any{"x": 1.0}, "title": "A"}
	assert.True(t, contentEqual(a, b))

	c := map[string]any{"title": "A", "nested": map[string]any{"x": 2.0}}
	assert.False(t, contentEqual(a, c))
}

func TestExternalID(t *testing.T) {
	id, ok := externalID(map[string]any{"externalId": "E1"})
	assert.True(t, ok)
	assert.Equal(t, "E1", id)

	// Numeric ids still match their string form.
	id, ok = externalID(map[string]any{"externalId": 42})
	assert.True(t, ok)
	assert.Equal(t, "42", id)

	_, ok = externalID(map[string]any{"title": "no id"})
	assert.False(t, ok)
}
