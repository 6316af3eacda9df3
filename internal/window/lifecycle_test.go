package window

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-dev-utils/internal/logger"
	"github.com/MKhiriev/go-dev-utils/internal/mock"
	"github.com/MKhiriev/go-dev-utils/models"
)

func newTestLifecycle(t *testing.T) (*Lifecycle, *mock.MockStateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockStateRepository(ctrl)
	return NewLifecycle(repo, logger.Nop()), repo
}

var savedFrame = models.Frame{X: 40, Y: 50, Width: 700, Height: 420}

func TestLifecycle_InitialState(t *testing.T) {
	l, _ := newTestLifecycle(t)

	assert.Equal(t, Hidden, l.State())
	assert.False(t, l.Visible())
	assert.Equal(t, models.DefaultFrame, l.Frame())
	assert.Equal(t, models.TabBase64, l.SelectedTab())
}

func TestLifecycle_Load(t *testing.T) {
	tests := []struct {
		name      string
		saved     models.WindowState
		wantFrame models.Frame
		wantTab   models.Tab
	}{
		{
			name:      "restores frame and tab",
			saved:     models.WindowState{Frame: savedFrame, SelectedTab: models.TabJSON},
			wantFrame: savedFrame,
			wantTab:   models.TabJSON,
		},
		{
			name:      "nothing persisted",
			saved:     models.WindowState{},
			wantFrame: models.DefaultFrame,
			wantTab:   models.TabBase64,
		},
		{
			name:      "zero width falls back to default frame",
			saved:     models.WindowState{Frame: models.Frame{X: 1, Y: 1, Width: 0, Height: 300}, SelectedTab: models.TabJWT},
			wantFrame: models.DefaultFrame,
			wantTab:   models.TabJWT,
		},
		{
			name:      "negative height falls back to default frame",
			saved:     models.WindowState{Frame: models.Frame{Width: 300, Height: -1}},
			wantFrame: models.DefaultFrame,
			wantTab:   models.TabBase64,
		},
		{
			name:      "tab out of range resets to first tab",
			saved:     models.WindowState{Frame: savedFrame, SelectedTab: 7},
			wantFrame: savedFrame,
			wantTab:   models.TabBase64,
		},
		{
			name:      "negative tab resets to first tab",
			saved:     models.WindowState{Frame: savedFrame, SelectedTab: -1},
			wantFrame: savedFrame,
			wantTab:   models.TabBase64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, repo := newTestLifecycle(t)
			repo.EXPECT().Load(gomock.Any()).Return(tt.saved, nil)

			require.NoError(t, l.Load(context.Background()))

			assert.Equal(t, tt.wantFrame, l.Frame())
			assert.Equal(t, tt.wantTab, l.SelectedTab())
			assert.Equal(t, Hidden, l.State())
		})
	}
}

func TestLifecycle_Load_OnlyOnce(t *testing.T) {
	l, repo := newTestLifecycle(t)
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{}, nil).Times(1)

	ctx := context.Background()
	require.NoError(t, l.Load(ctx))
	require.NoError(t, l.Load(ctx))
	require.NoError(t, l.Show(ctx))
}

func TestLifecycle_Load_ErrorKeepsDefaults(t *testing.T) {
	l, repo := newTestLifecycle(t)
	boom := errors.New("no such table")
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{}, boom)

	err := l.Load(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.DefaultFrame, l.Frame())
	assert.Equal(t, models.TabBase64, l.SelectedTab())
}

func TestLifecycle_ShowUsesPersistedFrame(t *testing.T) {
	l, repo := newTestLifecycle(t)
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{Frame: savedFrame, SelectedTab: models.TabJWT}, nil)

	require.NoError(t, l.Show(context.Background()))

	assert.Equal(t, Visible, l.State())
	assert.Equal(t, savedFrame, l.Frame())
	assert.Equal(t, models.TabJWT, l.SelectedTab())
}

func TestLifecycle_ShowTwiceIsNoOp(t *testing.T) {
	l, repo := newTestLifecycle(t)
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{}, nil)
	ctx := context.Background()

	require.NoError(t, l.Show(ctx))
	l.Resize(320, 240)
	require.NoError(t, l.Show(ctx))

	assert.Equal(t, 320.0, l.Frame().Width)
}

func TestLifecycle_HidePersistsFrameAndTab(t *testing.T) {
	l, repo := newTestLifecycle(t)
	ctx := context.Background()
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{Frame: savedFrame}, nil)

	require.NoError(t, l.Show(ctx))
	l.Resize(800, 640)
	l.Move(10, 20)
	l.SelectTab(models.TabJSON)

	want := models.WindowState{
		Frame:       models.Frame{X: 10, Y: 20, Width: 800, Height: 640},
		SelectedTab: models.TabJSON,
	}
	repo.EXPECT().Save(gomock.Any(), want).Return(nil)

	require.NoError(t, l.Hide(ctx))
	assert.Equal(t, Hidden, l.State())
}

func TestLifecycle_HideWhenHiddenIsNoOp(t *testing.T) {
	l, _ := newTestLifecycle(t)

	// no Save expected
	require.NoError(t, l.Hide(context.Background()))
	require.NoError(t, l.Close(context.Background()))
}

func TestLifecycle_ResizeAndMoveIgnoredWhileHidden(t *testing.T) {
	l, _ := newTestLifecycle(t)

	l.Resize(1000, 1000)
	l.Move(5, 5)

	assert.Equal(t, models.DefaultFrame, l.Frame())
}

func TestLifecycle_ResizeIgnoresNonPositive(t *testing.T) {
	l, repo := newTestLifecycle(t)
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{}, nil)
	require.NoError(t, l.Show(context.Background()))

	l.Resize(0, 300)
	l.Resize(300, -2)

	assert.Equal(t, models.DefaultFrame, l.Frame())
}

func TestLifecycle_ShowAfterHideRestoresLastPersistedFrame(t *testing.T) {
	l, repo := newTestLifecycle(t)
	ctx := context.Background()
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, l.Show(ctx))
	l.Resize(900, 700)
	require.NoError(t, l.Hide(ctx))
	require.NoError(t, l.Show(ctx))

	assert.Equal(t, models.Frame{X: 100, Y: 100, Width: 900, Height: 700}, l.Frame())
}

func TestLifecycle_Toggle(t *testing.T) {
	l, repo := newTestLifecycle(t)
	ctx := context.Background()
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{}, nil)
	repo.EXPECT().Save(gomock.Any(), models.DefaultWindowState()).Return(nil)

	require.NoError(t, l.Toggle(ctx))
	assert.True(t, l.Visible())

	require.NoError(t, l.Toggle(ctx))
	assert.False(t, l.Visible())
}

func TestLifecycle_CloseIsHide(t *testing.T) {
	l, repo := newTestLifecycle(t)
	ctx := context.Background()
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, l.Show(ctx))
	require.NoError(t, l.Close(ctx))

	assert.Equal(t, Hidden, l.State())
	// the window survives and can be shown again
	require.NoError(t, l.Show(ctx))
	assert.True(t, l.Visible())
}

func TestLifecycle_QuitPersistsWhileHidden(t *testing.T) {
	l, repo := newTestLifecycle(t)
	l.SelectTab(models.TabJWT)

	repo.EXPECT().Save(gomock.Any(), models.WindowState{Frame: models.DefaultFrame, SelectedTab: models.TabJWT}).Return(nil)

	require.NoError(t, l.Quit(context.Background()))
}

func TestLifecycle_QuitPersistsWhileVisible(t *testing.T) {
	l, repo := newTestLifecycle(t)
	ctx := context.Background()
	repo.EXPECT().Load(gomock.Any()).Return(models.WindowState{Frame: savedFrame}, nil)
	require.NoError(t, l.Show(ctx))
	l.Resize(1024, 768)

	repo.EXPECT().Save(gomock.Any(), models.WindowState{
		Frame: models.Frame{X: savedFrame.X, Y: savedFrame.Y, Width: 1024, Height: 768},
	}).Return(nil)

	require.NoError(t, l.Quit(ctx))
	assert.True(t, l.Visible())
}

func TestLifecycle_SaveErrorIsWrapped(t *testing.T) {
	l, repo := newTestLifecycle(t)
	boom := errors.New("database is locked")
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(boom)

	err := l.Quit(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "error saving window state")
}

func TestLifecycle_SelectTabClamps(t *testing.T) {
	l, _ := newTestLifecycle(t)

	l.SelectTab(models.TabJSON)
	assert.Equal(t, models.TabJSON, l.SelectedTab())

	l.SelectTab(9)
	assert.Equal(t, models.TabJSON, l.SelectedTab())

	l.SelectTab(-3)
	assert.Equal(t, models.TabBase64, l.SelectedTab())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "hidden", Hidden.String())
	assert.Equal(t, "visible", Visible.String())
}
