package pages_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/youpv/personal-trainer/internal/customers"
	"github.com/youpv/personal-trainer/internal/pages"
	"github.com/youpv/personal-trainer/internal/trainings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalendarPage_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientMock := pages.NewMockApiClient(ctrl)
	notifier := &testNotifier{}
	page := pages.NewCalendarPage(clientMock, notifier)

	clientMock.EXPECT().Trainings(gomock.Any()).Return(fetchedTrainings(), nil)

	require.NoError(t, page.Refresh(context.Background()))
	assert.False(t, page.Loading())

	events := page.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "Yoga / Maija Meikäläinen", events[0].Title)
	assert.Equal(t, 60.0, events[0].End.Sub(events[0].Start).Minutes())
	assert.Empty(t, notifier.errors)
}

func TestCalendarPage_BadRowsSurfacedGoodRowsShown(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientMock := pages.NewMockApiClient(ctrl)
	notifier := &testNotifier{}
	page := pages.NewCalendarPage(clientMock, notifier)

	list := fetchedTrainings()
	list = append(list, trainings.Training{
		ID: 3, Date: "garbage", Duration: json.Number("30"), Activity: "Zumba",
		Customer: &customers.Customer{Firstname: "Johanna", Lastname: "Virtanen"},
	})
	clientMock.EXPECT().Trainings(gomock.Any()).Return(list, nil)

	require.NoError(t, page.Refresh(context.Background()))

	assert.Len(t, page.Events(), 2)
	require.Len(t, notifier.errors, 1)
	assert.Contains(t, notifier.errors[0], "Skipped a training")
}

func TestCalendarPage_FetchFailureKeepsLastGoodEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	clientMock := pages.NewMockApiClient(ctrl)
	notifier := &testNotifier{}
	page := pages.NewCalendarPage(clientMock, notifier)

	clientMock.EXPECT().Trainings(gomock.Any()).Return(fetchedTrainings(), nil)
	require.NoError(t, page.Refresh(context.Background()))

	clientMock.EXPECT().Trainings(gomock.Any()).Return(nil, errors.New("network down"))
	require.Error(t, page.Refresh(context.Background()))

	assert.False(t, page.Loading())
	assert.Len(t, page.Events(), 2)
}
