package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/mock"
	"github.com/MKhiriev/go-chat-cipher/models"
)

const testChatID = "bobalice"

var testWorkersCfg = config.ClientWorkers{PollInterval: 5 * time.Millisecond}

type pollerSpy struct {
	updates chan models.MessagesResponse
	errs    chan error
}

func newPollerSpy() *pollerSpy {
	return &pollerSpy{
		updates: make(chan models.MessagesResponse, 16),
		errs:    make(chan error, 16),
	}
}

func (s *pollerSpy) onUpdate(resp models.MessagesResponse) { s.updates <- resp }
func (s *pollerSpy) onError(err error)                     { s.errs <- err }

func runPoller(t *testing.T, p *MessagePoller) (cancel func()) {
	t.Helper()

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		p.Run(ctx)
	}()

	return func() {
		stop()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("poller did not stop")
		}
	}
}

func response(version int64, texts ...string) models.MessagesResponse {
	resp := models.MessagesResponse{ChatID: testChatID, Version: version}
	for _, text := range texts {
		resp.Messages = append(resp.Messages, models.Message{ID: text, Text: text})
	}
	return resp
}

func TestMessagePoller_ReportsOnlyNewVersions(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatServer := mock.NewMockChatServerAdapter(ctrl)

	var calls atomic.Int32
	chatServer.EXPECT().List(gomock.Any(), testChatID).
		DoAndReturn(func(context.Context, string) (models.MessagesResponse, error) {
			if calls.Add(1) < 4 {
				return response(1, "hi"), nil
			}
			return response(2, "hi", "there"), nil
		}).MinTimes(4)

	spy := newPollerSpy()
	p := NewMessagePoller(chatServer, testChatID, testWorkersCfg, spy.onUpdate, spy.onError, logger.Nop())
	stop := runPoller(t, p)

	first := <-spy.updates
	second := <-spy.updates
	stop()

	assert.Equal(t, int64(1), first.Version)
	assert.Equal(t, int64(2), second.Version)
	assert.Len(t, second.Messages, 2)
	assert.Empty(t, spy.updates, "unchanged versions must not be reported")
	assert.Empty(t, spy.errs)
}

func TestMessagePoller_ErrorThenRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatServer := mock.NewMockChatServerAdapter(ctrl)

	fetchErr := errors.New("connection refused")
	gomock.InOrder(
		chatServer.EXPECT().List(gomock.Any(), testChatID).Return(response(3, "a"), nil),
		chatServer.EXPECT().List(gomock.Any(), testChatID).Return(models.MessagesResponse{}, fetchErr),
		chatServer.EXPECT().List(gomock.Any(), testChatID).Return(response(3, "a"), nil).AnyTimes(),
	)

	spy := newPollerSpy()
	p := NewMessagePoller(chatServer, testChatID, testWorkersCfg, spy.onUpdate, spy.onError, logger.Nop())
	stop := runPoller(t, p)

	first := <-spy.updates
	err := <-spy.errs
	again := <-spy.updates
	stop()

	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, first, again, "same version is reported again after a failure")
}

func TestMessagePoller_CancelledFetchIsNotAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatServer := mock.NewMockChatServerAdapter(ctrl)

	entered := make(chan struct{})
	chatServer.EXPECT().List(gomock.Any(), testChatID).
		DoAndReturn(func(ctx context.Context, _ string) (models.MessagesResponse, error) {
			close(entered)
			<-ctx.Done()
			return models.MessagesResponse{}, ctx.Err()
		})

	spy := newPollerSpy()
	p := NewMessagePoller(chatServer, testChatID, testWorkersCfg, spy.onUpdate, spy.onError, logger.Nop())
	stop := runPoller(t, p)

	<-entered
	stop()

	assert.Empty(t, spy.errs)
	assert.Empty(t, spy.updates)
}

func TestNewMessagePoller_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	chatServer := mock.NewMockChatServerAdapter(ctrl)

	p := NewMessagePoller(chatServer, testChatID, config.ClientWorkers{}, nil, nil, logger.Nop())

	require.NotNil(t, p.onUpdate)
	require.NotNil(t, p.onError)
	assert.Equal(t, defaultPollInterval, p.interval)
}
