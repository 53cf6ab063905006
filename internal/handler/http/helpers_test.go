package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-chat-cipher/internal/config"
	"github.com/MKhiriev/go-chat-cipher/internal/logger"
	"github.com/MKhiriev/go-chat-cipher/internal/mock"
	"github.com/MKhiriev/go-chat-cipher/internal/service"
	"github.com/MKhiriev/go-chat-cipher/internal/utils"
	"github.com/MKhiriev/go-chat-cipher/models"
)

const testToken = "valid-token"

type serviceMocks struct {
	chat     *mock.MockChatService
	auth     *mock.MockAuthService
	appInfo  *mock.MockAppInfoService
	mutator  *mock.MockMutator
	notifier *mock.MockNotifier
}

// newTestHandler builds a Handler on top of mocked services. The auth mock
// accepts testToken as user "alice" any number of times.
func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, serviceMocks) {
	t.Helper()

	m := serviceMocks{
		chat:     mock.NewMockChatService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
		mutator:  mock.NewMockMutator(ctrl),
		notifier: mock.NewMockNotifier(ctrl),
	}
	m.auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: "alice"}, nil).AnyTimes()

	services := &service.Services{
		ChatService:    m.chat,
		Mutator:        m.mutator,
		AuthService:    m.auth,
		AppInfoService: m.appInfo,
		Notifier:       m.notifier,
	}

	return NewHandler(services, config.Server{}, prometheus.NewRegistry(), logger.Nop()), m
}

func authorize(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+testToken)
	return r
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}

func withUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}
