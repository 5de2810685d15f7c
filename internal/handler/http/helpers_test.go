package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-calorie-keeper/internal/logger"
	"github.com/MKhiriev/go-calorie-keeper/internal/mock"
	"github.com/MKhiriev/go-calorie-keeper/internal/service"
	"github.com/MKhiriev/go-calorie-keeper/internal/utils"
	"github.com/MKhiriev/go-calorie-keeper/models"
)

// testServices bundles the generated service mocks behind one Handler.
type testServices struct {
	auth    *mock.MockAuthService
	meals   *mock.MockMealService
	appInfo *mock.MockAppInfoService
	health  *mock.MockHealthService
}

func newTestHandler(t *testing.T) (*Handler, *testServices) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := &testServices{
		auth:    mock.NewMockAuthService(ctrl),
		meals:   mock.NewMockMealService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
	}

	h := &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    mocks.auth,
			MealService:    mocks.meals,
			AppInfoService: mocks.appInfo,
			HealthService:  mocks.health,
		},
	}

	return h, mocks
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	return r.WithContext(nop.Logger.WithContext(r.Context()))
}

// injectLogger puts a logger writing to buf into the request context, the
// same way withTraceID does.
func injectLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf).With().Timestamp().Logger()
	return r.WithContext(l.WithContext(r.Context()))
}

// withAuthenticatedUser stores user in the request context the way the auth
// middleware does.
func withAuthenticatedUser(r *http.Request, user models.User) *http.Request {
	return r.WithContext(utils.WithUser(r.Context(), user))
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Detail
}

// issueToken is the bearer token accepted by stubAuthenticate.
const issueToken = "test-token"

func stubAuthenticate(mocks *testServices, user models.User) {
	mocks.auth.EXPECT().
		Authenticate(gomock.Any(), issueToken).
		Return(user, nil).
		AnyTimes()
}

var testMeal = models.Meal{
	ID:            7,
	UserID:        1,
	Name:          "Oatmeal",
	Calories:      350,
	Proteins:      12,
	Carbohydrates: 60,
	Fats:          6,
	MealType:      models.MealTypeBreakfast,
	Date:          models.NewNaiveTime(time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC)),
}
