package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"

	"github.com/eresik/eresik/internal/api"
	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/service"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateNotFound
	stateInvalidTransition
	stateServiceError
)

// Variables for tests
var (
	testRequest = entity.Request{
		ID:          4,
		UserID:      1,
		UserName:    "test_user",
		Type:        entity.RequestTypePickup,
		Category:    entity.CategoryPlastic,
		EstimatedKg: 3,
		ScheduledAt: time.Date(2025, 8, 10, 8, 0, 0, 0, time.UTC),
		Status:      entity.StatusPending,
		CreatedAt:   time.Date(2025, 8, 5, 12, 0, 0, 0, time.UTC),
		Photos:      []string{},
	}
	testMission = entity.Mission{
		ID:        2,
		Title:     "test_mission",
		Target:    10,
		Current:   10,
		Points:    30,
		Completed: true,
		Category:  entity.CategoryGlass,
	}
)

type requestsServiceMock struct {
	state mockState
}

func (m *requestsServiceMock) Create(ctx context.Context, input *service.CreateRequestInput) (entity.Request, error) {
	switch m.state {
	case stateServiceError:
		return entity.Request{}, errors.New("validation error: mocked")
	default:
		return testRequest, nil
	}
}

func (m *requestsServiceMock) UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus, patch service.RequestPatch) (entity.Request, error) {
	switch m.state {
	case stateNotFound:
		return entity.Request{}, errorvalues.ErrRequestNotFound
	case stateInvalidTransition:
		return entity.Request{}, errorvalues.ErrInvalidTransition
	case stateServiceError:
		return entity.Request{}, errors.New("mocked error")
	default:
		updated := testRequest
		updated.Status = status
		return updated, nil
	}
}

func (m *requestsServiceMock) Get(ctx context.Context, id int64) (entity.Request, error) {
	if m.state == stateNotFound {
		return entity.Request{}, errorvalues.ErrRequestNotFound
	}
	return testRequest, nil
}

func (m *requestsServiceMock) ByUser(ctx context.Context, uid int64) ([]entity.Request, error) {
	if m.state == stateServiceError {
		return nil, errors.New("mocked error")
	}
	return []entity.Request{testRequest}, nil
}

func (m *requestsServiceMock) List(ctx context.Context) ([]entity.Request, error) {
	if m.state == stateServiceError {
		return nil, errors.New("mocked error")
	}
	return []entity.Request{testRequest}, nil
}

type missionsServiceMock struct {
	state mockState
}

func (m *missionsServiceMock) List(ctx context.Context) ([]entity.Mission, error) {
	if m.state == stateServiceError {
		return nil, errors.New("mocked error")
	}
	return []entity.Mission{testMission}, nil
}

func (m *missionsServiceMock) Complete(ctx context.Context, id int64) (entity.Mission, error) {
	switch m.state {
	case stateNotFound:
		return entity.Mission{}, errorvalues.ErrMissionNotFound
	case stateServiceError:
		return entity.Mission{}, errors.New("mocked error")
	default:
		return testMission, nil
	}
}

func (m *missionsServiceMock) SetProgress(ctx context.Context, id int64, value float64) (entity.Mission, error) {
	return testMission, nil
}

func (m *missionsServiceMock) AddCategoryProgress(ctx context.Context, cat entity.WasteCategory, weightKg float64) error {
	return nil
}

func (m *missionsServiceMock) CompletedCount(ctx context.Context) int { return 1 }

type notificationsServiceMock struct {
	state mockState
}

func (m *notificationsServiceMock) List(ctx context.Context) ([]entity.Notification, error) {
	if m.state == stateServiceError {
		return nil, errors.New("mocked error")
	}
	return []entity.Notification{}, nil
}

func (m *notificationsServiceMock) UnreadCount(ctx context.Context) int { return 0 }

func (m *notificationsServiceMock) MarkRead(ctx context.Context, id int64) error {
	switch m.state {
	case stateNotFound:
		return errorvalues.ErrNotificationNotFound
	case stateServiceError:
		return errors.New("mocked error")
	default:
		return nil
	}
}

func (m *notificationsServiceMock) MarkAllRead(ctx context.Context) {}

func (m *notificationsServiceMock) Push(ctx context.Context, title, message string, typ entity.NotificationType) entity.Notification {
	return entity.Notification{}
}

type reportsServiceMock struct {
	state mockState
}

func (m *reportsServiceMock) Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error) {
	return store.DefaultSeed().Leaderboard, nil
}

func (m *reportsServiceMock) KPI(ctx context.Context) (entity.KPIData, error) {
	if m.state == stateServiceError {
		return entity.KPIData{}, errors.New("mocked error")
	}
	return store.DefaultSeed().KPI, nil
}

func (m *reportsServiceMock) RegisteredUsers(ctx context.Context) ([]entity.RegisteredUser, error) {
	return store.DefaultSeed().RegisteredUsers, nil
}

func (m *reportsServiceMock) Categories(ctx context.Context) ([]entity.CategoryInfo, error) {
	return store.DefaultSeed().Categories, nil
}

func TestCreateRequestHandler(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.CreateRequestRequest{
		UserID:      1,
		UserName:    "test_user",
		Type:        "pickup",
		Category:    "plastik",
		EstimatedKg: 3,
		ScheduledAt: time.Date(2025, 8, 10, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatal(err)
	}
	mock := requestsServiceMock{}
	serv := api.New(&api.ServicesList{
		RequestsService: &mock,
	})

	t.Run("created", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewReader(body))
		mock.state = stateSuccess
		serv.CreateRequest(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	})

	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewReader([]byte("{broken")))
		serv.CreateRequest(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})

	t.Run("validation error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/requests", bytes.NewReader(body))
		mock.state = stateServiceError
		serv.CreateRequest(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestUpdateRequestStatusHandler(t *testing.T) {
	body, err := sonic.ConfigDefault.Marshal(api.UpdateRequestStatusRequest{
		Status: "completed",
	})
	if err != nil {
		t.Fatal(err)
	}
	mock := requestsServiceMock{}
	serv := api.New(&api.ServicesList{
		RequestsService: &mock,
	})

	newReq := func(body []byte, id string) *http.Request {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/requests/"+id+"/status", bytes.NewReader(body))
		req.SetPathValue("id", id)
		return req
	}

	t.Run("updated", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateSuccess
		serv.UpdateRequestStatus(rr, newReq(body, "4"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})

	t.Run("unknown status", func(t *testing.T) {
		badBody, _ := sonic.ConfigDefault.Marshal(api.UpdateRequestStatusRequest{Status: "done"})
		rr := httptest.NewRecorder()
		serv.UpdateRequestStatus(rr, newReq(badBody, "4"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})

	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.UpdateRequestStatus(rr, newReq(body, "abc"))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateNotFound
		serv.UpdateRequestStatus(rr, newReq(body, "9999"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})

	t.Run("transition not allowed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateInvalidTransition
		serv.UpdateRequestStatus(rr, newReq(body, "4"))
		assert.Equal(t, http.StatusConflict, rr.Result().StatusCode)
	})
}

func TestCompleteMissionHandler(t *testing.T) {
	mock := missionsServiceMock{}
	serv := api.New(&api.ServicesList{
		MissionsService: &mock,
	})

	newReq := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/missions/"+id+"/complete", nil)
		req.SetPathValue("id", id)
		return req
	}

	t.Run("completed", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateSuccess
		serv.CompleteMission(rr, newReq("2"))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateNotFound
		serv.CompleteMission(rr, newReq("9999"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestMarkNotificationReadHandler(t *testing.T) {
	mock := notificationsServiceMock{}
	serv := api.New(&api.ServicesList{
		NotificationsService: &mock,
	})

	newReq := func(id string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/"+id+"/read", nil)
		req.SetPathValue("id", id)
		return req
	}

	t.Run("marked", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateSuccess
		serv.MarkNotificationRead(rr, newReq("1"))
		assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateNotFound
		serv.MarkNotificationRead(rr, newReq("9999"))
		assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
	})
}

func TestGetKPIHandler(t *testing.T) {
	mock := reportsServiceMock{}
	serv := api.New(&api.ServicesList{
		ReportsService: &mock,
	})

	t.Run("provided", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateSuccess
		serv.GetKPI(rr, httptest.NewRequest(http.MethodGet, "/api/v1/kpi", nil))
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)

		var kpi entity.KPIData
		err := sonic.ConfigDefault.NewDecoder(rr.Result().Body).Decode(&kpi)
		assert.NoError(t, err)
		assert.Equal(t, store.DefaultSeed().KPI.Revenue, kpi.Revenue)
	})

	t.Run("service error", func(t *testing.T) {
		rr := httptest.NewRecorder()
		mock.state = stateServiceError
		serv.GetKPI(rr, httptest.NewRequest(http.MethodGet, "/api/v1/kpi", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}
