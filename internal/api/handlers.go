package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/service"
	"github.com/eresik/eresik/pkg/entity"
	"github.com/eresik/eresik/pkg/httputil"
)

type CreateRequestRequest struct {
	UserID      int64     `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserAddress string    `json:"user_address"`
	UserPhone   string    `json:"user_phone"`
	Type        string    `json:"type"`
	Category    string    `json:"waste_type"`
	EstimatedKg float64   `json:"estimated_weight"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Notes       string    `json:"notes"`
}

type UpdateRequestStatusRequest struct {
	Status     string   `json:"status"`
	ActualKg   *float64 `json:"actual_weight"`
	Notes      *string  `json:"notes"`
	VerifiedBy *string  `json:"verified_by"`
	Photos     []string `json:"photos"`
}

type GetRequestsResponse struct {
	Requests []entity.Request `json:"requests"`
}

type GetUserRequestsResponse struct {
	UserID   int64            `json:"user_id"`
	Requests []entity.Request `json:"requests"`
}

type GetMissionsResponse struct {
	Missions []entity.Mission `json:"missions"`
}

type GetNotificationsResponse struct {
	UnreadCount   int                   `json:"unread_count"`
	Notifications []entity.Notification `json:"notifications"`
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) CreateRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req CreateRequestRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create request error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	created, err := s.requestsService.Create(ctx, &service.CreateRequestInput{
		UserID:      req.UserID,
		UserName:    req.UserName,
		UserAddress: req.UserAddress,
		UserPhone:   req.UserPhone,
		Type:        entity.RequestType(req.Type),
		Category:    entity.WasteCategory(req.Category),
		EstimatedKg: req.EstimatedKg,
		ScheduledAt: req.ScheduledAt,
		Notes:       req.Notes,
	})
	if err != nil {
		logger.Error("create request error: validation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request payload", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, created)
	logger.Info("request created", slog.Int64("request_id", created.ID))
}

func (s *Server) GetRequests(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	requests, err := s.requestsService.List(ctx)
	if err != nil {
		logger.Error("getting requests list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting requests list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetRequestsResponse{Requests: requests})
	logger.Info("requests provided")
}

func (s *Server) GetRequest(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("get request error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	req, err := s.requestsService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			logger.Error("get request error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "request doesn't exist", nil)
			return
		}
		logger.Error("get request error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting request", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, req)
}

func (s *Server) UpdateRequestStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("update request status error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request id in path value", nil)
		return
	}
	var req UpdateRequestStatusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update request status error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	status := entity.RequestStatus(req.Status)
	if !status.Valid() {
		logger.Error("update request status error: unknown status", slog.String("status", req.Status))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "unknown request status", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	updated, err := s.requestsService.UpdateStatus(ctx, id, status, service.RequestPatch{
		ActualKg:   req.ActualKg,
		Notes:      req.Notes,
		VerifiedBy: req.VerifiedBy,
		Photos:     req.Photos,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrRequestNotFound):
			logger.Error("update request status error: unexist request")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "request doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrInvalidTransition):
			logger.Error("update request status error: transition not allowed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "status transition not allowed", nil)
		default:
			logger.Error("update request status error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating request", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, updated)
	logger.Info("request status updated",
		slog.Int64("request_id", updated.ID),
		slog.String("status", string(updated.Status)))
}

func (s *Server) GetUserRequests(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := pathID(r)
	if err != nil {
		logger.Error("get user requests error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid user id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	requests, err := s.requestsService.ByUser(ctx, uid)
	if err != nil {
		logger.Error("getting user requests error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting user requests", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetUserRequestsResponse{
		UserID:   uid,
		Requests: requests,
	})
}

func (s *Server) GetMissions(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	missions, err := s.missionsService.List(ctx)
	if err != nil {
		logger.Error("getting missions list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting missions list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetMissionsResponse{Missions: missions})
}

func (s *Server) CompleteMission(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("complete mission error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid mission id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	mission, err := s.missionsService.Complete(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrMissionNotFound) {
			logger.Error("complete mission error: unexist mission")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "mission doesn't exist", nil)
			return
		}
		logger.Error("complete mission error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing mission", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, mission)
	logger.Info("mission completed", slog.Int64("mission_id", mission.ID))
}

func (s *Server) GetNotifications(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	notifications, err := s.notificationsService.List(ctx)
	if err != nil {
		logger.Error("getting notifications error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting notifications", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetNotificationsResponse{
		UnreadCount:   s.notificationsService.UnreadCount(ctx),
		Notifications: notifications,
	})
}

func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("mark notification error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid notification id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.notificationsService.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNotificationNotFound) {
			logger.Error("mark notification error: unexist notification")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "notification doesn't exist", nil)
			return
		}
		logger.Error("mark notification error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while marking notification", nil)
		return
	}
	httputil.WriteNoContent(w)
}

func (s *Server) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	s.notificationsService.MarkAllRead(ctx)
	httputil.WriteNoContent(w)
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	httputil.WriteJSONResponse(w, http.StatusOK, s.rewardsService.Profile(ctx))
}

func (s *Server) AwardBadge(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := pathID(r)
	if err != nil {
		logger.Error("award badge error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid badge id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.rewardsService.AwardBadge(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrBadgeNotFound) {
			logger.Error("award badge error: unexist badge")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "badge doesn't exist", nil)
			return
		}
		logger.Error("award badge error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while awarding badge", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("badge awarded", slog.Int64("badge_id", id))
}
