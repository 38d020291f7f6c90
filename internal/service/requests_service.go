package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"

	errorvalues "github.com/eresik/eresik/internal/error_values"
	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
)

type CreateRequestInput struct {
	UserID      int64                `validate:"required"`
	UserName    string               `validate:"required,max=100"`
	UserAddress string               `validate:"max=200"`
	UserPhone   string               `validate:"max=20"`
	Type        entity.RequestType   `validate:"required,oneof=pickup deposit"`
	Category    entity.WasteCategory `validate:"required"`
	EstimatedKg float64              `validate:"required,gte=0.1,lte=100"`
	ScheduledAt time.Time            `validate:"required,future"`
	Notes       string               `validate:"max=500"`
}

// RequestPatch enumerates the request fields a status update may change.
// Everything else, the status machine included, stays under service control.
type RequestPatch struct {
	ActualKg   *float64
	Notes      *string
	VerifiedBy *string
	Photos     []string
}

type RequestsService struct {
	repo     store.RequestsStoreI
	rewards  RewardsServiceI
	missions MissionsServiceI
	notifier NotificationsServiceI
	rules    *RewardRules
}

func NewRequestsService(
	requestsStore store.RequestsStoreI,
	rewards RewardsServiceI,
	missions MissionsServiceI,
	notifier NotificationsServiceI,
	rules *RewardRules,
) *RequestsService {
	if requestsStore == nil || rewards == nil || missions == nil || notifier == nil || rules == nil {
		log.Fatal("on requests service provided nil dependencies")
	}
	return &RequestsService{
		repo:     requestsStore,
		rewards:  rewards,
		missions: missions,
		notifier: notifier,
		rules:    rules,
	}
}

func (rs *RequestsService) Create(ctx context.Context, input *CreateRequestInput) (entity.Request, error) {
	err := validate.Struct(*input)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return entity.Request{}, err
		}
		return entity.Request{}, errors.New("validation unexpected error: " + err.Error())
	}
	r := rs.repo.Insert(entity.Request{
		UserID:      input.UserID,
		UserName:    input.UserName,
		UserAddress: input.UserAddress,
		UserPhone:   input.UserPhone,
		Type:        input.Type,
		Category:    input.Category,
		EstimatedKg: input.EstimatedKg,
		ScheduledAt: input.ScheduledAt,
		Status:      entity.StatusPending,
		Notes:       input.Notes,
		CreatedAt:   time.Now().UTC(),
		Photos:      []string{},
	})
	rs.notifier.Push(ctx, "Permintaan Terkirim",
		fmt.Sprintf("Permintaan %s sampah %s berhasil dikirim.", r.Type, r.Category),
		entity.NotificationInfo)
	return r, nil
}

// UpdateStatus applies a legal status transition plus the patch. The reward
// side effects run only when the request enters completed for the first
// time; re-submitting completed merges the patch and nothing else.
func (rs *RequestsService) UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus, patch RequestPatch) (entity.Request, error) {
	req, err := rs.repo.Get(id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			return entity.Request{}, err
		}
		return entity.Request{}, errors.New("requests store error: " + err.Error())
	}
	if !req.Status.CanTransitionTo(status) {
		return entity.Request{}, errorvalues.ErrInvalidTransition
	}
	wasCompleted := req.Status == entity.StatusCompleted

	if patch.ActualKg != nil {
		kg := *patch.ActualKg
		req.ActualKg = &kg
	}
	if patch.Notes != nil {
		req.Notes = *patch.Notes
	}
	if patch.VerifiedBy != nil {
		req.VerifiedBy = *patch.VerifiedBy
	}
	if patch.Photos != nil {
		req.Photos = append([]string{}, patch.Photos...)
	}
	req.Status = status

	if status == entity.StatusCompleted && !wasCompleted {
		now := time.Now().UTC()
		req.VerifiedAt = &now
		weight := req.Weight()
		req.Points = rs.rules.PointsFor(req.Category, weight)

		if err := rs.repo.Update(req); err != nil {
			return entity.Request{}, errors.New("requests store error: " + err.Error())
		}

		rs.rewards.AddPoints(ctx, req.Points)
		rs.rewards.AddWaste(ctx, req.Category, weight)
		rs.notifier.Push(ctx, "Setoran Dikonfirmasi!",
			fmt.Sprintf("Setoran %vkg %s dikonfirmasi. +%d poin!", weight, req.Category, req.Points),
			entity.NotificationSuccess)
		if err := rs.missions.AddCategoryProgress(ctx, req.Category, weight); err != nil {
			return entity.Request{}, errors.New("updating mission progress error: " + err.Error())
		}
		rs.rewards.EvaluateBadges(ctx, rs.missions.CompletedCount(ctx))
		return req, nil
	}

	if err := rs.repo.Update(req); err != nil {
		return entity.Request{}, errors.New("requests store error: " + err.Error())
	}
	return req, nil
}

func (rs *RequestsService) Get(ctx context.Context, id int64) (entity.Request, error) {
	req, err := rs.repo.Get(id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			return entity.Request{}, err
		}
		return entity.Request{}, errors.New("requests store error: " + err.Error())
	}
	return req, nil
}

func (rs *RequestsService) ByUser(ctx context.Context, uid int64) ([]entity.Request, error) {
	return rs.repo.ListByUser(uid), nil
}

func (rs *RequestsService) List(ctx context.Context) ([]entity.Request, error) {
	return rs.repo.List(), nil
}
