package service

import (
	"context"
	"log"
	"time"

	"github.com/eresik/eresik/internal/store"
	"github.com/eresik/eresik/pkg/entity"
)

type NotificationsService struct {
	repo store.NotificationsStoreI
}

func NewNotificationsService(notificationsStore store.NotificationsStoreI) *NotificationsService {
	if notificationsStore == nil {
		log.Fatal("provided nil notificationsStore")
	}
	return &NotificationsService{
		repo: notificationsStore,
	}
}

func (ns *NotificationsService) List(ctx context.Context) ([]entity.Notification, error) {
	return ns.repo.List(), nil
}

func (ns *NotificationsService) UnreadCount(ctx context.Context) int {
	return ns.repo.UnreadCount()
}

func (ns *NotificationsService) MarkRead(ctx context.Context, id int64) error {
	return ns.repo.MarkRead(id)
}

func (ns *NotificationsService) MarkAllRead(ctx context.Context) {
	ns.repo.MarkAllRead()
}

func (ns *NotificationsService) Push(ctx context.Context, title, message string, typ entity.NotificationType) entity.Notification {
	return ns.repo.Insert(entity.Notification{
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	})
}
