package service

import (
	"context"

	"github.com/eresik/eresik/pkg/entity"
)

type RequestsServiceI interface {
	// Validates the payload, stores a new pending request and emits an
	// informational notification. Returns the stored request with its id.
	Create(ctx context.Context, input *CreateRequestInput) (entity.Request, error)
	// Moves a request through its status machine, applying the patch.
	// Entering completed triggers the reward side effects exactly once.
	UpdateStatus(ctx context.Context, id int64, status entity.RequestStatus, patch RequestPatch) (entity.Request, error)
	Get(ctx context.Context, id int64) (entity.Request, error)
	// Lists requests owned by user uid
	ByUser(ctx context.Context, uid int64) ([]entity.Request, error)
	// Lists every request, for the facility-manager console
	List(ctx context.Context) ([]entity.Request, error)
}

type MissionsServiceI interface {
	List(ctx context.Context) ([]entity.Mission, error)
	// Marks a mission completed, awarding its points once. No-op when the
	// mission is already completed.
	Complete(ctx context.Context, id int64) (entity.Mission, error)
	// Stores a new progress value clamped to the mission target
	SetProgress(ctx context.Context, id int64, value float64) (entity.Mission, error)
	// Raises progress of every active mission of the category, completing
	// those that reach their target
	AddCategoryProgress(ctx context.Context, cat entity.WasteCategory, weightKg float64) error
	CompletedCount(ctx context.Context) int
}

type RewardsServiceI interface {
	Profile(ctx context.Context) entity.User
	// Adds points and recomputes the level, which never decreases
	AddPoints(ctx context.Context, points int) entity.User
	// Adds verified weight to the matching category statistic and the
	// total, recomputing the derived environmental savings
	AddWaste(ctx context.Context, cat entity.WasteCategory, weightKg float64) entity.User
	// Flips a badge achieved, stamping its date once. Idempotent.
	AwardBadge(ctx context.Context, badgeID int64) (entity.User, error)
	// Re-checks the badge thresholds after points, waste or missions moved
	EvaluateBadges(ctx context.Context, completedMissions int)
}

type NotificationsServiceI interface {
	List(ctx context.Context) ([]entity.Notification, error)
	UnreadCount(ctx context.Context) int
	// Monotonic read-flag flip, errors on unknown id with state untouched
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context)
	Push(ctx context.Context, title, message string, typ entity.NotificationType) entity.Notification
}

type InventoryServiceI interface {
	Stock(ctx context.Context) ([]entity.WasteStock, error)
	Sales(ctx context.Context) ([]entity.SalesTransaction, error)
	// Records a sale against the category's stock, decrementing its weight
	RecordSale(ctx context.Context, input *RecordSaleInput) (entity.SalesTransaction, error)
}

type ReportsServiceI interface {
	Leaderboard(ctx context.Context) ([]entity.LeaderboardEntry, error)
	KPI(ctx context.Context) (entity.KPIData, error)
	RegisteredUsers(ctx context.Context) ([]entity.RegisteredUser, error)
	Categories(ctx context.Context) ([]entity.CategoryInfo, error)
}
