package entity

import "time"

type WasteCategory string

const (
	CategoryPlastic WasteCategory = "plastik"
	CategoryPaper   WasteCategory = "kertas"
	CategoryOrganic WasteCategory = "organik"
	CategoryMetal   WasteCategory = "logam"
	CategoryGlass   WasteCategory = "kaca"
)

type RequestType string

const (
	RequestTypePickup  RequestType = "pickup"
	RequestTypeDeposit RequestType = "deposit"
)

type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusConfirmed  RequestStatus = "confirmed"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
	StatusCancelled  RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions may leave the status.
func (s RequestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether next is a legal successor of s. Intermediate
// steps of the happy path may be skipped. Re-entering the same status is
// allowed and treated as a patch-only update by the service layer.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusInProgress ||
			next == StatusCompleted || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusInProgress || next == StatusCompleted || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}

type NotificationType string

const (
	NotificationInfo        NotificationType = "info"
	NotificationSuccess     NotificationType = "success"
	NotificationAchievement NotificationType = "achievement"
	NotificationWarning     NotificationType = "warning"
	NotificationError       NotificationType = "error"
)

type StockStatus string

const (
	StockReadyToSell StockStatus = "ready_to_sell"
	StockProcessing  StockStatus = "processing"
	StockProcessed   StockStatus = "processed"
)

type SaleStatus string

const (
	SaleCompleted SaleStatus = "completed"
	SalePending   SaleStatus = "pending"
)

type Badge struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Achieved    bool       `json:"achieved"`
	AchievedAt  *time.Time `json:"achieved_at,omitempty"`
	Requirement string     `json:"requirement,omitempty"`
}

// WasteStats accumulates per-category deposit weights for one user. CO2SavedKg
// and TreesEquivalent are derived from TotalKg and recomputed on every update.
type WasteStats struct {
	TotalKg         float64 `json:"total_kg"`
	PlasticKg       float64 `json:"plastic_kg"`
	PaperKg         float64 `json:"paper_kg"`
	OrganicKg       float64 `json:"organic_kg"`
	MetalKg         float64 `json:"metal_kg"`
	OtherKg         float64 `json:"other_kg"`
	CO2SavedKg      float64 `json:"co2_saved_kg"`
	TreesEquivalent float64 `json:"trees_equivalent"`
}

type User struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	Phone   string     `json:"phone"`
	Address string     `json:"address"`
	Points  int        `json:"points"`
	Level   int        `json:"level"`
	Badges  []Badge    `json:"badges"`
	Stats   WasteStats `json:"statistics"`
}

func (u User) Clone() User {
	c := u
	c.Badges = make([]Badge, len(u.Badges))
	copy(c.Badges, u.Badges)
	return c
}

type Mission struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Target      float64       `json:"target"`
	Current     float64       `json:"current"`
	Unit        string        `json:"unit"`
	Points      int           `json:"points"`
	Completed   bool          `json:"completed"`
	Deadline    time.Time     `json:"deadline"`
	Category    WasteCategory `json:"category"`
}

type Request struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id"`
	UserName    string        `json:"user_name"`
	UserAddress string        `json:"user_address"`
	UserPhone   string        `json:"user_phone"`
	Type        RequestType   `json:"type"`
	Category    WasteCategory `json:"waste_type"`
	EstimatedKg float64       `json:"estimated_weight"`
	ActualKg    *float64      `json:"actual_weight,omitempty"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Status      RequestStatus `json:"status"`
	Notes       string        `json:"notes"`
	CreatedAt   time.Time     `json:"created_at"`
	VerifiedAt  *time.Time    `json:"verified_at,omitempty"`
	VerifiedBy  string        `json:"verified_by,omitempty"`
	Points      int           `json:"points"`
	Photos      []string      `json:"photos"`
}

func (r Request) Clone() Request {
	c := r
	if r.ActualKg != nil {
		kg := *r.ActualKg
		c.ActualKg = &kg
	}
	if r.VerifiedAt != nil {
		at := *r.VerifiedAt
		c.VerifiedAt = &at
	}
	c.Photos = make([]string, len(r.Photos))
	copy(c.Photos, r.Photos)
	return c
}

// Weight is the kilogram amount used for reward calculation: the verified
// actual weight when present, the member's estimate otherwise.
func (r Request) Weight() float64 {
	if r.ActualKg != nil {
		return *r.ActualKg
	}
	return r.EstimatedKg
}

type Notification struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

type WasteStock struct {
	ID          int64         `json:"id"`
	Category    WasteCategory `json:"category"`
	WeightKg    float64       `json:"weight"`
	Unit        string        `json:"unit"`
	PricePerKg  int64         `json:"price_per_kg"`
	TotalValue  int64         `json:"total_value"`
	LastUpdated time.Time     `json:"last_updated"`
	Status      StockStatus   `json:"status"`
}

type SalesTransaction struct {
	ID          int64         `json:"id"`
	Date        time.Time     `json:"date"`
	Category    WasteCategory `json:"category"`
	WeightKg    float64       `json:"weight"`
	PricePerKg  int64         `json:"price_per_kg"`
	TotalAmount int64         `json:"total_amount"`
	Buyer       string        `json:"buyer"`
	Status      SaleStatus    `json:"status"`
}

type LeaderboardEntry struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Level  int    `json:"level"`
	Badge  string `json:"badge"`
}

type MonthlyTrendPoint struct {
	Month   string  `json:"month"`
	WasteKg float64 `json:"waste"`
	Revenue int64   `json:"revenue"`
}

// KPIData is the aggregate block shown on the facility-manager dashboard.
type KPIData struct {
	TotalWasteCollectedKg float64                   `json:"total_waste_collected"`
	MonthlyTargetKg       float64                   `json:"monthly_target"`
	ActiveUsers           int                       `json:"active_users"`
	NewUsersThisWeek      int                       `json:"new_users_this_week"`
	CompletedPickups      int                       `json:"completed_pickups"`
	TotalPickups          int                       `json:"total_pickups"`
	Revenue               int64                     `json:"revenue"`
	WasteByCategory       map[WasteCategory]float64 `json:"waste_by_category"`
	MonthlyTrend          []MonthlyTrendPoint       `json:"monthly_trend"`
}

func (k KPIData) Clone() KPIData {
	c := k
	c.WasteByCategory = make(map[WasteCategory]float64, len(k.WasteByCategory))
	for cat, kg := range k.WasteByCategory {
		c.WasteByCategory[cat] = kg
	}
	c.MonthlyTrend = make([]MonthlyTrendPoint, len(k.MonthlyTrend))
	copy(c.MonthlyTrend, k.MonthlyTrend)
	return c
}

type RegisteredUser struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	RegisteredAt time.Time `json:"registered_at"`
	TotalWasteKg float64   `json:"total_waste"`
	TotalPoints  int       `json:"total_points"`
	Level        int       `json:"level"`
	Status       string    `json:"status"`
	LastActivity time.Time `json:"last_activity"`
}

// CategoryInfo is the static metadata of one waste category, including the
// reward rate used when a deposit in that category is verified.
type CategoryInfo struct {
	ID          WasteCategory `json:"id"`
	Name        string        `json:"name"`
	Icon        string        `json:"icon"`
	Color       string        `json:"color"`
	Description string        `json:"description"`
	PointsPerKg int           `json:"points_per_kg"`
}
