package store

import (
	"time"

	"github.com/eresik/eresik/pkg/entity"
)

// Seed is the initial dataset a session starts from. DefaultSeed builds a
// fresh copy on every call so that two stores never share backing slices.
type Seed struct {
	User            entity.User
	Missions        []entity.Mission
	Requests        []entity.Request
	Notifications   []entity.Notification
	Stock           []entity.WasteStock
	Sales           []entity.SalesTransaction
	Leaderboard     []entity.LeaderboardEntry
	KPI             entity.KPIData
	RegisteredUsers []entity.RegisteredUser
	Categories      []entity.CategoryInfo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func ptrF(v float64) *float64 { return &v }

func ptrT(t time.Time) *time.Time { return &t }

func DefaultSeed() *Seed {
	return &Seed{
		User: entity.User{
			ID:      1,
			Name:    "Wildan Lucu",
			Email:   "budi@email.com",
			Phone:   "08123456789",
			Address: "Jl. Merdeka No. 123, Jakarta",
			Points:  120,
			Level:   2,
			Badges: []entity.Badge{
				{ID: 1, Name: "Pemilah Sampah Pemula", Icon: "🗂️", Achieved: true, AchievedAt: ptrT(day(2025, 1, 15))},
				{ID: 2, Name: "Setoran Rutin", Icon: "📅", Achieved: true, AchievedAt: ptrT(day(2025, 1, 20))},
				{ID: 3, Name: "Pahlawan Daur Ulang", Icon: "♻️", Requirement: "Kumpulkan 50kg sampah"},
				{ID: 4, Name: "Eco Warrior", Icon: "🌱", Requirement: "Selesaikan 20 misi"},
				{ID: 5, Name: "Community Leader", Icon: "👑", Requirement: "Ajak 10 warga baru"},
			},
			Stats: entity.WasteStats{
				TotalKg:         45.5,
				PlasticKg:       18.2,
				PaperKg:         12.3,
				OrganicKg:       10.5,
				MetalKg:         2.8,
				OtherKg:         1.7,
				CO2SavedKg:      23.4,
				TreesEquivalent: 1.2,
			},
		},
		Missions: []entity.Mission{
			{
				ID:          1,
				Title:       "Kumpulkan 5 kg plastik",
				Description: "Kumpulkan botol plastik, kemasan makanan, dan plastik lainnya",
				Target:      5,
				Current:     5,
				Unit:        "kg",
				Points:      50,
				Completed:   true,
				Deadline:    day(2025, 8, 7),
				Category:    entity.CategoryPlastic,
			},
			{
				ID:          2,
				Title:       "Daur ulang 10 botol kaca",
				Description: "Kumpulkan botol kaca bekas minuman atau makanan",
				Target:      10,
				Current:     6,
				Unit:        "botol",
				Points:      30,
				Deadline:    day(2025, 8, 7),
				Category:    entity.CategoryGlass,
			},
			{
				ID:          3,
				Title:       "Setor sampah organik 3kg",
				Description: "Kumpulkan sisa makanan, daun, dan sampah organik lainnya",
				Target:      3,
				Current:     1.5,
				Unit:        "kg",
				Points:      40,
				Deadline:    day(2025, 8, 7),
				Category:    entity.CategoryOrganic,
			},
			{
				ID:          4,
				Title:       "Ajak 2 tetangga bergabung",
				Description: "Undang tetangga untuk ikut program e-Resik",
				Target:      2,
				Current:     0,
				Unit:        "orang",
				Points:      100,
				Deadline:    day(2025, 8, 7),
				Category:    "komunitas",
			},
		},
		Requests: []entity.Request{
			{
				ID:          1,
				UserID:      1,
				UserName:    "Wildan Lucu",
				UserAddress: "Jl. Merdeka No. 123",
				UserPhone:   "08123456789",
				Type:        entity.RequestTypePickup,
				Category:    entity.CategoryPlastic,
				EstimatedKg: 3,
				ScheduledAt: at(2025, 8, 1, 8, 0),
				Status:      entity.StatusPending,
				Notes:       "Botol plastik dan kemasan makanan",
				CreatedAt:   at(2025, 7, 30, 10, 30),
				Photos:      []string{},
			},
			{
				ID:          2,
				UserID:      2,
				UserName:    "Amdadur Ganteng",
				UserAddress: "Jl. Sudirman No. 456",
				UserPhone:   "08234567890",
				Type:        entity.RequestTypePickup,
				Category:    entity.CategoryOrganic,
				EstimatedKg: 5,
				ActualKg:    ptrF(4.5),
				ScheduledAt: at(2025, 8, 1, 10, 0),
				Status:      entity.StatusCompleted,
				Notes:       "Sisa sayuran dan buah-buahan",
				CreatedAt:   at(2025, 7, 29, 14, 20),
				VerifiedAt:  ptrT(at(2025, 8, 1, 10, 30)),
				VerifiedBy:  "Pengelola A",
				Points:      45,
				Photos:      []string{"/api/placeholder/200/150"},
			},
			{
				ID:          3,
				UserID:      3,
				UserName:    "Rohman Menggemaskan",
				UserAddress: "Jl. Gatot Subroto No. 789",
				UserPhone:   "08345678901",
				Type:        entity.RequestTypeDeposit,
				Category:    entity.CategoryPaper,
				EstimatedKg: 2,
				ActualKg:    ptrF(1.8),
				ScheduledAt: at(2025, 8, 2, 14, 0),
				Status:      entity.StatusInProgress,
				Notes:       "Kertas koran dan kardus bekas",
				CreatedAt:   at(2025, 7, 30, 9, 15),
				Photos:      []string{},
			},
		},
		Notifications: []entity.Notification{
			{
				ID:        1,
				Title:     "Setoran Berhasil Dikonfirmasi!",
				Message:   "Setoran 4.5kg sampah organik Anda telah dikonfirmasi. +45 poin!",
				Type:      entity.NotificationSuccess,
				CreatedAt: at(2025, 8, 1, 10, 30),
			},
			{
				ID:        2,
				Title:     "Misi Mingguan Selesai!",
				Message:   "Selamat! Anda telah menyelesaikan misi 'Kumpulkan 5kg plastik'. +50 poin!",
				Type:      entity.NotificationAchievement,
				CreatedAt: at(2025, 7, 31, 16, 20),
			},
			{
				ID:        3,
				Title:     "Penjemputan Dijadwalkan",
				Message:   "Penjemputan sampah Anda dijadwalkan besok jam 08:00. Harap disiapkan.",
				Type:      entity.NotificationInfo,
				Read:      true,
				CreatedAt: at(2025, 7, 30, 18, 45),
			},
		},
		Stock: []entity.WasteStock{
			{ID: 1, Category: entity.CategoryPlastic, WeightKg: 245.5, Unit: "kg", PricePerKg: 2000, TotalValue: 491000, LastUpdated: day(2025, 8, 2), Status: entity.StockReadyToSell},
			{ID: 2, Category: entity.CategoryPaper, WeightKg: 180.2, Unit: "kg", PricePerKg: 1500, TotalValue: 270300, LastUpdated: day(2025, 8, 2), Status: entity.StockProcessing},
			{ID: 3, Category: entity.CategoryMetal, WeightKg: 45.8, Unit: "kg", PricePerKg: 8000, TotalValue: 366400, LastUpdated: day(2025, 8, 1), Status: entity.StockReadyToSell},
			{ID: 4, Category: entity.CategoryOrganic, WeightKg: 0, Unit: "kg", PricePerKg: 500, TotalValue: 0, LastUpdated: day(2025, 8, 2), Status: entity.StockProcessed},
		},
		Sales: []entity.SalesTransaction{
			{ID: 1, Date: day(2025, 7, 28), Category: entity.CategoryPlastic, WeightKg: 150, PricePerKg: 2000, TotalAmount: 300000, Buyer: "PT Daur Ulang Mandiri", Status: entity.SaleCompleted},
			{ID: 2, Date: day(2025, 7, 25), Category: entity.CategoryMetal, WeightKg: 25, PricePerKg: 8000, TotalAmount: 200000, Buyer: "CV Logam Jaya", Status: entity.SaleCompleted},
			{ID: 3, Date: day(2025, 7, 20), Category: entity.CategoryPaper, WeightKg: 200, PricePerKg: 1500, TotalAmount: 300000, Buyer: "Paper Recycling Co", Status: entity.SaleCompleted},
		},
		Leaderboard: []entity.LeaderboardEntry{
			{ID: 1, Name: "Amdadur Ganteng", Points: 180, Level: 3, Badge: "♻️"},
			{ID: 2, Name: "Rohman Menggemaskan", Points: 165, Level: 2, Badge: "🌱"},
			{ID: 3, Name: "Wildan Lucu", Points: 120, Level: 2, Badge: "📅"},
			{ID: 4, Name: "Dewi Lestari", Points: 95, Level: 1, Badge: "🗂️"},
			{ID: 5, Name: "Eko Prasetyo", Points: 78, Level: 1, Badge: "🗂️"},
		},
		KPI: entity.KPIData{
			TotalWasteCollectedKg: 1250,
			MonthlyTargetKg:       1500,
			ActiveUsers:           45,
			NewUsersThisWeek:      8,
			CompletedPickups:      156,
			TotalPickups:          164,
			Revenue:               2500000,
			WasteByCategory: map[entity.WasteCategory]float64{
				entity.CategoryPlastic: 450,
				entity.CategoryPaper:   320,
				entity.CategoryOrganic: 280,
				entity.CategoryMetal:   120,
				entity.CategoryGlass:   80,
			},
			MonthlyTrend: []entity.MonthlyTrendPoint{
				{Month: "Jan", WasteKg: 980, Revenue: 1950000},
				{Month: "Feb", WasteKg: 1120, Revenue: 2240000},
				{Month: "Mar", WasteKg: 1050, Revenue: 2100000},
				{Month: "Apr", WasteKg: 1280, Revenue: 2560000},
				{Month: "May", WasteKg: 1180, Revenue: 2360000},
				{Month: "Jun", WasteKg: 1320, Revenue: 2640000},
				{Month: "Jul", WasteKg: 1250, Revenue: 2500000},
			},
		},
		RegisteredUsers: []entity.RegisteredUser{
			{
				ID: 1, Name: "Wildan Lucu", Email: "budi@email.com", Phone: "08123456789",
				Address: "Jl. Merdeka No. 123", RegisteredAt: day(2025, 1, 15),
				TotalWasteKg: 45.5, TotalPoints: 120, Level: 2, Status: "active", LastActivity: day(2025, 7, 30),
			},
			{
				ID: 2, Name: "Amdadur Ganteng", Email: "siti@email.com", Phone: "08234567890",
				Address: "Jl. Sudirman No. 456", RegisteredAt: day(2025, 1, 10),
				TotalWasteKg: 62.3, TotalPoints: 180, Level: 3, Status: "active", LastActivity: day(2025, 8, 1),
			},
			{
				ID: 3, Name: "Rohman Menggemaskan", Email: "ahmad@email.com", Phone: "08345678901",
				Address: "Jl. Gatot Subroto No. 789", RegisteredAt: day(2025, 1, 20),
				TotalWasteKg: 58.1, TotalPoints: 165, Level: 2, Status: "active", LastActivity: day(2025, 8, 2),
			},
		},
		Categories: []entity.CategoryInfo{
			{ID: entity.CategoryPlastic, Name: "Plastik", Icon: "🥤", Color: "bg-blue-500", Description: "Botol plastik, kemasan makanan, kantong plastik", PointsPerKg: 10},
			{ID: entity.CategoryPaper, Name: "Kertas", Icon: "📄", Color: "bg-yellow-500", Description: "Koran, kardus, kertas tulis bekas", PointsPerKg: 8},
			{ID: entity.CategoryOrganic, Name: "Organik", Icon: "🥬", Color: "bg-green-500", Description: "Sisa makanan, daun, sampah dapur", PointsPerKg: 5},
			{ID: entity.CategoryMetal, Name: "Logam", Icon: "🔩", Color: "bg-gray-500", Description: "Kaleng, aluminium, besi bekas", PointsPerKg: 15},
			{ID: entity.CategoryGlass, Name: "Kaca", Icon: "🍾", Color: "bg-purple-500", Description: "Botol kaca, pecahan kaca", PointsPerKg: 12},
		},
	}
}
