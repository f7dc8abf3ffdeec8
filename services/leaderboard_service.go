package services

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"sportzino-backend/models"
)

const leaderboardKey = "leaderboard:earnings"

// LeaderboardService serves the top-referrer ranking. Redis is a cache, not
// the source of truth: writes are best-effort and reads fall back to SQL when
// redis is down or not configured.
type LeaderboardService struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewLeaderboardService(db *gorm.DB, rdb *redis.Client) *LeaderboardService {
	return &LeaderboardService{DB: db, RDB: rdb}
}

type LeaderboardRow struct {
	Email    string  `json:"email"`
	Earnings float64 `json:"earnings"`
}

// BumpEarnings mirrors an earnings credit into the sorted set. Errors are
// logged and swallowed; the periodic rebuild repairs any drift.
func (s *LeaderboardService) BumpEarnings(email string, delta float64) {
	if s.RDB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.RDB.ZIncrBy(ctx, leaderboardKey, delta, email).Err(); err != nil {
		log.Printf("leaderboard bump failed for %s: %v", email, err)
	}
}

// Top returns the highest-earning referrers. Redis first, SQL on any miss.
func (s *LeaderboardService) Top(limit int) ([]LeaderboardRow, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if s.RDB != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		entries, err := s.RDB.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
		if err == nil && len(entries) > 0 {
			rows := make([]LeaderboardRow, len(entries))
			for i, e := range entries {
				rows[i] = LeaderboardRow{Email: e.Member.(string), Earnings: e.Score}
			}
			return rows, nil
		}
		if err != nil {
			log.Printf("leaderboard redis read failed, falling back to SQL: %v", err)
		}
	}
	return s.topFromSQL(limit)
}

func (s *LeaderboardService) topFromSQL(limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := s.DB.Model(&models.User{}).
		Select("email, earnings").
		Where("earnings > 0").
		Order("earnings DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// Rebuild replaces the sorted set from the users table. Called periodically
// by the scheduler so the cache converges even if bumps were lost.
func (s *LeaderboardService) Rebuild(ctx context.Context) error {
	if s.RDB == nil {
		return nil
	}
	var users []models.User
	if err := s.DB.Select("email, earnings").Where("earnings > 0").Find(&users).Error; err != nil {
		return err
	}
	members := make([]redis.Z, len(users))
	for i, u := range users {
		members[i] = redis.Z{Member: u.Email, Score: u.Earnings}
	}

	pipe := s.RDB.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, leaderboardKey, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
