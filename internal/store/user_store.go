package store

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"tokensite/internal/models"

	"github.com/google/uuid"
)

type UserInput struct {
	Username      string
	Email         string
	Password      string
	WalletAddress string
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Email            *string
	Password         *string
	WalletAddress    *string
	TwoFactorEnabled *bool
}

func (s *Store) CreateUser(input UserInput) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	user := &models.User{
		ID:            nextID(&s.userSeq),
		Username:      input.Username,
		Email:         input.Email,
		Password:      input.Password,
		WalletAddress: input.WalletAddress,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	user.ReferralCode = referralCode(user.Username, user.ID)
	s.users[user.ID] = user
	return *user
}

func (s *Store) GetUser(id int64) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	return *user, true
}

func (s *Store) UpdateUser(id int64, update UserUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return models.User{}, false
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.Password != nil {
		user.Password = *update.Password
	}
	if update.WalletAddress != nil {
		user.WalletAddress = *update.WalletAddress
	}
	if update.TwoFactorEnabled != nil {
		user.TwoFactorEnabled = *update.TwoFactorEnabled
	}
	user.UpdatedAt = s.now()
	return *user, true
}

func (s *Store) FindUserByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			return *user, true
		}
	}
	return models.User{}, false
}

func (s *Store) FindUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			return *user, true
		}
	}
	return models.User{}, false
}

func (s *Store) FindUserByWalletAddress(address string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.WalletAddress != "" && user.WalletAddress == address {
			return *user, true
		}
	}
	return models.User{}, false
}

// GenerateResetToken fabricates a reset token with a one hour expiry and
// stores it on the user behind the given email. Delivery of the token is the
// caller's concern.
func (s *Store) GenerateResetToken(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			expiry := s.now().Add(time.Hour)
			user.ResetToken = uuid.NewString()
			user.ResetTokenExpiry = &expiry
			return user.ResetToken, true
		}
	}
	return "", false
}

// ResetPassword overwrites the password of the user holding a live matching
// token and clears the token. It reports whether a match was found.
func (s *Store) ResetPassword(token, newPassword string) bool {
	if token == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ResetToken != token {
			continue
		}
		if user.ResetTokenExpiry == nil || s.now().After(*user.ResetTokenExpiry) {
			return false
		}
		user.Password = newPassword
		user.ResetToken = ""
		user.ResetTokenExpiry = nil
		user.UpdatedAt = s.now()
		return true
	}
	return false
}

// TopUsersByRewardsPoints returns up to limit users ordered by points
// descending; ties go to the lower id.
func (s *Store) TopUsersByRewardsPoints(limit int) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topUsers(limit, func(a, b *models.User) bool {
		if a.RewardsPoints != b.RewardsPoints {
			return a.RewardsPoints > b.RewardsPoints
		}
		return a.ID < b.ID
	})
}

// TopUsersByTradingVolume returns up to limit users ordered by volume
// descending; ties go to the lower id.
func (s *Store) TopUsersByTradingVolume(limit int) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.topUsers(limit, func(a, b *models.User) bool {
		if a.TotalTradingVolume != b.TotalTradingVolume {
			return a.TotalTradingVolume > b.TotalTradingVolume
		}
		return a.ID < b.ID
	})
}

func (s *Store) topUsers(limit int, less func(a, b *models.User) bool) []models.User {
	ranked := make([]*models.User, 0, len(s.users))
	for _, user := range s.users {
		ranked = append(ranked, user)
	}
	sort.Slice(ranked, func(i, j int) bool { return less(ranked[i], ranked[j]) })
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	users := make([]models.User, 0, len(ranked))
	for _, user := range ranked {
		users = append(users, *user)
	}
	return users
}

func referralCode(username string, id int64) string {
	prefix := username
	if len(prefix) > 6 {
		prefix = prefix[:6]
	}
	return strings.ToUpper(prefix) + strconv.FormatInt(id, 10)
}
