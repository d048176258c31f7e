package store

import (
	"sort"

	"tokensite/internal/models"
)

type RewardsEventInput struct {
	UserID      int64
	EventType   string
	Points      int64
	Description string
}

type RewardsTierInput struct {
	Name               string
	PointsRequired     int64
	TradingFeeDiscount float64
	AdditionalBenefits []string
	Icon               string
}

// CreateRewardsEvent appends a point event and increments the referenced
// user's running point total. The points value is taken as given and a
// missing user is a silent no-op; validation is the caller's concern.
func (s *Store) CreateRewardsEvent(input RewardsEventInput) models.RewardsEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	event := &models.RewardsEvent{
		ID:          nextID(&s.eventSeq),
		UserID:      input.UserID,
		EventType:   input.EventType,
		Points:      input.Points,
		Description: input.Description,
		CreatedAt:   s.now(),
	}
	s.events[event.ID] = event
	if user, ok := s.users[input.UserID]; ok {
		user.RewardsPoints += input.Points
	}
	return *event
}

func (s *Store) RewardsEventsByUser(userID int64) []models.RewardsEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := make([]models.RewardsEvent, 0)
	for _, event := range s.events {
		if event.UserID == userID {
			events = append(events, *event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events
}

func (s *Store) CreateRewardsTier(input RewardsTierInput) models.RewardsTier {
	s.mu.Lock()
	defer s.mu.Unlock()
	tier := &models.RewardsTier{
		ID:                 nextID(&s.tierSeq),
		Name:               input.Name,
		PointsRequired:     input.PointsRequired,
		TradingFeeDiscount: input.TradingFeeDiscount,
		AdditionalBenefits: input.AdditionalBenefits,
		Icon:               input.Icon,
	}
	s.tiers[tier.ID] = tier
	return *tier
}

// ListRewardsTiers returns every tier ordered by points required ascending.
func (s *Store) ListRewardsTiers() []models.RewardsTier {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tiersAscending()
}

// TierForUser derives the user's tier: the highest tier whose threshold the
// user's points meet or exceed. A tier is never stored on the user, it is
// always recomputed here. Falls back to the lowest tier when no threshold
// matches.
func (s *Store) TierForUser(userID int64) (models.RewardsTier, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return models.RewardsTier{}, false
	}
	tiers := s.tiersAscending()
	if len(tiers) == 0 {
		return models.RewardsTier{}, false
	}
	for i := len(tiers) - 1; i >= 0; i-- {
		if tiers[i].PointsRequired <= user.RewardsPoints {
			return tiers[i], true
		}
	}
	return tiers[0], true
}

func (s *Store) tiersAscending() []models.RewardsTier {
	tiers := make([]models.RewardsTier, 0, len(s.tiers))
	for _, tier := range s.tiers {
		tiers = append(tiers, *tier)
	}
	sort.Slice(tiers, func(i, j int) bool {
		if tiers[i].PointsRequired != tiers[j].PointsRequired {
			return tiers[i].PointsRequired < tiers[j].PointsRequired
		}
		return tiers[i].ID < tiers[j].ID
	})
	return tiers
}
