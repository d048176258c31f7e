package store

import "tokensite/internal/models"

func (s *Store) CreateSubscriber(email string) models.Subscriber {
	s.mu.Lock()
	defer s.mu.Unlock()
	subscriber := &models.Subscriber{
		ID:           nextID(&s.subscriberSeq),
		Email:        email,
		SubscribedAt: s.now(),
		IsActive:     true,
	}
	s.subscribers[subscriber.ID] = subscriber
	return *subscriber
}

func (s *Store) FindSubscriberByEmail(email string) (models.Subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, subscriber := range s.subscribers {
		if subscriber.Email == email {
			return *subscriber, true
		}
	}
	return models.Subscriber{}, false
}

// Unsubscribe soft-deletes a subscriber; the row stays behind with the
// active flag cleared.
func (s *Store) Unsubscribe(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, subscriber := range s.subscribers {
		if subscriber.Email == email && subscriber.IsActive {
			subscriber.IsActive = false
			return true
		}
	}
	return false
}

// ReactivateSubscriber flips a soft-deleted subscriber back to active and
// refreshes the subscription time.
func (s *Store) ReactivateSubscriber(email string) (models.Subscriber, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, subscriber := range s.subscribers {
		if subscriber.Email == email {
			subscriber.IsActive = true
			subscriber.SubscribedAt = s.now()
			return *subscriber, true
		}
	}
	return models.Subscriber{}, false
}
