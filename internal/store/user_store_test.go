package store

import (
	"testing"
	"time"
)

func TestCreateUserAssignsIDAndReferralCode(t *testing.T) {
	s := New()
	user := s.CreateUser(UserInput{Username: "alice", Email: "alice@x.com", Password: "pw123456"})
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}
	if user.ReferralCode != "ALICE1" {
		t.Fatalf("expected referral code ALICE1, got %s", user.ReferralCode)
	}
	if user.RewardsPoints != 0 || user.TotalTradingVolume != 0 {
		t.Fatalf("expected zero aggregates, got %+v", user)
	}
	stored, ok := s.GetUser(user.ID)
	if !ok {
		t.Fatal("expected to find created user")
	}
	if stored != user {
		t.Fatalf("round trip mismatch: %+v vs %+v", stored, user)
	}
}

func TestCreateUserIDsAreMonotonic(t *testing.T) {
	s := New()
	first := s.CreateUser(UserInput{Username: "first", Email: "first@x.com"})
	second := s.CreateUser(UserInput{Username: "second", Email: "second@x.com"})
	if second.ID <= first.ID {
		t.Fatalf("expected monotonic ids, got %d then %d", first.ID, second.ID)
	}
}

func TestReferralCodeTruncatesLongUsernames(t *testing.T) {
	s := New()
	user := s.CreateUser(UserInput{Username: "cryptowhale", Email: "w@x.com"})
	if user.ReferralCode != "CRYPTO1" {
		t.Fatalf("expected CRYPTO1, got %s", user.ReferralCode)
	}
}

func TestGetUserMissing(t *testing.T) {
	s := New()
	if _, ok := s.GetUser(42); ok {
		t.Fatal("expected missing user")
	}
}

func TestUpdateUserMergesPartialFields(t *testing.T) {
	s := New()
	s.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	user := s.CreateUser(UserInput{Username: "alice", Email: "alice@x.com", Password: "pw123456"})
	s.now = func() time.Time { return time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC) }

	email := "new@x.com"
	updated, ok := s.UpdateUser(user.ID, UserUpdate{Email: &email})
	if !ok {
		t.Fatal("expected update to find user")
	}
	if updated.Email != "new@x.com" {
		t.Fatalf("expected merged email, got %s", updated.Email)
	}
	if updated.Password != "pw123456" || updated.Username != "alice" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatal("expected updated_at to be restamped")
	}
}

func TestUpdateUserMissing(t *testing.T) {
	s := New()
	email := "x@x.com"
	if _, ok := s.UpdateUser(9, UserUpdate{Email: &email}); ok {
		t.Fatal("expected update on absent id to report not found")
	}
}

func TestFindUserLookups(t *testing.T) {
	s := New()
	user := s.CreateUser(UserInput{Username: "alice", Email: "alice@x.com", WalletAddress: "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"})
	s.CreateUser(UserInput{Username: "bob", Email: "bob@x.com"})

	if found, ok := s.FindUserByUsername("alice"); !ok || found.ID != user.ID {
		t.Fatalf("username lookup failed: %v %v", found, ok)
	}
	if found, ok := s.FindUserByEmail("alice@x.com"); !ok || found.ID != user.ID {
		t.Fatalf("email lookup failed: %v %v", found, ok)
	}
	if found, ok := s.FindUserByWalletAddress("3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"); !ok || found.ID != user.ID {
		t.Fatalf("wallet lookup failed: %v %v", found, ok)
	}
	if _, ok := s.FindUserByUsername("carol"); ok {
		t.Fatal("expected miss for unknown username")
	}
	if _, ok := s.FindUserByWalletAddress(""); ok {
		t.Fatal("empty wallet address must never match")
	}
}

func TestResetPasswordFlow(t *testing.T) {
	s := New()
	s.CreateUser(UserInput{Username: "alice", Email: "alice@x.com", Password: "pw123456"})

	token, ok := s.GenerateResetToken("alice@x.com")
	if !ok || token == "" {
		t.Fatalf("expected token, got %q %v", token, ok)
	}
	if !s.ResetPassword(token, "newpw12345") {
		t.Fatal("expected reset with live token to succeed")
	}
	user, _ := s.FindUserByEmail("alice@x.com")
	if user.Password != "newpw12345" {
		t.Fatalf("password not overwritten: %s", user.Password)
	}
	// Token is single use.
	if s.ResetPassword(token, "another123") {
		t.Fatal("expected second reset with same token to fail")
	}
}

func TestResetPasswordExpiredToken(t *testing.T) {
	s := New()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return base }
	s.CreateUser(UserInput{Username: "alice", Email: "alice@x.com", Password: "pw123456"})

	token, _ := s.GenerateResetToken("alice@x.com")
	s.now = func() time.Time { return base.Add(61 * time.Minute) }
	if s.ResetPassword(token, "newpw12345") {
		t.Fatal("expected reset with expired token to fail")
	}
}

func TestGenerateResetTokenUnknownEmail(t *testing.T) {
	s := New()
	if _, ok := s.GenerateResetToken("nobody@x.com"); ok {
		t.Fatal("expected miss for unknown email")
	}
}

func TestTopUsersByRewardsPoints(t *testing.T) {
	s := New()
	a := s.CreateUser(UserInput{Username: "a", Email: "a@x.com"})
	b := s.CreateUser(UserInput{Username: "b", Email: "b@x.com"})
	c := s.CreateUser(UserInput{Username: "c", Email: "c@x.com"})
	s.CreateRewardsEvent(RewardsEventInput{UserID: a.ID, EventType: "promo", Points: 150})
	s.CreateRewardsEvent(RewardsEventInput{UserID: b.ID, EventType: "promo", Points: 2000})
	s.CreateRewardsEvent(RewardsEventInput{UserID: c.ID, EventType: "promo", Points: 50})

	top := s.TopUsersByRewardsPoints(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 users, got %d", len(top))
	}
	if top[0].ID != b.ID || top[1].ID != a.ID {
		t.Fatalf("unexpected order: %d, %d", top[0].ID, top[1].ID)
	}
}

func TestTopUsersTieBreakLowerID(t *testing.T) {
	s := New()
	a := s.CreateUser(UserInput{Username: "a", Email: "a@x.com"})
	b := s.CreateUser(UserInput{Username: "b", Email: "b@x.com"})
	s.CreateRewardsEvent(RewardsEventInput{UserID: a.ID, Points: 100})
	s.CreateRewardsEvent(RewardsEventInput{UserID: b.ID, Points: 100})

	top := s.TopUsersByRewardsPoints(2)
	if top[0].ID != a.ID {
		t.Fatalf("expected lower id first on tie, got %d", top[0].ID)
	}
}

func TestTopUsersByTradingVolume(t *testing.T) {
	s := New()
	a := s.CreateUser(UserInput{Username: "a", Email: "a@x.com"})
	b := s.CreateUser(UserInput{Username: "b", Email: "b@x.com"})
	buy := s.CreateOrder(OrderInput{UserID: b.ID, TradingPairID: 1, Type: "limit", Side: "buy", Price: 10, Amount: 5})
	sell := s.CreateOrder(OrderInput{UserID: a.ID, TradingPairID: 1, Type: "limit", Side: "sell", Price: 10, Amount: 5})
	s.ApplyTrade(TradeInput{BuyOrderID: buy.ID, SellOrderID: sell.ID, TradingPairID: 1, Price: 10, Amount: 5, TotalValue: 50})

	top := s.TopUsersByTradingVolume(1)
	if len(top) != 1 || top[0].TotalTradingVolume != 50 {
		t.Fatalf("unexpected leaderboard: %+v", top)
	}
	// Both traded the same value, lower id wins the tie at full length.
	all := s.TopUsersByTradingVolume(0)
	if len(all) != 2 || all[0].ID != a.ID {
		t.Fatalf("unexpected tie-break: %+v", all)
	}
}
