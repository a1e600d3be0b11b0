package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"fitvibe/fitness-coach/internal/domain"
	"fitvibe/fitness-coach/internal/logger"
	"fitvibe/fitness-coach/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrPersistFailed = errors.New("failed to persist session state")
	ErrHashingFailed = errors.New("failed to hash password")
)

// RegisterInput carries the fields submitted by the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Weight   *float64
	Height   *float64
	Goals    []domain.Goal
}

// SavePlanInput is the payload of a save-plan operation. ID and CreatedAt are
// synthesized by the store.
type SavePlanInput struct {
	Type    domain.PlanType
	Title   string
	Content string
}

// Store is the single source of truth for who is using the app right now and
// their saved plans. Two states: anonymous (Current returns nil) and
// authenticated. Every mutation re-persists the whole user record as one JSON
// blob through the storage boundary.
//
// UpdateProfile, SavePlan and DeletePlan silently no-op in the anonymous
// state; callers gate on Current before invoking them.
type Store interface {
	// Load rehydrates the active user from storage. Absent or malformed data
	// yields the anonymous state, never an error.
	Load(ctx context.Context) error

	// Login fabricates a canonical demo profile bound to the supplied email
	// and makes it active. Credentials are never verified; any email and
	// password pair succeeds.
	Login(ctx context.Context, email, password string) (*domain.User, error)

	// Register builds a new user from submitted fields with a fresh ID and an
	// empty saved-plan collection, and makes it active. Email collisions are
	// not detected.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)

	// Logout clears the active user and erases the persisted copy. Idempotent.
	Logout(ctx context.Context) error

	// UpdateProfile merges the supplied fields into the active user.
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error

	// SavePlan appends a frozen plan snapshot to the active user's collection.
	SavePlan(ctx context.Context, input SavePlanInput) error

	// DeletePlan removes the plan with the given ID. Deleting an unknown ID
	// leaves the collection unchanged.
	DeletePlan(ctx context.Context, planID string) error

	// Current returns a copy of the active user, or nil when anonymous.
	Current() *domain.User
}

// store implements the Store interface over a SessionStorage backend.
type store struct {
	mu      sync.Mutex
	user    *domain.User
	storage storage.SessionStorage
}

// NewStore creates a session store over the given storage backend. Call Load
// before serving requests to pick up a persisted session.
func NewStore(st storage.SessionStorage) Store {
	return &store{storage: st}
}

func (s *store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.storage.Get(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("could not read persisted session, starting anonymous", "error", err)
		}
		s.user = nil
		return nil
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Corrupt blob is treated as absence, not a crash.
		logger.Warn("persisted session is malformed, starting anonymous", "error", err)
		s.user = nil
		return nil
	}

	s.user = &user
	logger.Info("session restored", "user_id", user.ID, "email", user.Email)
	return nil
}

func (s *store) Login(ctx context.Context, email, password string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// No credential verification happens here. The demo profile is fixed
	// apart from the email it is bound to.
	age := 28
	weight := 180.0
	height := 70.0
	user := &domain.User{
		ID:         "1",
		Name:       "John Doe",
		Email:      email,
		Age:        &age,
		Weight:     &weight,
		Height:     &height,
		Goals:      []domain.Goal{domain.GoalLoseWeight, domain.GoalBuildMuscle},
		SavedPlans: []domain.SavedPlan{},
	}

	s.user = user
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

func (s *store) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := &domain.User{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Email:      input.Email,
		Age:        input.Age,
		Weight:     input.Weight,
		Height:     input.Height,
		Goals:      input.Goals,
		SavedPlans: []domain.SavedPlan{},
	}

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrHashingFailed
		}
		user.PasswordHash = string(hashed)
	}

	s.user = user
	if err := s.persistLocked(ctx); err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

func (s *store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	s.user = nil
	if err := s.storage.Remove(ctx); err != nil {
		logger.Error("failed to erase persisted session", "error", err)
		return ErrPersistFailed
	}
	return nil
}

func (s *store) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	if update.Name != nil {
		s.user.Name = *update.Name
	}
	if update.Email != nil {
		s.user.Email = *update.Email
	}
	if update.Age != nil {
		s.user.Age = update.Age
	}
	if update.Weight != nil {
		s.user.Weight = update.Weight
	}
	if update.Height != nil {
		s.user.Height = update.Height
	}
	if update.Goals != nil {
		s.user.Goals = append([]domain.Goal(nil), (*update.Goals)...)
	}

	return s.persistLocked(ctx)
}

func (s *store) SavePlan(ctx context.Context, input SavePlanInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	plan := domain.SavedPlan{
		ID:        uuid.New().String(),
		Type:      input.Type,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: time.Now().UTC(),
	}
	s.user.SavedPlans = append(s.user.SavedPlans, plan)

	return s.persistLocked(ctx)
}

func (s *store) DeletePlan(ctx context.Context, planID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}

	kept := s.user.SavedPlans[:0]
	for _, p := range s.user.SavedPlans {
		if p.ID != planID {
			kept = append(kept, p)
		}
	}
	s.user.SavedPlans = kept

	return s.persistLocked(ctx)
}

func (s *store) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// persistLocked serializes the whole user record to the durable key. The
// caller must hold the mutex.
func (s *store) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(s.user)
	if err != nil {
		logger.Error("failed to serialize session state", "error", err)
		return ErrPersistFailed
	}
	if err := s.storage.Set(ctx, data); err != nil {
		logger.Error("failed to write session state", "error", err)
		return ErrPersistFailed
	}
	return nil
}
