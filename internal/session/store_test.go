package session_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"fitvibe/fitness-coach/internal/domain"
	"fitvibe/fitness-coach/internal/session"
	"fitvibe/fitness-coach/internal/storage"
)

// memStorage is an in-memory SessionStorage that records how it was used.
type memStorage struct {
	data    []byte
	present bool
	sets    int
	removes int
}

func (m *memStorage) Get(_ context.Context) ([]byte, error) {
	if !m.present {
		return nil, storage.ErrNotFound
	}
	return m.data, nil
}

func (m *memStorage) Set(_ context.Context, data []byte) error {
	m.data = append([]byte(nil), data...)
	m.present = true
	m.sets++
	return nil
}

func (m *memStorage) Remove(_ context.Context) error {
	m.data = nil
	m.present = false
	m.removes++
	return nil
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func registerAna(c *qt.C, store session.Store) *domain.User {
	user, err := store.Register(context.Background(), session.RegisterInput{
		Name:     "Ana",
		Email:    "a@x.com",
		Password: "password",
		Age:      intPtr(30),
		Weight:   floatPtr(140),
		Height:   floatPtr(65),
		Goals:    []domain.Goal{domain.GoalLoseWeight},
	})
	c.Assert(err, qt.IsNil)
	return user
}

func TestRegister_CreatesActiveUser(t *testing.T) {
	c := qt.New(t)
	mem := &memStorage{}
	store := session.NewStore(mem)

	user := registerAna(c, store)

	c.Assert(user.ID, qt.Not(qt.Equals), "")
	c.Assert(user.Email, qt.Equals, "a@x.com")
	c.Assert(user.SavedPlans, qt.HasLen, 0)
	c.Assert(user.PasswordHash, qt.Not(qt.Equals), "password") // hashed, never plain

	c.Assert(mem.present, qt.IsTrue)
	c.Assert(store.Current().ID, qt.Equals, user.ID)
}

func TestLogin_FabricatesDemoProfile(t *testing.T) {
	c := qt.New(t)
	store := session.NewStore(&memStorage{})

	// Any credentials succeed; only the email is kept.
	user, err := store.Login(context.Background(), "someone@example.com", "whatever")
	c.Assert(err, qt.IsNil)

	c.Assert(user.ID, qt.Equals, "1")
	c.Assert(user.Name, qt.Equals, "John Doe")
	c.Assert(user.Email, qt.Equals, "someone@example.com")
	c.Assert(*user.Age, qt.Equals, 28)
	c.Assert(user.Goals, qt.DeepEquals, []domain.Goal{domain.GoalLoseWeight, domain.GoalBuildMuscle})
	c.Assert(user.SavedPlans, qt.HasLen, 0)
}

func TestPersistenceRoundTrip(t *testing.T) {
	c := qt.New(t)
	mem := &memStorage{}

	store := session.NewStore(mem)
	registerAna(c, store)
	err := store.SavePlan(context.Background(), session.SavePlanInput{
		Type:    domain.PlanTypeDiet,
		Title:   "Diet Plan - 9/1/2026",
		Content: "# Plan\n- eat well",
	})
	c.Assert(err, qt.IsNil)
	before := store.Current()

	// Simulate a restart: fresh store over the same storage.
	restored := session.NewStore(mem)
	c.Assert(restored.Load(context.Background()), qt.IsNil)

	c.Assert(restored.Current(), qt.DeepEquals, before)
}

func TestLoad_MalformedBlobYieldsAnonymous(t *testing.T) {
	c := qt.New(t)
	mem := &memStorage{data: []byte("{not json"), present: true}

	store := session.NewStore(mem)
	c.Assert(store.Load(context.Background()), qt.IsNil)
	c.Assert(store.Current(), qt.IsNil)
}

func TestLoad_AbsentBlobYieldsAnonymous(t *testing.T) {
	c := qt.New(t)
	store := session.NewStore(&memStorage{})
	c.Assert(store.Load(context.Background()), qt.IsNil)
	c.Assert(store.Current(), qt.IsNil)
}

func TestLogout_Idempotent(t *testing.T) {
	c := qt.New(t)
	mem := &memStorage{}
	store := session.NewStore(mem)
	registerAna(c, store)

	c.Assert(store.Logout(context.Background()), qt.IsNil)
	c.Assert(store.Current(), qt.IsNil)
	c.Assert(mem.present, qt.IsFalse)

	// Second logout is a no-op: storage is not touched again.
	c.Assert(store.Logout(context.Background()), qt.IsNil)
	c.Assert(store.Current(), qt.IsNil)
	c.Assert(mem.removes, qt.Equals, 1)
}

func TestSavePlan_AppendsSnapshot(t *testing.T) {
	c := qt.New(t)
	store := session.NewStore(&memStorage{})
	registerAna(c, store)

	content := "# Full Body\n## Warm-up\n- jumping jacks"
	err := store.SavePlan(context.Background(), session.SavePlanInput{
		Type:    domain.PlanTypeWorkout,
		Title:   "Workout Plan - 9/1/2026",
		Content: content,
	})
	c.Assert(err, qt.IsNil)

	plans := store.Current().SavedPlans
	c.Assert(plans, qt.HasLen, 1)
	c.Assert(plans[0].ID, qt.Not(qt.Equals), "")
	c.Assert(plans[0].Type, qt.Equals, domain.PlanTypeWorkout)
	c.Assert(plans[0].Content, qt.Equals, content)
	c.Assert(plans[0].CreatedAt.IsZero(), qt.IsFalse)
}

func TestDeletePlan_ByIDAndIdempotent(t *testing.T) {
	c := qt.New(t)
	store := session.NewStore(&memStorage{})
	registerAna(c, store)

	ctx := context.Background()
	for _, title := range []string{"first", "second"} {
		err := store.SavePlan(ctx, session.SavePlanInput{
			Type:    domain.PlanTypeDiet,
			Title:   title,
			Content: "# plan",
		})
		c.Assert(err, qt.IsNil)
	}

	plans := store.Current().SavedPlans
	c.Assert(plans, qt.HasLen, 2)
	doomed := plans[0].ID

	c.Assert(store.DeletePlan(ctx, doomed), qt.IsNil)
	plans = store.Current().SavedPlans
	c.Assert(plans, qt.HasLen, 1)
	c.Assert(plans[0].Title, qt.Equals, "second")

	// Unknown ID leaves the collection unchanged.
	c.Assert(store.DeletePlan(ctx, "no-such-plan"), qt.IsNil)
	c.Assert(store.Current().SavedPlans, qt.HasLen, 1)
}

func TestAnonymousMutations_AreSilentNoOps(t *testing.T) {
	c := qt.New(t)
	mem := &memStorage{}
	store := session.NewStore(mem)

	ctx := context.Background()
	name := "Nobody"
	c.Assert(store.UpdateProfile(ctx, domain.ProfileUpdate{Name: &name}), qt.IsNil)
	c.Assert(store.SavePlan(ctx, session.SavePlanInput{
		Type: domain.PlanTypeWorkout, Title: "t", Content: "c",
	}), qt.IsNil)
	c.Assert(store.DeletePlan(ctx, "any"), qt.IsNil)

	// Storage was never written.
	c.Assert(mem.sets, qt.Equals, 0)
	c.Assert(mem.removes, qt.Equals, 0)
	c.Assert(store.Current(), qt.IsNil)
}

func TestUpdateProfile_MergesOnlySuppliedFields(t *testing.T) {
	c := qt.New(t)
	store := session.NewStore(&memStorage{})
	registerAna(c, store)

	weight := 135.5
	goals := []domain.Goal{domain.GoalGeneralFitness}
	err := store.UpdateProfile(context.Background(), domain.ProfileUpdate{
		Weight: &weight,
		Goals:  &goals,
	})
	c.Assert(err, qt.IsNil)

	user := store.Current()
	c.Assert(user.Name, qt.Equals, "Ana") // untouched
	c.Assert(*user.Age, qt.Equals, 30)    // untouched
	c.Assert(*user.Weight, qt.Equals, 135.5)
	c.Assert(user.Goals, qt.DeepEquals, goals)
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	c := qt.New(t)
	store := session.NewStore(&memStorage{})
	registerAna(c, store)

	snapshot := store.Current()
	snapshot.Name = "Tampered"
	*snapshot.Age = 99

	c.Assert(store.Current().Name, qt.Equals, "Ana")
	c.Assert(*store.Current().Age, qt.Equals, 30)
}
