package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

var errRemote = errors.New("remote said no")

var (
	bunA   = burgers.Ingredient{ID: "bun-a", Name: "Fluorescent bun", Type: burgers.TypeBun, Price: 988}
	sauceB = burgers.Ingredient{ID: "sauce-b", Name: "Spicy-X sauce", Type: burgers.TypeSauce, Price: 90}
	mainC  = burgers.Ingredient{ID: "main-c", Name: "Meteorite steak", Type: burgers.TypeMain, Price: 3000}

	testUser = burgers.User{Name: "Ann", Email: "ann@example.com"}

	orderOne = burgers.Order{
		ID: "o1", Number: 101, Name: "Spicy burger", Status: burgers.StatusDone,
		CreatedAt:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		Ingredients: []string{"bun-a", "sauce-b", "bun-a"},
	}
	orderTwo = burgers.Order{
		ID: "o2", Number: 102, Name: "Meteor burger", Status: burgers.StatusPending,
		CreatedAt:   time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC),
		Ingredients: []string{"bun-a", "main-c", "bun-a"},
	}
)

// fakeSource answers from canned data. err fails every call; during runs
// inside each call so tests can observe the pending state.
type fakeSource struct {
	mu        sync.Mutex
	err       error
	during    func()
	calls     map[string]int
	submitted [][]string
}

func newFakeSource() *fakeSource {
	return &fakeSource{calls: map[string]int{}}
}

func (f *fakeSource) hit(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	f.calls[name]++
	during, err := f.during, f.err
	f.mu.Unlock()
	if during != nil {
		during()
	}
	return err
}

func (f *fakeSource) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeSource) Ingredients(ctx context.Context) ([]burgers.Ingredient, error) {
	if err := f.hit(ctx, "ingredients"); err != nil {
		return nil, err
	}
	return []burgers.Ingredient{bunA, sauceB, mainC}, nil
}

func (f *fakeSource) Register(ctx context.Context, data burgers.RegisterData) (burgers.Credentials, error) {
	if err := f.hit(ctx, "register"); err != nil {
		return burgers.Credentials{}, err
	}
	return burgers.Credentials{User: burgers.User{Name: data.Name, Email: data.Email}, AccessToken: "Bearer acc", RefreshToken: "ref"}, nil
}

func (f *fakeSource) Login(ctx context.Context, data burgers.LoginData) (burgers.Credentials, error) {
	if err := f.hit(ctx, "login"); err != nil {
		return burgers.Credentials{}, err
	}
	return burgers.Credentials{User: testUser, AccessToken: "Bearer acc", RefreshToken: "ref"}, nil
}

func (f *fakeSource) Logout(ctx context.Context, refreshToken string) error {
	return f.hit(ctx, "logout")
}

func (f *fakeSource) CurrentUser(ctx context.Context) (burgers.User, error) {
	if err := f.hit(ctx, "user"); err != nil {
		return burgers.User{}, err
	}
	return testUser, nil
}

func (f *fakeSource) UpdateUser(ctx context.Context, patch burgers.ProfilePatch) (burgers.User, error) {
	if err := f.hit(ctx, "update"); err != nil {
		return burgers.User{}, err
	}
	u := testUser
	if patch.Name != "" {
		u.Name = patch.Name
	}
	return u, nil
}

func (f *fakeSource) ForgotPassword(ctx context.Context, email string) error {
	return f.hit(ctx, "forgot")
}

func (f *fakeSource) ResetPassword(ctx context.Context, password, code string) error {
	return f.hit(ctx, "reset")
}

func (f *fakeSource) Feed(ctx context.Context) (burgers.Feed, error) {
	if err := f.hit(ctx, "feed"); err != nil {
		return burgers.Feed{}, err
	}
	return burgers.Feed{Orders: []burgers.Order{orderOne, orderTwo}, Total: 5000, TotalToday: 70}, nil
}

func (f *fakeSource) PersonalOrders(ctx context.Context) ([]burgers.Order, error) {
	if err := f.hit(ctx, "personal"); err != nil {
		return nil, err
	}
	return []burgers.Order{orderTwo}, nil
}

func (f *fakeSource) SubmitOrder(ctx context.Context, ids []string) (burgers.Order, error) {
	if err := f.hit(ctx, "submit"); err != nil {
		return burgers.Order{}, err
	}
	f.mu.Lock()
	f.submitted = append(f.submitted, ids)
	f.mu.Unlock()
	return burgers.Order{Number: 777, Name: "New burger", Ingredients: ids, Status: burgers.StatusCreated}, nil
}

func (f *fakeSource) OrderByNumber(ctx context.Context, number int) (burgers.Order, error) {
	if err := f.hit(ctx, "by-number"); err != nil {
		return burgers.Order{}, err
	}
	o := orderOne
	o.Number = number
	return o, nil
}

type fakeTokens struct {
	access, refresh string
	saveErr         error
	cleared         bool
}

func (t *fakeTokens) AccessToken(ctx context.Context) (string, error)  { return t.access, nil }
func (t *fakeTokens) RefreshToken(ctx context.Context) (string, error) { return t.refresh, nil }

func (t *fakeTokens) Save(ctx context.Context, access, refresh string) error {
	if t.saveErr != nil {
		return t.saveErr
	}
	t.access, t.refresh = access, refresh
	return nil
}

func (t *fakeTokens) Clear(ctx context.Context) error {
	t.access, t.refresh = "", ""
	t.cleared = true
	return nil
}
