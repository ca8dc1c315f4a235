package impl

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"sync"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"

	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// memProfileRepo is an in-memory ProfileRepository with the same contract as
// the Mongo implementation: whole-document replace guarded by the version
// field. Documents are deep-copied on the way in and out so callers mutating
// a loaded aggregate cannot touch the stored copy.
type memProfileRepo struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*entity.Profile
	saveErr  error
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	cp := *p
	cp.Cart = slices.Clone(p.Cart)
	cp.Wishlist = slices.Clone(p.Wishlist)
	cp.SavedForLater = slices.Clone(p.SavedForLater)
	cp.Orders = slices.Clone(p.Orders)

	return &cp
}

func (r *memProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[id]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}

	return cloneProfile(profile), nil
}

func (r *memProfileRepo) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, profile := range r.profiles {
		if profile.Email == email {
			return cloneProfile(profile), nil
		}
	}

	return nil, repository.ErrProfileNotFound
}

func (r *memProfileRepo) FindAll(_ context.Context) ([]*entity.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entity.Profile, 0, len(r.profiles))
	for _, profile := range r.profiles {
		all = append(all, cloneProfile(profile))
	}

	return all, nil
}

func (r *memProfileRepo) Create(_ context.Context, profile *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.profiles {
		if existing.Email == profile.Email {
			return repository.ErrDuplicateEmail
		}
	}
	r.profiles[profile.ID] = cloneProfile(profile)

	return nil
}

func (r *memProfileRepo) Save(_ context.Context, profile *entity.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return r.saveErr
	}

	stored, ok := r.profiles[profile.ID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	if stored.Version != profile.Version {
		return repository.ErrConflict
	}

	saved := cloneProfile(profile)
	saved.Version++
	r.profiles[profile.ID] = saved
	profile.Version = saved.Version

	return nil
}

// seed inserts a profile and returns its ID.
func (r *memProfileRepo) seed(t *testing.T, profile *entity.Profile) uuid.UUID {
	t.Helper()
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[profile.ID] = cloneProfile(profile)

	return profile.ID
}

// get returns the stored copy of a profile.
func (r *memProfileRepo) get(t *testing.T, id uuid.UUID) *entity.Profile {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()

	profile, ok := r.profiles[id]
	if !ok {
		t.Fatalf("profile %s not stored", id)
	}

	return cloneProfile(profile)
}

// memProductRepo is an in-memory ProductRepository.
type memProductRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]*entity.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (r *memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	cp := *product

	return &cp, nil
}

func (r *memProductRepo) FindAll(_ context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*entity.Product, 0, len(r.products))
	for _, product := range r.products {
		cp := *product
		all = append(all, &cp)
	}

	return all, nil
}

func (r *memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *product
	r.products[product.ID] = &cp

	return nil
}

func (r *memProductRepo) seed(t *testing.T, name, price string) uuid.UUID {
	t.Helper()
	product := &entity.Product{
		ID:    uuid.New(),
		Name:  name,
		Price: entity.Price(price),
		Image: "https://img.example.com/" + name,
	}
	if err := r.Create(context.Background(), product); err != nil {
		t.Fatalf("seed product: %v", err)
	}

	return product.ID
}

// memFeedbackRepo is an in-memory append-only FeedbackRepository.
type memFeedbackRepo struct {
	mu      sync.Mutex
	entries []*entity.Feedback
}

func (r *memFeedbackRepo) Create(_ context.Context, feedback *entity.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *feedback
	r.entries = append(r.entries, &cp)

	return nil
}

// fakeGateway records the last checkout lines it was given.
type fakeGateway struct {
	lines     []service.CheckoutLine
	sessionID string
	err       error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, lines []service.CheckoutLine) (string, error) {
	g.lines = lines
	if g.err != nil {
		return "", g.err
	}

	return g.sessionID, nil
}

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Check(password, hash string) bool { return "hashed:"+password == hash }
