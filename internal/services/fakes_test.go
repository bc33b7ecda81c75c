package services

import (
	"context"
	"sync"
	"time"

	"github.com/zerocycle/zerocycle-admin-backend/internal/apperrors"
	"github.com/zerocycle/zerocycle-admin-backend/internal/models"
	"github.com/zerocycle/zerocycle-admin-backend/internal/points"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memUserRepo struct {
	mu sync.Mutex
	m  map[primitive.ObjectID]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{m: map[primitive.ObjectID]*models.User{}}
}

func (r *memUserRepo) seed(name, email string, status models.UserStatus) primitive.ObjectID {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := primitive.NewObjectID()
	r.m[id] = &models.User{ID: id, Name: name, Email: email, Joined: time.Now(), Status: status}
	return id
}

func (r *memUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.m[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	u2 := *u
	return &u2, nil
}

func (r *memUserRepo) FindAll(ctx context.Context) ([]*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.User{}
	for _, u := range r.m {
		u2 := *u
		out = append(out, &u2)
	}
	return out, nil
}

func (r *memUserRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.m[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	return nil
}

func (r *memUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

func (r *memUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.m)), nil
}

func (r *memUserRepo) Watch(ctx context.Context) (<-chan models.UserChange, error) {
	ch := make(chan models.UserChange)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type memCollectorRepo struct {
	mu sync.Mutex
	m  map[primitive.ObjectID]*models.Collector
}

func newMemCollectorRepo() *memCollectorRepo {
	return &memCollectorRepo{m: map[primitive.ObjectID]*models.Collector{}}
}

func (r *memCollectorRepo) Create(ctx context.Context, c *models.Collector) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	c.UpdatedAt = time.Now()
	c2 := *c
	r.m[c.ID] = &c2
	return nil
}

func (r *memCollectorRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Collector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.m[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	c2 := *c
	return &c2, nil
}

func (r *memCollectorRepo) FindAll(ctx context.Context) ([]*models.Collector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Collector{}
	for _, c := range r.m {
		c2 := *c
		out = append(out, &c2)
	}
	return out, nil
}

func (r *memCollectorRepo) FindByStatus(ctx context.Context, status models.CollectorStatus) ([]*models.Collector, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*models.Collector{}
	for _, c := range r.m {
		if c.Status == status {
			c2 := *c
			out = append(out, &c2)
		}
	}
	return out, nil
}

func (r *memCollectorRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CollectorStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.m[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	c.Status = status
	c.UpdatedAt = time.Now()
	return nil
}

func (r *memCollectorRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

func (r *memCollectorRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.m)), nil
}

func (r *memCollectorRepo) CountByStatus(ctx context.Context, status models.CollectorStatus) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, c := range r.m {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *memCollectorRepo) Watch(ctx context.Context) (<-chan models.CollectorChange, error) {
	ch := make(chan models.CollectorChange)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

type memAdminRepo struct {
	mu      sync.Mutex
	byEmail map[string]*models.AdminUser
}

func newMemAdminRepo() *memAdminRepo {
	return &memAdminRepo{byEmail: map[string]*models.AdminUser{}}
}

func (r *memAdminRepo) Upsert(ctx context.Context, a *models.AdminUser) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.byEmail[a.Email]; ok {
		a.ID = existing.ID
	} else {
		a.ID = primitive.NewObjectID()
	}
	a2 := *a
	r.byEmail[a.Email] = &a2
	return nil
}

func (r *memAdminRepo) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byEmail[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	a2 := *a
	return &a2, nil
}

type memPointsConfigRepo struct {
	mu  sync.Mutex
	cfg *models.PointsConfig
}

func (r *memPointsConfigRepo) Get(ctx context.Context) (*models.PointsConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cfg == nil {
		return &models.PointsConfig{
			PointsPerKg:  points.DefaultPointsPerKg,
			RatePerPoint: points.DefaultRatePerPoint,
		}, nil
	}
	cfg := *r.cfg
	return &cfg, nil
}

func (r *memPointsConfigRepo) Update(ctx context.Context, cfg *models.PointsConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cfg.UpdatedAt = time.Now()
	c2 := *cfg
	r.cfg = &c2
	return nil
}
