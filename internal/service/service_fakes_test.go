package service

import (
	"context"
	"sort"
	"strings"

	"paint-advisor-be/internal/entity"
	"paint-advisor-be/internal/repository/contract"
	"paint-advisor-be/internal/repository/specification"
	"paint-advisor-be/internal/repository/unitofwork"
	"paint-advisor-be/pkg/catalog"

	"github.com/google/uuid"
)

// fakeUow backs the service tests with in-memory repositories. It acts as
// its own factory so every service sees the same data.
type fakeUow struct {
	users      *fakeUserRepo
	chats      *fakeChatRepo
	embeddings *fakeEmbeddingRepo
}

func newFakeUow() *fakeUow {
	return &fakeUow{
		users:      &fakeUserRepo{byId: make(map[uuid.UUID]*entity.User)},
		chats:      &fakeChatRepo{},
		embeddings: &fakeEmbeddingRepo{},
	}
}

func (f *fakeUow) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f }

func (f *fakeUow) Begin(ctx context.Context) error { return nil }
func (f *fakeUow) Commit() error                   { return nil }
func (f *fakeUow) Rollback() error                 { return nil }

func (f *fakeUow) UserRepository() contract.UserRepository                   { return f.users }
func (f *fakeUow) ChatMessageRepository() contract.ChatMessageRepository     { return f.chats }
func (f *fakeUow) PaintEmbeddingRepository() contract.PaintEmbeddingRepository {
	return f.embeddings
}
func (f *fakeUow) PaintRepository() contract.PaintRepository { return nil }

type fakeUserRepo struct {
	byId map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.byId[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.byId[user.Id] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.byId, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	for _, user := range r.byId {
		if userMatches(user, specs) {
			return user, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var n int64
	for _, user := range r.byId {
		if userMatches(user, specs) {
			n++
		}
	}
	return n, nil
}

func userMatches(user *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByEmail:
			if user.Email != s.Email {
				return false
			}
		case specification.ByID:
			if user.Id != s.ID {
				return false
			}
		}
	}
	return true
}

type fakeChatRepo struct {
	messages []*entity.ChatMessage
}

func (r *fakeChatRepo) Create(ctx context.Context, message *entity.ChatMessage) error {
	r.messages = append(r.messages, message)
	return nil
}

func (r *fakeChatRepo) DeleteAllByUserId(ctx context.Context, userId uuid.UUID) error {
	kept := r.messages[:0]
	for _, msg := range r.messages {
		if msg.UserId != userId {
			kept = append(kept, msg)
		}
	}
	r.messages = kept
	return nil
}

func (r *fakeChatRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, msg := range r.messages {
		if chatMatches(msg, specs) {
			out = append(out, msg)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeChatRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	msgs, _ := r.FindAll(ctx, specs...)
	return int64(len(msgs)), nil
}

func chatMatches(msg *entity.ChatMessage, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ChatOwnedByUser:
			if msg.UserId != s.UserID {
				return false
			}
		case specification.ByRole:
			if msg.Role != s.Role {
				return false
			}
		}
	}
	return true
}

type fakeEmbeddingRepo struct {
	rows []*entity.PaintEmbedding
}

func (r *fakeEmbeddingRepo) CreateBulk(ctx context.Context, embeddings []*entity.PaintEmbedding) error {
	r.rows = append(r.rows, embeddings...)
	return nil
}

func (r *fakeEmbeddingRepo) DeleteByPaintId(ctx context.Context, paintId uuid.UUID) error {
	kept := r.rows[:0]
	for _, row := range r.rows {
		if row.PaintId != paintId {
			kept = append(kept, row)
		}
	}
	r.rows = kept
	return nil
}

func (r *fakeEmbeddingRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PaintEmbedding, error) {
	return r.rows, nil
}

func (r *fakeEmbeddingRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

func (r *fakeEmbeddingRepo) SearchSimilar(ctx context.Context, embedding []float32, limit int) ([]*contract.ScoredPaintEmbedding, error) {
	return nil, nil
}

// fakeCatalog serves the advisor pipeline from a fixed product list.
type fakeCatalog struct {
	products []catalog.ProductRef
}

func (f *fakeCatalog) FilterBy(ctx context.Context, filter catalog.Filter) ([]catalog.ProductRef, error) {
	surfaces := filter.Surfaces
	if len(surfaces) == 0 && filter.Surface != "" {
		surfaces = []string{filter.Surface}
	}

	var out []catalog.ProductRef
	for _, p := range f.products {
		if filter.Environment != "" && p.Environment != filter.Environment && p.Environment != "both" {
			continue
		}
		if len(surfaces) > 0 && !containsFold(surfaces, p.SurfaceType) {
			continue
		}
		if filter.Color != "" && !strings.Contains(p.ColorName, filter.Color) {
			continue
		}
		if filter.Finish != "" && p.FinishType != filter.Finish {
			continue
		}
		out = append(out, p)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCatalog) AvailableColors(ctx context.Context) ([]catalog.ColorCount, error) {
	counts := make(map[string]int)
	var order []string
	for _, p := range f.products {
		if counts[p.ColorName] == 0 {
			order = append(order, p.ColorName)
		}
		counts[p.ColorName]++
	}
	out := make([]catalog.ColorCount, 0, len(order))
	for _, name := range order {
		out = append(out, catalog.ColorCount{Name: name, Count: counts[name]})
	}
	return out, nil
}

func (f *fakeCatalog) FindByIds(ctx context.Context, ids []uuid.UUID) ([]catalog.ProductRef, error) {
	var out []catalog.ProductRef
	for _, id := range ids {
		for _, p := range f.products {
			if p.Id == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}
