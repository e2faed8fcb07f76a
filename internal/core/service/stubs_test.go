package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pawcare/vetmarket/internal/core/domain"
	"github.com/pawcare/vetmarket/internal/core/ports"
)

var discardLogger = zerolog.Nop()

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	createErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, email, hash string) error {
	for _, u := range r.byID {
		if u.Email == email {
			u.PasswordHash = hash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubVetRepo struct {
	ordered []*domain.Vet // directory order
	seq     int
}

func newStubVetRepo() *stubVetRepo {
	return &stubVetRepo{}
}

func (r *stubVetRepo) Create(_ context.Context, v *domain.Vet) (*domain.Vet, error) {
	for _, existing := range r.ordered {
		if existing.UserID == v.UserID {
			return nil, domain.ErrVetProfileExists
		}
	}
	r.seq++
	clone := *v
	clone.ID = fmt.Sprintf("vet_%d", r.seq)
	r.ordered = append(r.ordered, &clone)
	out := clone
	return &out, nil
}

func (r *stubVetRepo) FindByID(_ context.Context, id string) (*domain.Vet, error) {
	for _, v := range r.ordered {
		if v.ID == id {
			clone := *v
			return &clone, nil
		}
	}
	return nil, domain.ErrVetNotFound
}

func (r *stubVetRepo) FindByUserID(_ context.Context, userID string) (*domain.Vet, error) {
	for _, v := range r.ordered {
		if v.UserID == userID {
			clone := *v
			return &clone, nil
		}
	}
	return nil, domain.ErrVetNotFound
}

func (r *stubVetRepo) All(_ context.Context) ([]*domain.Vet, error) {
	out := make([]*domain.Vet, 0, len(r.ordered))
	for _, v := range r.ordered {
		clone := *v
		out = append(out, &clone)
	}
	return out, nil
}

type stubPetRepo struct {
	byID map[string]*domain.Pet
	seq  int
}

func newStubPetRepo() *stubPetRepo {
	return &stubPetRepo{byID: make(map[string]*domain.Pet)}
}

func (r *stubPetRepo) Create(_ context.Context, p *domain.Pet) (*domain.Pet, error) {
	r.seq++
	clone := *p
	clone.ID = fmt.Sprintf("pet_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPetRepo) FindByID(_ context.Context, id string) (*domain.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPetNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPetRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Pet, error) {
	var out []*domain.Pet
	for _, p := range r.byID {
		if p.OwnerID == ownerID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPetRepo) Update(_ context.Context, p *domain.Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPetNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPetNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubServiceRepo struct {
	ordered []*domain.Service
	seq     int
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{}
}

func (r *stubServiceRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.seq++
	clone := *s
	clone.ID = fmt.Sprintf("svc_%d", r.seq)
	r.ordered = append(r.ordered, &clone)
	out := clone
	return &out, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	for _, s := range r.ordered {
		if s.ID == id {
			clone := *s
			return &clone, nil
		}
	}
	return nil, domain.ErrServiceNotFound
}

func (r *stubServiceRepo) FindByVet(_ context.Context, vetID string) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range r.ordered {
		if s.VetID == vetID {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

// Search mirrors the real Mongo regex filter: case-insensitive substring
// match against name or description.
func (r *stubServiceRepo) Search(_ context.Context, text string) ([]*domain.Service, error) {
	var out []*domain.Service
	for _, s := range r.ordered {
		if containsFold(s.Name, text) || containsFold(s.Description, text) {
			clone := *s
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubServiceRepo) Delete(_ context.Context, id string) error {
	for i, s := range r.ordered {
		if s.ID == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			return nil
		}
	}
	return domain.ErrServiceNotFound
}

type stubAppointmentRepo struct {
	ordered   []*domain.Appointment
	seq       int
	createErr error
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{}
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("appt_%d", r.seq)
	r.ordered = append(r.ordered, &clone)
	out := clone
	return &out, nil
}

func (r *stubAppointmentRepo) FindByUser(_ context.Context, userID string) ([]*domain.Appointment, error) {
	out := make([]*domain.Appointment, 0)
	for _, a := range r.ordered {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubArticleRepo struct {
	ordered []*domain.Article
	seq     int
}

func newStubArticleRepo() *stubArticleRepo {
	return &stubArticleRepo{}
}

func (r *stubArticleRepo) Create(_ context.Context, a *domain.Article) (*domain.Article, error) {
	r.seq++
	clone := *a
	clone.ID = fmt.Sprintf("article_%d", r.seq)
	r.ordered = append(r.ordered, &clone)
	out := clone
	return &out, nil
}

func (r *stubArticleRepo) FindByID(_ context.Context, id string) (*domain.Article, error) {
	for _, a := range r.ordered {
		if a.ID == id {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrArticleNotFound
}

func (r *stubArticleRepo) FindByVet(_ context.Context, vetID string) ([]*domain.Article, error) {
	var out []*domain.Article
	for _, a := range r.ordered {
		if a.VetID == vetID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubArticleRepo) Delete(_ context.Context, id string) error {
	for i, a := range r.ordered {
		if a.ID == id {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			return nil
		}
	}
	return domain.ErrArticleNotFound
}

type stubCommentRepo struct {
	ordered []*domain.Comment
	seq     int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{}
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	r.seq++
	clone := *c
	clone.ID = fmt.Sprintf("comment_%d", r.seq)
	r.ordered = append(r.ordered, &clone)
	out := clone
	return &out, nil
}

func (r *stubCommentRepo) FindByArticle(_ context.Context, articleID string) ([]*domain.Comment, error) {
	var out []*domain.Comment
	for _, c := range r.ordered {
		if c.ArticleID == articleID {
			clone := *c
			out = append(out, &clone)
		}
	}
	return out, nil
}

type stubRatingRepo struct {
	ordered []*domain.Rating
	seq     int
}

func newStubRatingRepo() *stubRatingRepo {
	return &stubRatingRepo{}
}

func (r *stubRatingRepo) Create(_ context.Context, rating *domain.Rating) (*domain.Rating, error) {
	r.seq++
	clone := *rating
	clone.ID = fmt.Sprintf("rating_%d", r.seq)
	r.ordered = append(r.ordered, &clone)
	out := clone
	return &out, nil
}

func (r *stubRatingRepo) FindByVet(_ context.Context, vetID string) ([]*domain.Rating, error) {
	var out []*domain.Rating
	for _, rating := range r.ordered {
		if rating.VetID == vetID {
			clone := *rating
			out = append(out, &clone)
		}
	}
	return out, nil
}

// stubOTPStore keeps codes and verified flags in memory.
type stubOTPStore struct {
	codes    map[string]string
	verified map[string]bool
}

func newStubOTPStore() *stubOTPStore {
	return &stubOTPStore{codes: make(map[string]string), verified: make(map[string]bool)}
}

func (s *stubOTPStore) Save(_ context.Context, email, code string) error {
	s.codes[email] = code
	delete(s.verified, email)
	return nil
}

func (s *stubOTPStore) Code(_ context.Context, email string) (string, error) {
	code, ok := s.codes[email]
	if !ok {
		return "", domain.ErrOTPExpired
	}
	return code, nil
}

func (s *stubOTPStore) MarkVerified(_ context.Context, email string) error {
	s.verified[email] = true
	return nil
}

func (s *stubOTPStore) Verified(_ context.Context, email string) (bool, error) {
	return s.verified[email], nil
}

func (s *stubOTPStore) Invalidate(_ context.Context, email string) error {
	delete(s.codes, email)
	delete(s.verified, email)
	return nil
}

// stubDispatcher records every enqueued message synchronously.
type stubDispatcher struct {
	sent []ports.OTPMessage
}

func (d *stubDispatcher) Enqueue(msg ports.OTPMessage) {
	d.sent = append(d.sent, msg)
}
