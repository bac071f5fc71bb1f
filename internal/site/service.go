package site

import "context"

type Service interface {
	// IsActive reports whether the site accepts requests. On lookup failure
	// it errs on the side of staying up.
	IsActive(ctx context.Context) bool
	Get(ctx context.Context) (*Setting, error)
	SetActive(ctx context.Context, active bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) IsActive(ctx context.Context) bool {
	setting, err := s.repo.Get(ctx)
	if err != nil {
		return true
	}
	return setting.IsActive
}

func (s *service) Get(ctx context.Context) (*Setting, error) {
	return s.repo.Get(ctx)
}

func (s *service) SetActive(ctx context.Context, active bool) error {
	return s.repo.SetActive(ctx, active)
}
