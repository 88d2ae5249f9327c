package approval

import (
	"context"
	"errors"

	"festBooker/internal/models"
)

type SeedResult struct {
	Created  []string `json:"created"`
	Existing []string `json:"exists"`
	Skipped  []string `json:"skipped,omitempty"`
}

// SeedAccounts provisions predefined accounts out of band. Every created
// account is approved regardless of role. Accounts whose email is already
// registered are left untouched.
func (w *Workflow) SeedAccounts(ctx context.Context, drafts []models.UserDraft) (SeedResult, error) {
	res := SeedResult{
		Created:  []string{},
		Existing: []string{},
	}

	for _, d := range drafts {
		_, err := w.repo.GetUserByEmail(ctx, d.Email)
		switch {
		case err == nil:
			res.Existing = append(res.Existing, d.Email)
			continue
		case !errors.Is(err, models.ErrUserNotFound):
			return res, err
		}

		draft, err := w.validateDraft(d)
		if err != nil {
			res.Skipped = append(res.Skipped, d.Email)
			continue
		}

		u, err := w.build(draft)
		if err != nil {
			return res, err
		}
		u.IsApproved = true

		if _, err = w.repo.CreateUser(ctx, u); err != nil {
			if errors.Is(err, models.ErrEmailTaken) {
				res.Existing = append(res.Existing, d.Email)
				continue
			}
			return res, err
		}

		res.Created = append(res.Created, d.Email)
	}

	return res, nil
}
