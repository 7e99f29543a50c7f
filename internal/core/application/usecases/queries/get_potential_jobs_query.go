package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetPotentialJobsQueryIsNotConstructed = errors.New(
	"GetPotentialJobsQuery must be created via NewGetPotentialJobsQuery constructor",
)

// GetPotentialJobsQuery retrieves the pending jobs a translator is eligible
// to accept. Eligibility is decided by the matching collaborator, never here.
type GetPotentialJobsQuery struct { //nolint:recvcheck //using for validation
	translatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPotentialJobsQuery creates a potential-jobs query for a translator.
func NewGetPotentialJobsQuery(translatorID kernel.UUID) (GetPotentialJobsQuery, error) {
	query := GetPotentialJobsQuery{guard: guard.NewConstructorGuard()}
	if err := query.setTranslatorID(translatorID); err != nil {
		return GetPotentialJobsQuery{}, err
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPotentialJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetPotentialJobsQueryIsNotConstructed)
}

// TranslatorID returns the id of the requesting translator.
func (q GetPotentialJobsQuery) TranslatorID() kernel.UUID {
	return q.translatorID
}

func (q *GetPotentialJobsQuery) setTranslatorID(translatorID kernel.UUID) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}
	q.translatorID = translatorID
	return nil
}
