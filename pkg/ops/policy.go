package ops

import (
	"context"
	"strings"

	"hrdesk/pkg/intent"
)

// PolicyService answers free-form HR policy questions against the loaded
// policy documents.
type PolicyService struct {
	index PolicySearcher
}

func NewPolicyService(index PolicySearcher) *PolicyService {
	return &PolicyService{index: index}
}

func (s *PolicyService) Lookup(ctx context.Context, fields map[string]string) (*Outcome, error) {
	query := strings.TrimSpace(fields[intent.FieldQuery])
	match, ok := s.index.Search(query)
	if !ok {
		return &Outcome{
			Status:  StatusNotFound,
			Message: "I could not find a policy matching that question.",
		}, nil
	}
	return &Outcome{
		Status:  StatusSuccess,
		Message: match.Text(),
		Policy:  match.Text(),
	}, nil
}
