package usecase

import (
	"context"
	"fmt"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/ports"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

// BriefingUseCase fetches the daily briefing for the session's role.
type BriefingUseCase struct {
	backend ports.HRMBackend
}

// NewBriefingUseCase builds the use case.
func NewBriefingUseCase(backend ports.HRMBackend) *BriefingUseCase {
	return &BriefingUseCase{backend: backend}
}

// Get returns the role-dependent briefing. Which blocks are populated is
// decided by the backend; the gateway only routes identity and scope.
func (uc *BriefingUseCase) Get(ctx context.Context, sess *entity.Session) (*dto.BriefingDTO, error) {
	briefing, err := uc.backend.Briefing(ctx, sess.UserID, string(sess.Role), sess.DepartmentID)
	if err != nil {
		return nil, fmt.Errorf("briefing: %w", err)
	}
	return briefing, nil
}
