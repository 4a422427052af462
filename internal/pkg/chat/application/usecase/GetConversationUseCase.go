package usecase

import (
	"context"

	chat "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/domain"
	repository "github.com/AnujYadav540/SkillSwap/internal/pkg/chat/persistence/repository/port"
	"github.com/AnujYadav540/SkillSwap/pkg/apperr"
)

// GetConversationInput names the unordered user pair.
type GetConversationInput struct {
	UserID      int64
	OtherUserID int64
}

// GetConversationUseCase returns the full message history between two users,
// oldest first. Clients call this after reconnecting to recover pushes they
// missed while offline.
type GetConversationUseCase struct {
	Repo repository.MessageRepository
}

func NewGetConversationUseCase(repo repository.MessageRepository) *GetConversationUseCase {
	return &GetConversationUseCase{Repo: repo}
}

func (uc *GetConversationUseCase) Execute(ctx context.Context, in GetConversationInput) ([]chat.Message, error) {
	if in.OtherUserID == 0 {
		return nil, apperr.InvalidRequest("user id is required")
	}
	msgs, err := uc.Repo.ListBetween(ctx, in.UserID, in.OtherUserID)
	if err != nil {
		return nil, apperr.StoreUnavailable(err)
	}
	return msgs, nil
}
