package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/project-tracker/internal/models"
	"github.com/yukikurage/project-tracker/internal/repository"
	"gorm.io/gorm"
)

// AdminAction is an action an administrator applies to an account.
type AdminAction string

const (
	ActionApprove     AdminAction = "approve"
	ActionRevoke      AdminAction = "revoke"
	ActionMakeAdmin   AdminAction = "make_admin"
	ActionRemoveAdmin AdminAction = "remove_admin"
	ActionDelete      AdminAction = "delete"
)

var (
	ErrUnknownAction    = errors.New("unknown action")
	ErrCannotDemoteSelf = errors.New("you cannot remove administrator rights from yourself")
	ErrCannotDeleteSelf = errors.New("you cannot delete your own account")
)

// AdminService manages accounts on behalf of administrators.
type AdminService struct {
	userRepo repository.UserRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository) *AdminService {
	return &AdminService{
		userRepo: userRepo,
	}
}

// ListUsers returns all users ordered by id.
func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ApplyAction performs action on the target account as actorID. It returns the
// updated user, or nil after a delete. remove_admin and delete are refused
// when the target is the actor.
func (s *AdminService) ApplyAction(ctx context.Context, actorID, targetID uint64, action AdminAction) (*models.User, error) {
	switch action {
	case ActionApprove, ActionRevoke, ActionMakeAdmin, ActionRemoveAdmin, ActionDelete:
	default:
		return nil, ErrUnknownAction
	}

	target, err := s.userRepo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	switch action {
	case ActionApprove:
		target.IsApproved = true
	case ActionRevoke:
		target.IsApproved = false
	case ActionMakeAdmin:
		target.IsAdmin = true
	case ActionRemoveAdmin:
		if target.ID == actorID {
			return nil, ErrCannotDemoteSelf
		}
		target.IsAdmin = false
	case ActionDelete:
		if target.ID == actorID {
			return nil, ErrCannotDeleteSelf
		}
		if err := s.userRepo.Delete(ctx, target.ID); err != nil {
			return nil, fmt.Errorf("failed to delete user: %w", err)
		}
		return nil, nil
	}

	if err := s.userRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return target, nil
}
