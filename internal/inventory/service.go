package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/SkinBot_Go/internal/domain"
	"github.com/osse101/SkinBot_Go/internal/logger"
	"github.com/osse101/SkinBot_Go/internal/metrics"
	"github.com/osse101/SkinBot_Go/internal/repository"
)

// Limits are the per-request quantity ceilings
type Limits struct {
	Add    int
	Remove int
}

// DefaultLimits returns the standard ceilings
func DefaultLimits() Limits {
	return Limits{Add: DefaultAddLimit, Remove: DefaultRemoveLimit}
}

// Max returns the ceiling for op
func (l Limits) Max(op Operation) int {
	if op == OpRemove {
		return l.Remove
	}
	return l.Add
}

// Service manages per-user inventories. Item names are expected to be canonical catalog names.
type Service interface {
	Get(ctx context.Context, userID string) (*domain.Inventory, error)

	// Add increases the held quantity and returns the new total
	Add(ctx context.Context, userID, name string, quantity int) (int, error)

	// Remove decreases the held quantity and returns what remains.
	// A nil quantity removes the entry entirely.
	Remove(ctx context.Context, userID, name string, quantity *int) (int, error)

	ValidateQuantity(op Operation, quantity int) error
	ParseQuantity(op Operation, raw string) (int, error)
	Limits() Limits
}

type service struct {
	repo   repository.Inventory
	limits Limits
}

// NewService creates an inventory service. Zero limits fall back to the defaults.
func NewService(repo repository.Inventory, limits Limits) Service {
	if limits.Add <= 0 {
		limits.Add = DefaultAddLimit
	}
	if limits.Remove <= 0 {
		limits.Remove = DefaultRemoveLimit
	}
	return &service{repo: repo, limits: limits}
}

func (s *service) Limits() Limits {
	return s.limits
}

func (s *service) Get(ctx context.Context, userID string) (*domain.Inventory, error) {
	if err := domain.ValidateUserKey(userID); err != nil {
		return nil, err
	}
	return s.repo.GetInventory(ctx, userID)
}

func (s *service) ValidateQuantity(op Operation, quantity int) error {
	limit := s.limits.Max(op)
	if quantity <= 0 || quantity > limit {
		return fmt.Errorf(ErrMsgQuantityOutOfRange, domain.ErrInvalidQuantity, quantity, limit)
	}
	return nil
}

func (s *service) ParseQuantity(op Operation, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf(ErrMsgQuantityNotNumber, domain.ErrInvalidQuantity, raw)
	}
	if err := s.ValidateQuantity(op, n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *service) Add(ctx context.Context, userID, name string, quantity int) (int, error) {
	log := logger.FromContext(ctx)

	if err := s.checkRequest(userID, name); err != nil {
		return 0, err
	}
	if err := s.ValidateQuantity(OpAdd, quantity); err != nil {
		recordMutation(OpAdd, err)
		return 0, err
	}

	var total int
	err := s.repo.UpdateInventory(ctx, userID, func(inv *domain.Inventory) error {
		inv.Add(name, quantity)
		total, _ = inv.Quantity(name)
		return nil
	})
	recordMutation(OpAdd, err)
	if err != nil {
		return 0, err
	}

	log.Info(LogMsgItemAdded, "user_id", userID, "item", name, "quantity", quantity, "total", total)
	return total, nil
}

func (s *service) Remove(ctx context.Context, userID, name string, quantity *int) (int, error) {
	log := logger.FromContext(ctx)

	if err := s.checkRequest(userID, name); err != nil {
		return 0, err
	}
	if quantity != nil {
		if err := s.ValidateQuantity(OpRemove, *quantity); err != nil {
			recordMutation(OpRemove, err)
			return 0, err
		}
	}

	var remaining int
	err := s.repo.UpdateInventory(ctx, userID, func(inv *domain.Inventory) error {
		held, ok := inv.Quantity(name)
		if !ok {
			return fmt.Errorf(ErrMsgNotHeld, domain.ErrNotInInventory, name)
		}
		if quantity == nil {
			inv.Delete(name)
			return nil
		}
		if held < *quantity {
			return fmt.Errorf(ErrMsgNotEnough, domain.ErrInsufficientQuantity, held, name, *quantity)
		}
		remaining = held - *quantity
		inv.Set(name, remaining)
		return nil
	})
	recordMutation(OpRemove, err)
	if err != nil {
		if errors.Is(err, domain.ErrNotInInventory) || errors.Is(err, domain.ErrInsufficientQuantity) {
			log.Info(LogMsgMutationRefused, "user_id", userID, "item", name, "reason", err)
		}
		return 0, err
	}

	log.Info(LogMsgItemRemoved, "user_id", userID, "item", name, "remaining", remaining)
	return remaining, nil
}

func (s *service) checkRequest(userID, name string) error {
	if err := domain.ValidateUserKey(userID); err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf(ErrMsgBlankName, domain.ErrInvalidInput)
	}
	return nil
}

func recordMutation(op Operation, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailure
	}
	metrics.InventoryMutations.WithLabelValues(string(op), result).Inc()
}
