package booking

import (
	"context"
	"fmt"

	"trimly/models"
	"trimly/utils"

	"go.uber.org/zap"
)

// UpdateLine applies the customer's changes to one cart line. Changing the
// employee choice or the date is a scope change: the picked time, the resolved
// employee and the cached slots are cleared, the line revision is bumped, and
// slots are recomputed for the new scope. A time pick is validated against the
// line's current slots and resolves an employee immediately.
func (s *DefaultCheckoutService) UpdateLine(ctx context.Context, sessionID string, index int, upd LineUpdate) (*models.BookingCart, error) {
	cart, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	line := cart.Line(index)
	if line == nil {
		return nil, fmt.Errorf("no cart line at index %d", index)
	}

	scopeChanged := false
	if upd.EmployeeChoice != nil && *upd.EmployeeChoice != line.EmployeeChoice {
		line.EmployeeChoice = *upd.EmployeeChoice
		scopeChanged = true
	}
	if upd.Date != nil && (line.Date == nil || !line.Date.Equal(*upd.Date)) {
		d := *upd.Date
		line.Date = &d
		scopeChanged = true
	}
	if scopeChanged {
		resetLineScope(line)
		// Persist the bumped revision before fetching so any fetch issued
		// against the previous scope is recognizably superseded.
		if err := s.Sessions.Save(ctx, cart); err != nil {
			return nil, err
		}
		cart, line, err = s.refreshSlots(ctx, sessionID, index, line.Revision)
		if err != nil {
			return nil, err
		}
	}

	if upd.Time != nil {
		if err := s.chooseTime(line, *upd.Time); err != nil {
			return nil, err
		}
	}

	if err := s.Sessions.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// resetLineScope clears everything derived from the previous employee/date
// scope. A stale time must never survive a scope change.
func resetLineScope(line *models.ServiceSelection) {
	line.Time = nil
	line.ResolvedEmployeeID = ""
	line.Slots = nil
	line.Revision++
}

// refreshSlots computes slots for the line's current scope and applies them
// only if the line's revision still matches the one the fetch was issued for.
// A fetch that raced with a newer scope change is discarded; the newer state
// wins.
func (s *DefaultCheckoutService) refreshSlots(ctx context.Context, sessionID string, index, revision int) (*models.BookingCart, *models.ServiceSelection, error) {
	logger := utils.GetLogger()

	cart, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	line := cart.Line(index)
	if line == nil {
		return nil, nil, fmt.Errorf("no cart line at index %d", index)
	}
	if line.Date == nil {
		return cart, line, nil
	}

	slots, err := s.Availability.DaySlots(ctx, line.ServiceID, *line.Date, line.EmployeeChoice)
	if err != nil {
		// Fail safe: the line shows no availability rather than failing the cart.
		logger.Error("failed to compute availability for cart line",
			zap.String("sessionID", sessionID),
			zap.Int("line", index),
			zap.String("serviceID", line.ServiceID),
			zap.Error(err))
		slots = nil
	}

	// Reload before applying: a concurrent update may have changed the scope
	// while the fetch was in flight.
	fresh, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	freshLine := fresh.Line(index)
	if freshLine == nil {
		return nil, nil, fmt.Errorf("no cart line at index %d", index)
	}
	if freshLine.Revision != revision {
		logger.Debug("discarding slots for superseded selection",
			zap.String("sessionID", sessionID),
			zap.Int("line", index),
			zap.Int("fetchedRevision", revision),
			zap.Int("currentRevision", freshLine.Revision))
		return fresh, freshLine, nil
	}
	freshLine.Slots = slots
	return fresh, freshLine, nil
}

// chooseTime picks a start time from the line's current slots and resolves the
// serving employee: the explicit choice when one was made, otherwise the
// assignment policy applied to the chosen slot.
func (s *DefaultCheckoutService) chooseTime(line *models.ServiceSelection, t models.ClockTime) error {
	if line.Date == nil {
		return fmt.Errorf("service %s has no date selected", line.ServiceID)
	}

	var chosen *models.Slot
	for i := range line.Slots {
		if line.Slots[i].Time == t {
			chosen = &line.Slots[i]
			break
		}
	}
	if chosen == nil {
		return fmt.Errorf("time %s is not available for service %s on %s", t, line.ServiceID, line.Date.ISO())
	}

	if line.EmployeeChoice != models.AnyEmployee && line.EmployeeChoice != "" {
		line.ResolvedEmployeeID = line.EmployeeChoice
	} else {
		employeeID, err := s.policy().Resolve(*chosen)
		if err != nil {
			return err
		}
		line.ResolvedEmployeeID = employeeID
	}
	picked := t
	line.Time = &picked
	return nil
}
