package booking

import (
	"context"
	"fmt"
	"time"

	"trimly/models"
	"trimly/utils"

	"go.uber.org/zap"
)

// Confirm submits one appointment-creation request per cart line, in cart
// order, strictly one after another. Submission is not transactional: when a
// line fails, the appointments already created for earlier lines stand, and
// the result reports both sides so the caller can act on the partial state.
// The cart is cleared only on full success.
//
// Preconditions: every line must be Ready, and the caller must be
// authenticated. On ErrAuthRequired the client signs in out of band and
// re-invokes confirm; nothing is retried automatically.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, sessionID, customerID, accountID string) (models.ConfirmResult, error) {
	logger := utils.GetLogger()

	if customerID == "" {
		return models.ConfirmResult{}, ErrAuthRequired
	}

	cart, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		return models.ConfirmResult{}, err
	}
	if len(cart.Lines) == 0 {
		return models.ConfirmResult{}, fmt.Errorf("checkout session %s has nothing to confirm", sessionID)
	}
	for i := range cart.Lines {
		if cart.Lines[i].State() != models.LineReady {
			return models.ConfirmResult{}, &IncompleteSelectionError{Index: i, ServiceID: cart.Lines[i].ServiceID}
		}
	}

	now := time.Now().UTC()
	var result models.ConfirmResult
	type reminder struct {
		payload models.ReminderPayload
		fireAt  time.Time
	}
	var reminders []reminder

	for i := range cart.Lines {
		line := &cart.Lines[i]
		start := line.Date.At(*line.Time)
		end := start.Add(time.Duration(line.DurationMinutes) * time.Minute)

		req := models.AppointmentRequest{
			ServiceID:     line.ServiceID,
			EmployeeID:    line.ResolvedEmployeeID,
			CustomerID:    customerID,
			AccountID:     accountID,
			StartDateTime: start.Format(time.RFC3339),
			EndDateTime:   end.Format(time.RFC3339),
			Status:        models.AppointmentStatusPending,
			Cost:          line.Price,
			Deposit:       line.Deposit,
			FinalAmount:   line.Price - line.Deposit,
			Tip:           0,
			RefundAmount:  0,
			Discount:      0,
			DateCreated:   now.Format(time.RFC3339),
		}

		id, err := s.AppointmentRepo.Create(ctx, req)
		if err != nil {
			logger.Error("appointment creation failed",
				zap.String("sessionID", sessionID),
				zap.Int("line", i),
				zap.String("serviceID", line.ServiceID),
				zap.Error(err))
			// No rollback of the lines already created; the cart stays intact
			// so the customer can retry or act on the partial booking.
			result.Failed = &models.LineFailure{
				Index:     i,
				ServiceID: line.ServiceID,
				Reason:    err.Error(),
			}
			return result, nil
		}

		result.Succeeded = append(result.Succeeded, models.CreatedAppointment{
			ServiceID:     line.ServiceID,
			AppointmentID: id,
		})
		reminders = append(reminders, reminder{
			payload: models.ReminderPayload{
				AppointmentID: id,
				CustomerID:    customerID,
				ServiceName:   line.ServiceName,
				StartDateTime: req.StartDateTime,
			},
			fireAt: start.Add(-s.ReminderLead),
		})
	}

	ids := make([]string, len(result.Succeeded))
	for i, created := range result.Succeeded {
		ids[i] = created.AppointmentID
	}
	result.Confirmation = &models.BookingConfirmation{
		Reference:      ids[0],
		AppointmentIDs: ids,
	}

	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		logger.Warn("failed to clear confirmed checkout session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	if s.Reminders != nil {
		for _, r := range reminders {
			if !r.fireAt.After(now) {
				continue
			}
			if err := s.Reminders.Schedule(ctx, r.payload, r.fireAt); err != nil {
				logger.Warn("failed to queue appointment reminder",
					zap.String("appointmentID", r.payload.AppointmentID), zap.Error(err))
			}
		}
	}

	return result, nil
}
