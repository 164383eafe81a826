package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ScheduleRepository provides read access to per-employee weekly shift
// schedules. Schedules are produced elsewhere (roster management) and are
// consumed read-only here.
type ScheduleRepository interface {
	GetWeekSchedule(ctx context.Context, employeeID string, weekStart models.CalendarDate) (*models.WeeklySchedule, error)
	GetDaySchedule(ctx context.Context, employeeID string, date models.CalendarDate) (*models.DaySchedule, error)
}

// MongoScheduleRepo implements ScheduleRepository against the
// "weekly_schedules" collection.
type MongoScheduleRepo struct {
	coll *mongo.Collection
}

func NewMongoScheduleRepo() *MongoScheduleRepo {
	return &MongoScheduleRepo{coll: database.Collection("weekly_schedules")}
}

// GetWeekSchedule fetches one employee's schedule for the week starting at
// weekStart. A missing week is not an error; it returns nil.
func (repo *MongoScheduleRepo) GetWeekSchedule(ctx context.Context, employeeID string, weekStart models.CalendarDate) (*models.WeeklySchedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"employee_id": employeeID, "week_start": weekStart.ISO()}
	var week models.WeeklySchedule
	if err := repo.coll.FindOne(ctx, filter).Decode(&week); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("fetching week schedule for employee %s: %w", employeeID, err)
	}
	return &week, nil
}

// GetDaySchedule fetches one employee's intervals for a single day, converted
// into domain form. A day with no stored schedule returns nil.
func (repo *MongoScheduleRepo) GetDaySchedule(ctx context.Context, employeeID string, date models.CalendarDate) (*models.DaySchedule, error) {
	week, err := repo.GetWeekSchedule(ctx, employeeID, WeekStartOf(date))
	if err != nil {
		return nil, err
	}
	if week == nil {
		return nil, nil
	}

	for _, day := range week.Days {
		if day.Date != date.ISO() {
			continue
		}
		sched := &models.DaySchedule{EmployeeID: employeeID, Date: date}
		for _, item := range day.Items {
			interval, err := item.Interval()
			if err != nil {
				return nil, fmt.Errorf("malformed schedule item for employee %s on %s: %w", employeeID, date, err)
			}
			sched.Intervals = append(sched.Intervals, interval)
		}
		return sched, nil
	}
	return nil, nil
}

// WeekStartOf returns the Monday on or before the given date, the key weekly
// schedules are stored under.
func WeekStartOf(date models.CalendarDate) models.CalendarDate {
	offset := (int(date.Time().Weekday()) + 6) % 7
	return date.AddDays(-offset)
}
