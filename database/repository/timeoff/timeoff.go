package timeoffRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TimeOffRepository stores staff time-off exceptions.
type TimeOffRepository interface {
	Create(ctx context.Context, exc models.TimeOffException) error
	Delete(ctx context.Context, id string) error
	// ListOverlapping returns the exceptions for one employee that could
	// produce occurrences inside the window.
	ListOverlapping(ctx context.Context, employeeID string, window models.DateWindow) ([]models.TimeOffException, error)
}

// timeOffDoc is the stored shape; dates and times are kept as their label
// strings so documents stay readable and ISO dates compare lexicographically.
type timeOffDoc struct {
	ID          string `bson:"id"`
	EmployeeID  string `bson:"employee_id"`
	Date        string `bson:"date"`
	StartTime   string `bson:"start_time"`
	EndTime     string `bson:"end_time"`
	IsRepeat    bool   `bson:"is_repeat"`
	RepeatUntil string `bson:"repeat_until,omitempty"`
	Note        string `bson:"note,omitempty"`
}

func toDoc(exc models.TimeOffException) timeOffDoc {
	doc := timeOffDoc{
		ID:         exc.ID,
		EmployeeID: exc.EmployeeID,
		Date:       exc.Date.ISO(),
		StartTime:  exc.StartTime.String(),
		EndTime:    exc.EndTime.String(),
		IsRepeat:   exc.IsRepeat,
		Note:       exc.Note,
	}
	if exc.RepeatUntil != nil {
		doc.RepeatUntil = exc.RepeatUntil.ISO()
	}
	return doc
}

func (doc timeOffDoc) toModel() (models.TimeOffException, error) {
	date, err := models.ParseDate(doc.Date)
	if err != nil {
		return models.TimeOffException{}, err
	}
	start, err := models.ParseClockTime(doc.StartTime)
	if err != nil {
		return models.TimeOffException{}, err
	}
	end, err := models.ParseClockTime(doc.EndTime)
	if err != nil {
		return models.TimeOffException{}, err
	}
	exc := models.TimeOffException{
		ID:         doc.ID,
		EmployeeID: doc.EmployeeID,
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		IsRepeat:   doc.IsRepeat,
		Note:       doc.Note,
	}
	if doc.RepeatUntil != "" {
		until, err := models.ParseDate(doc.RepeatUntil)
		if err != nil {
			return models.TimeOffException{}, err
		}
		exc.RepeatUntil = &until
	}
	return exc, nil
}

// MongoTimeOffRepo implements TimeOffRepository against the "time_off"
// collection.
type MongoTimeOffRepo struct {
	coll *mongo.Collection
}

func NewMongoTimeOffRepo() *MongoTimeOffRepo {
	return &MongoTimeOffRepo{coll: database.Collection("time_off")}
}

func (repo *MongoTimeOffRepo) Create(ctx context.Context, exc models.TimeOffException) error {
	if err := exc.Validate(); err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if _, err := repo.coll.InsertOne(ctx, toDoc(exc)); err != nil {
		return fmt.Errorf("inserting time off %s: %w", exc.ID, err)
	}
	return nil
}

func (repo *MongoTimeOffRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("deleting time off %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("time off %s not found", id)
	}
	return nil
}

func (repo *MongoTimeOffRepo) ListOverlapping(ctx context.Context, employeeID string, window models.DateWindow) ([]models.TimeOffException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// A one-off exception overlaps when its date is in the window; a repeating
	// one when it starts on or before window.End and repeats past window.Start.
	filter := bson.M{
		"employee_id": employeeID,
		"date":        bson.M{"$lte": window.End.ISO()},
		"$or": []bson.M{
			{"is_repeat": false, "date": bson.M{"$gte": window.Start.ISO()}},
			{"is_repeat": true, "repeat_until": bson.M{"$gte": window.Start.ISO()}},
		},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing time off for employee %s: %w", employeeID, err)
	}
	defer cursor.Close(ctx)

	var docs []timeOffDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decoding time off for employee %s: %w", employeeID, err)
	}

	out := make([]models.TimeOffException, 0, len(docs))
	for _, doc := range docs {
		exc, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("malformed time off document %s: %w", doc.ID, err)
		}
		out = append(out, exc)
	}
	return out, nil
}
