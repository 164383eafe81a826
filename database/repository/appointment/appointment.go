package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AppointmentRepository is the appointment store checkout submits to, one
// creation call per cart line.
type AppointmentRepository interface {
	Create(ctx context.Context, req models.AppointmentRequest) (string, error)
	ListForCustomer(ctx context.Context, customerID string) ([]models.Appointment, error)
}

// MongoAppointmentRepo implements AppointmentRepository against the
// "appointments" collection.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

func NewMongoAppointmentRepo() *MongoAppointmentRepo {
	return &MongoAppointmentRepo{coll: database.Collection("appointments")}
}

// Create inserts one appointment record and returns its generated id.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, req models.AppointmentRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	appt := models.Appointment{
		ID:                 uuid.New().String(),
		AppointmentRequest: req,
	}
	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return "", fmt.Errorf("inserting appointment for service %s: %w", req.ServiceID, err)
	}
	return appt.ID, nil
}

func (repo *MongoAppointmentRepo) ListForCustomer(ctx context.Context, customerID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"start_date_time": 1})
	cursor, err := repo.coll.Find(ctx, bson.M{"customer_id": customerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing appointments for customer %s: %w", customerID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Appointment
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decoding appointments for customer %s: %w", customerID, err)
	}
	return out, nil
}
