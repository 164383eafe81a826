package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"trimly/database"
	"trimly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository provides read access to the service catalog and the staff
// roster. Both are managed elsewhere and consumed read-only by checkout.
type CatalogRepository interface {
	GetService(ctx context.Context, serviceID string) (*models.Service, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	ListEmployeesForService(ctx context.Context, serviceID string) ([]models.Employee, error)
}

// MongoCatalogRepo implements CatalogRepository against the "services" and
// "employees" collections.
type MongoCatalogRepo struct {
	services  *mongo.Collection
	employees *mongo.Collection
}

func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{
		services:  database.Collection("services"),
		employees: database.Collection("employees"),
	}
}

func (repo *MongoCatalogRepo) GetService(ctx context.Context, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	if err := repo.services.FindOne(ctx, bson.M{"id": serviceID}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("service %s not found", serviceID)
		}
		return nil, fmt.Errorf("fetching service %s: %w", serviceID, err)
	}
	return &svc, nil
}

func (repo *MongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Service
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decoding services: %w", err)
	}
	return out, nil
}

func (repo *MongoCatalogRepo) ListEmployeesForService(ctx context.Context, serviceID string) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.employees.Find(ctx, bson.M{"service_ids": serviceID})
	if err != nil {
		return nil, fmt.Errorf("listing employees for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var out []models.Employee
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decoding employees for service %s: %w", serviceID, err)
	}
	return out, nil
}
