package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"courtbooker/internal/config"
	"courtbooker/internal/models"
	"courtbooker/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	bookingsCollection = "bookings"
	profilesCollection = "profiles"
)

const defaultURI = "mongodb://localhost:27017"

type Storage struct {
	client   *mongo.Client
	bookings *mongo.Collection
	profiles *mongo.Collection
	timeout  time.Duration
}

// InitDB connects to the document store. Missing settings are logged as a
// warning per field and the storage is still returned; operations will fail
// until the deployment is fixed.
func InitDB(cfg *config.Mongo, log *slog.Logger) (*Storage, error) {
	missing := cfg.MissingFields()
	for _, field := range missing {
		log.Warn("missing store config", slog.String("field", field))
	}

	uri := cfg.URI
	if uri == "" {
		uri = defaultURI
	}
	dbName := cfg.Database
	if dbName == "" {
		dbName = "courtbooker"
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the store: %w", err)
	}

	if len(missing) == 0 {
		if err = client.Ping(ctx, nil); err != nil {
			return nil, fmt.Errorf("failed to ping the store: %w", err)
		}
	}

	db := client.Database(dbName)

	return &Storage{
		client:   client,
		bookings: db.Collection(bookingsCollection),
		profiles: db.Collection(profilesCollection),
		timeout:  cfg.Timeout,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// EnsureIndexes creates the indexes backing the two live queries. Best
// effort; callers log and continue on failure.
func (s *Storage) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.bookings.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "startMinutes", Value: 1}}},
		{Keys: bson.D{{Key: "phone", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}

	return nil
}

// CreateBooking inserts the booking and returns the assigned id.
func (s *Storage) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	if _, err := s.bookings.InsertOne(ctx, booking); err != nil {
		return "", fmt.Errorf("failed to create booking: %w", err)
	}

	return booking.ID, nil
}

// DeleteBooking removes the booking and returns the removed document, so the
// caller can notify watchers of the affected date and phone.
func (s *Storage) DeleteBooking(ctx context.Context, id string) (models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var booking models.Booking
	err := s.bookings.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("failed to delete booking: %w", err)
	}

	return booking, nil
}

// BookingsByDate returns the same-date bookings ordered by start minutes
// ascending.
func (s *Storage) BookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startMinutes", Value: 1}})

	cursor, err := s.bookings.Find(ctx, bson.M{"date": date}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by date: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

// BookingsByPhone returns a phone's bookings ordered by date descending, then
// start minutes ascending.
func (s *Storage) BookingsByPhone(ctx context.Context, phone string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "startMinutes", Value: 1},
	})

	cursor, err := s.bookings.Find(ctx, bson.M{"phone": phone}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings by phone: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}

// Profile returns the remembered identity for a device.
func (s *Storage) Profile(ctx context.Context, deviceID string) (models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var profile models.Profile
	err := s.profiles.FindOne(ctx, bson.M{"_id": deviceID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Profile{}, storage.ErrProfileNotFound
		}
		return models.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// SaveProfile upserts the device's remembered identity.
func (s *Storage) SaveProfile(ctx context.Context, profile models.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)

	if _, err := s.profiles.ReplaceOne(ctx, bson.M{"_id": profile.DeviceID}, profile, opts); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}
