package chatRepo

import (
	"context"
	"fmt"
	"time"

	"taily/database"
	"taily/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	chats    *mongo.Collection
	messages *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	repo := &MongoChatRepo{
		chats:    database.DB().Collection("Chats"),
		messages: database.DB().Collection("ChatMessages"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoChatRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.chats.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "bookingId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create chat indexes: %w", err)
	}

	_, err = r.messages.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "bookingId", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create message indexes: %w", err)
	}
	return nil
}

// GetChat retrieves the chat head for a booking. Returns nil when the thread
// has not been opened yet.
func (r *MongoChatRepo) GetChat(bookingID string) (*models.Chat, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var chat models.Chat
	if err := r.chats.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&chat); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch chat for booking %s: %w", bookingID, err)
	}
	return &chat, nil
}

// UpsertChat creates or refreshes the chat head for a booking.
func (r *MongoChatRepo) UpsertChat(chat *models.Chat) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"bookingId": chat.BookingID}
	update := bson.M{"$set": bson.M{
		"users":         chat.Users,
		"lastMessage":   chat.LastMessage,
		"lastTimestamp": chat.LastTimestamp,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.chats.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert chat for booking %s: %w", chat.BookingID, err)
	}
	return nil
}

// AppendMessage stores a message and refreshes the chat head preview.
func (r *MongoChatRepo) AppendMessage(message *models.ChatMessage) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.messages.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}

	filter := bson.M{"bookingId": message.BookingID}
	update := bson.M{"$set": bson.M{
		"lastMessage":   message.Text,
		"lastTimestamp": message.Timestamp,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.chats.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to refresh chat head: %w", err)
	}
	return nil
}

// GetMessages retrieves all messages for a booking, oldest first.
func (r *MongoChatRepo) GetMessages(bookingID string) ([]models.ChatMessage, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	cursor, err := r.messages.Find(ctx, bson.M{"bookingId": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	var msgs []models.ChatMessage
	for cursor.Next(ctx) {
		var m models.ChatMessage
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode chat message: %w", err)
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

// MarkRead records the given user on every message of the thread.
func (r *MongoChatRepo) MarkRead(bookingID, userID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"bookingId": bookingID, "readBy": bson.M{"$ne": userID}}
	update := bson.M{"$addToSet": bson.M{"readBy": userID}}

	if _, err := r.messages.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to mark chat %s read: %w", bookingID, err)
	}
	return nil
}
