package repository

import (
	"context"
	"errors"
	"fmt"

	"stickynotes/model"
	"stickynotes/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	NotesCollection    = "notes"
	CountersCollection = "counters"

	noteSequence = "notes"
)

var ErrNotFound = errors.New("not found")

type NotesRepo struct {
	MongoCollection *mongo.Collection
	Counters        *mongo.Collection
}

func GetNotesRepo(db *mongo.Database) *NotesRepo {
	return &NotesRepo{
		MongoCollection: db.Collection(NotesCollection),
		Counters:        db.Collection(CountersCollection),
	}
}

// NextID allocates the next note id from the counters collection.
func (r *NotesRepo) NextID(ctx context.Context) (int64, error) {
	timer := utils.TrackDBOperation("increment", CountersCollection)
	defer timer.ObserveDuration()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := r.Counters.FindOneAndUpdate(ctx,
		bson.M{"_id": noteSequence},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		opts,
	).Decode(&counter)
	if err != nil {
		utils.TrackError("database", "sequence")
		return 0, fmt.Errorf("allocate note id: %w", err)
	}
	return counter.Seq, nil
}

func (r *NotesRepo) Insert(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("insert", NotesCollection)
	defer timer.ObserveDuration()

	if note.Author == "" {
		return errors.New("note author is required")
	}
	if _, err := r.MongoCollection.InsertOne(ctx, note); err != nil {
		utils.TrackError("database", "note_insert")
		return fmt.Errorf("insert note %d: %w", note.ID, err)
	}
	return nil
}

func (r *NotesRepo) FindByID(ctx context.Context, id int64) (*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		utils.TrackError("database", "note_lookup")
		return nil, fmt.Errorf("find note %d: %w", id, err)
	}
	return &note, nil
}

// FindByAuthor returns the author's notes oldest first.
func (r *NotesRepo) FindByAuthor(ctx context.Context, author string) ([]*model.Note, error) {
	timer := utils.TrackDBOperation("find", NotesCollection)
	defer timer.ObserveDuration()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cursor, err := r.MongoCollection.Find(ctx, bson.M{"author": author}, opts)
	if err != nil {
		utils.TrackError("database", "note_list")
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := make([]*model.Note, 0)
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

// Update writes the editable fields and updated_at of note.
func (r *NotesRepo) Update(ctx context.Context, note *model.Note) error {
	timer := utils.TrackDBOperation("update", NotesCollection)
	defer timer.ObserveDuration()

	filter := bson.M{
		"_id":    note.ID,
		"author": note.Author,
	}
	update := bson.M{
		"$set": bson.M{
			"title":      note.Title,
			"content":    note.Content,
			"category":   note.Category,
			"color":      note.Color,
			"updated_at": note.UpdatedAt,
		},
	}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		utils.TrackError("database", "note_update")
		return fmt.Errorf("update note %d: %w", note.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the note only when it belongs to author.
func (r *NotesRepo) Delete(ctx context.Context, id int64, author string) error {
	timer := utils.TrackDBOperation("delete", NotesCollection)
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": id, "author": author})
	if err != nil {
		utils.TrackError("database", "note_delete")
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
