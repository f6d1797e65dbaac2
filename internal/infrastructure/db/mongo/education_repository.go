package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

const educationCollection = "education"

type EducationRepository struct {
	coll *mongo.Collection
}

func NewEducationRepository(db *mongo.Database) *EducationRepository {
	return &EducationRepository{coll: db.Collection(educationCollection)}
}

type mongoEducation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UniversityName string             `bson:"university_name"`
	Degree         string             `bson:"degree"`
	Program        string             `bson:"program,omitempty"`
	CoursesTaken   string             `bson:"courses_taken,omitempty"`
	StartDate      time.Time          `bson:"start_date,omitempty"`
	EndDate        time.Time          `bson:"end_date,omitempty"`
}

func (r *EducationRepository) Create(ctx context.Context, edu *domain.Education) (*domain.Education, error) {
	doc := mongoEducation{
		UniversityName: edu.UniversityName,
		Degree:         edu.Degree,
		Program:        edu.Program,
		CoursesTaken:   edu.CoursesTaken,
		StartDate:      edu.StartDate,
		EndDate:        edu.EndDate,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert education: %w", err)
	}

	created := *edu
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *EducationRepository) FindByID(ctx context.Context, id string) (*domain.Education, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrEducationNotFound
	}
	var me mongoEducation
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&me); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrEducationNotFound
		}
		return nil, fmt.Errorf("find education: %w", err)
	}
	return me.toDomain(), nil
}

func (r *EducationRepository) FindAll(ctx context.Context) ([]*domain.Education, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find education: %w", err)
	}
	defer cur.Close(ctx)

	var entries []*domain.Education
	for cur.Next(ctx) {
		var me mongoEducation
		if err := cur.Decode(&me); err != nil {
			return nil, fmt.Errorf("decode education: %w", err)
		}
		entries = append(entries, me.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate education: %w", err)
	}
	return entries, nil
}

func (me *mongoEducation) toDomain() *domain.Education {
	return &domain.Education{
		ID:             me.ID.Hex(),
		UniversityName: me.UniversityName,
		Degree:         me.Degree,
		Program:        me.Program,
		CoursesTaken:   me.CoursesTaken,
		StartDate:      me.StartDate,
		EndDate:        me.EndDate,
	}
}
