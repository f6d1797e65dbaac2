package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/djanguicore/portfolio-backend/internal/core/domain"
)

const skillsCollection = "skills"

type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(skillsCollection)}
}

type mongoSkill struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Category  string             `bson:"category"`
	SkillName string             `bson:"skill_name"`
	Framework string             `bson:"framework,omitempty"`
	Icon      string             `bson:"icon,omitempty"`
}

func (r *SkillRepository) Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	doc := mongoSkill{
		Category:  skill.Category,
		SkillName: skill.SkillName,
		Framework: skill.Framework,
		Icon:      skill.Icon,
	}
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert skill: %w", err)
	}

	created := *skill
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSkillNotFound
	}
	var ms mongoSkill
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ms); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrSkillNotFound
		}
		return nil, fmt.Errorf("find skill: %w", err)
	}
	return ms.toDomain(), nil
}

func (r *SkillRepository) FindAll(ctx context.Context) ([]*domain.Skill, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find skills: %w", err)
	}
	defer cur.Close(ctx)

	var skills []*domain.Skill
	for cur.Next(ctx) {
		var ms mongoSkill
		if err := cur.Decode(&ms); err != nil {
			return nil, fmt.Errorf("decode skill: %w", err)
		}
		skills = append(skills, ms.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate skills: %w", err)
	}
	return skills, nil
}

func (ms *mongoSkill) toDomain() *domain.Skill {
	return &domain.Skill{
		ID:        ms.ID.Hex(),
		Category:  ms.Category,
		SkillName: ms.SkillName,
		Framework: ms.Framework,
		Icon:      ms.Icon,
	}
}
