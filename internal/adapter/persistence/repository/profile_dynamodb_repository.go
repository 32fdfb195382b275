package repository

import (
	"context"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/usecase/interfaces"
)

const (
	defaultProfileTableName = "goldsmith_profile"
	profileID               = "profile"
)

type profileItem struct {
	ID                string   `dynamodbav:"id"`
	Name              string   `dynamodbav:"name"`
	YearsOfExperience int      `dynamodbav:"years_of_experience"`
	Specializations   []string `dynamodbav:"specializations,omitempty"`
	Certifications    []string `dynamodbav:"certifications,omitempty"`
	Description       string   `dynamodbav:"description"`
	Location          string   `dynamodbav:"location"`
	ContactPhone      string   `dynamodbav:"contact_phone"`
	ContactEmail      string   `dynamodbav:"contact_email"`
	GalleryImages     []string `dynamodbav:"gallery_images,omitempty"`
}

// ProfileDynamoRepository stores the single goldsmith profile under a fixed id.
type ProfileDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProfileRepository = (*ProfileDynamoRepository)(nil)

func NewProfileDynamoRepository(ddb DynamoAPI, table string) *ProfileDynamoRepository {
	return &ProfileDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "PROFILE_TABLE", defaultProfileTableName),
	}
}

func (r *ProfileDynamoRepository) Get(ctx context.Context) (entities.GoldsmithProfile, error) {
	var it profileItem
	found, err := getByID(ctx, r.ddb, r.tableName, profileID, &it)
	if err != nil || !found {
		return entities.GoldsmithProfile{}, err
	}
	return entities.GoldsmithProfile{
		Name:              it.Name,
		YearsOfExperience: it.YearsOfExperience,
		Specializations:   it.Specializations,
		Certifications:    it.Certifications,
		Description:       it.Description,
		Location:          it.Location,
		ContactPhone:      it.ContactPhone,
		ContactEmail:      it.ContactEmail,
		GalleryImages:     it.GalleryImages,
	}, nil
}

func (r *ProfileDynamoRepository) Put(ctx context.Context, p entities.GoldsmithProfile) error {
	return put(ctx, r.ddb, r.tableName, profileItem{
		ID:                profileID,
		Name:              p.Name,
		YearsOfExperience: p.YearsOfExperience,
		Specializations:   p.Specializations,
		Certifications:    p.Certifications,
		Description:       p.Description,
		Location:          p.Location,
		ContactPhone:      p.ContactPhone,
		ContactEmail:      p.ContactEmail,
		GalleryImages:     p.GalleryImages,
	})
}
