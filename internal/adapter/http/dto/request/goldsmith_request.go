package request

import "heritage_gold/internal/domain/entities"

type GoldsmithRequest struct {
	Name              string   `json:"name" binding:"required"`
	YearsOfExperience int      `json:"years_of_experience" binding:"gte=0"`
	Specializations   []string `json:"specializations"`
	Certifications    []string `json:"certifications"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	ContactPhone      string   `json:"contact_phone"`
	ContactEmail      string   `json:"contact_email"`
	GalleryImages     []string `json:"gallery_images"`
}

func (r GoldsmithRequest) ToEntity() entities.GoldsmithProfile {
	return entities.GoldsmithProfile{
		Name:              r.Name,
		YearsOfExperience: r.YearsOfExperience,
		Specializations:   r.Specializations,
		Certifications:    r.Certifications,
		Description:       r.Description,
		Location:          r.Location,
		ContactPhone:      r.ContactPhone,
		ContactEmail:      r.ContactEmail,
		GalleryImages:     r.GalleryImages,
	}
}
