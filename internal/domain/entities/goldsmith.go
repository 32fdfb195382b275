package entities

// GoldsmithProfile is the single shop profile shown on the about page.
type GoldsmithProfile struct {
	Name              string   `json:"name"`
	YearsOfExperience int      `json:"years_of_experience"`
	Specializations   []string `json:"specializations"`
	Certifications    []string `json:"certifications"`
	Description       string   `json:"description"`
	Location          string   `json:"location"`
	ContactPhone      string   `json:"contact_phone"`
	ContactEmail      string   `json:"contact_email"`
	GalleryImages     []string `json:"gallery_images"`
}

type EducationArticle struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Icon    string `json:"icon"`
}
