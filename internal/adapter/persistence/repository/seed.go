package repository

import (
	"context"
	"errors"
	"time"

	"heritage_gold/internal/domain/entities"
	"heritage_gold/internal/logging"
	"heritage_gold/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// SeedResult counts what Seed wrote.
type SeedResult struct {
	ItemsCreated   int
	ItemsSkipped   int
	ProfileCreated bool
}

// Seed loads the starter catalogue and goldsmith profile. Existing items and
// an existing profile are left untouched, so it is safe to run repeatedly.
func Seed(ctx context.Context, items interfaces.IItemRepository, profiles interfaces.IProfileRepository) (SeedResult, error) {
	var res SeedResult
	now := time.Now().UTC()

	for i, it := range SeedItems() {
		it.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
		if _, err := items.Create(ctx, it); err != nil {
			if errors.Is(err, interfaces.ErrAlreadyExists) {
				res.ItemsSkipped++
				continue
			}
			return res, err
		}
		res.ItemsCreated++
	}

	existing, err := profiles.Get(ctx)
	if err != nil {
		return res, err
	}
	if existing.Name == "" {
		if err := profiles.Put(ctx, DefaultProfile()); err != nil {
			return res, err
		}
		res.ProfileCreated = true
	}

	logging.Info("[seed][repository] done",
		zap.Int("items_created", res.ItemsCreated),
		zap.Int("items_skipped", res.ItemsSkipped),
		zap.Bool("profile_created", res.ProfileCreated),
	)
	return res, nil
}

func DefaultProfile() entities.GoldsmithProfile {
	return entities.GoldsmithProfile{
		Name:              "Heritage Gold Artisans",
		YearsOfExperience: 35,
		Specializations:   []string{"Temple Jewellery", "Wedding Sets", "Antique Designs", "Daily Wear"},
		Certifications:    []string{"BIS Certified", "Hallmark Licensed", "Traditional Craftsmanship Award"},
		Description:       "Three generations of master goldsmiths crafting timeless pieces. We blend traditional artistry with modern precision, ensuring every piece tells a story of heritage and trust.",
		Location:          "Jewellery Lane, T. Nagar, Chennai - 600017",
		ContactPhone:      "+91 98765 43210",
		ContactEmail:      "contact@heritagegold.in",
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1515562141207-7a88fb7ce338",
			"https://images.unsplash.com/photo-1601121141461-9d6647bca1ed",
			"https://images.unsplash.com/photo-1611652022419-a9419f74343d",
		},
	}
}

func SeedItems() []entities.Item {
	return []entities.Item{
		{
			ItemID: "NECK001", Name: "Lakshmi Temple Necklace", Type: "necklace", Occasion: "wedding", Gender: "female",
			Purity: "22K", WeightMin: 40, WeightMax: 50, LabourCostPerGram: 800, MakingComplexity: "high",
			Images:      []string{"https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f"},
			Description: "Exquisite temple jewellery featuring Goddess Lakshmi motifs. Handcrafted by master artisans using traditional techniques.",
			IsFeatured:  true,
		},
		{
			ItemID: "BANG001", Name: "Classic Gold Bangles (Pair)", Type: "bangles", Occasion: "daily", Gender: "female",
			Purity: "22K", WeightMin: 15, WeightMax: 20, LabourCostPerGram: 500, MakingComplexity: "medium",
			Images:      []string{"https://images.unsplash.com/photo-1535632066927-ab7c9ab60908"},
			Description: "Elegant plain bangles perfect for everyday wear. Comfortable and timeless design.",
			IsFeatured:  true,
		},
		{
			ItemID: "RING001", Name: "Men's Classic Band", Type: "ring", Occasion: "daily", Gender: "male",
			Purity: "22K", WeightMin: 4, WeightMax: 6, LabourCostPerGram: 600, MakingComplexity: "low",
			Images:      []string{"https://images.unsplash.com/photo-1605100804763-247f67b3557e"},
			Description: "Sophisticated gold band for the modern gentleman. Perfect for weddings or daily wear.",
		},
		{
			ItemID: "CHAIN001", Name: "Bismark Gold Chain", Type: "chain", Occasion: "daily", Gender: "male",
			Purity: "22K", WeightMin: 20, WeightMax: 30, LabourCostPerGram: 550, MakingComplexity: "medium",
			Images:      []string{"https://images.unsplash.com/photo-1599643477877-530eb83abc8e"},
			Description: "Bold and classic Bismark pattern chain. Sturdy construction for everyday confidence.",
			IsFeatured:  true,
		},
		{
			ItemID: "EAR001", Name: "Jhumka Earrings", Type: "earrings", Occasion: "festival", Gender: "female",
			Purity: "22K", WeightMin: 8, WeightMax: 12, LabourCostPerGram: 700, MakingComplexity: "high",
			Images:      []string{"https://images.unsplash.com/photo-1630019852942-f89202989a59"},
			Description: "Traditional jhumka earrings with intricate filigree work. Perfect for festive occasions.",
			IsFeatured:  true,
		},
		{
			ItemID: "NECK002", Name: "Mango Mala Set", Type: "necklace", Occasion: "wedding", Gender: "female",
			Purity: "22K", WeightMin: 60, WeightMax: 80, LabourCostPerGram: 900, MakingComplexity: "high",
			Images:      []string{"https://images.unsplash.com/photo-1611652022419-a9419f74343d"},
			Description: "Grand mango-shaped traditional necklace set. A bridal essential with matching earrings.",
			IsFeatured:  true,
		},
	}
}
