package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/multierr"

	"github.com/carnamarket/backend/internal/categories"
	"github.com/carnamarket/backend/internal/groups"
	"github.com/carnamarket/backend/pkg/config"
	"github.com/carnamarket/backend/pkg/db"
	"github.com/carnamarket/backend/pkg/logger"
)

func strPtr(s string) *string { return &s }

var seedGroups = []groups.CreateGroupDTO{
	{Name: "Aalst Carnavalisten", City: "Aalst", Province: strPtr("Oost-Vlaanderen"), Country: "Belgium", IsVerified: true},
	{Name: "De Gilles van Binche", City: "Binche", Province: strPtr("Hainaut"), Country: "Belgium", IsVerified: true},
	{Name: "Karnaval Halle", City: "Halle", Province: strPtr("Vlaams-Brabant"), Country: "Belgium", IsVerified: true},
	{Name: "Orde van de Blauwe Schuit", City: "Maastricht", Province: strPtr("Limburg"), Country: "Netherlands", IsVerified: false},
}

var seedCategories = []categories.CreateCategoryDTO{
	{Name: "Costumes", Slug: "costumes", Emoji: strPtr("🎭"), Description: strPtr("Full carnival costumes and suits")},
	{Name: "Masks & Headwear", Slug: "masks-headwear", Emoji: strPtr("👑"), Description: strPtr("Masks, hats and headpieces")},
	{Name: "Accessories", Slug: "accessories", Emoji: strPtr("🎀"), Description: strPtr("Gloves, bags, jewelry and props")},
	{Name: "Footwear", Slug: "footwear", Emoji: strPtr("👞"), Description: strPtr("Clogs, boots and parade shoes")},
	{Name: "Fabrics & Materials", Slug: "fabrics-materials", Emoji: strPtr("🧵"), Description: strPtr("Fabrics, feathers and sequins for makers")},
	{Name: "Group Gear", Slug: "group-gear", Emoji: strPtr("🥁"), Description: strPtr("Banners, instruments and float parts")},
}

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, cfg.App, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := dbClient.SyncSchema(ctx); err != nil {
		logg.Error(ctx, "failed to sync schema", err)
		os.Exit(1)
	}

	groupsRepo := groups.NewRepository(dbClient.DB())
	categoriesRepo := categories.NewRepository(dbClient.DB())

	// One bad record keeps the rest of the batch going.
	var errs error

	for _, dto := range seedGroups {
		group, existed, err := groupsRepo.FindOrCreate(ctx, dto)
		if err != nil {
			logg.Error(logg.WithField(ctx, "group", dto.Name), "failed to seed carnival group", err)
			errs = multierr.Append(errs, err)
			continue
		}
		fields := map[string]any{"group": group.Name, "city": group.City, "existed": existed}
		logg.Info(logg.WithFields(ctx, fields), "carnival group seeded")
	}

	for _, dto := range seedCategories {
		category, existed, err := categoriesRepo.FindOrCreate(ctx, dto)
		if err != nil {
			logg.Error(logg.WithField(ctx, "category", dto.Slug), "failed to seed category", err)
			errs = multierr.Append(errs, err)
			continue
		}
		fields := map[string]any{"category": category.Slug, "existed": existed}
		logg.Info(logg.WithFields(ctx, fields), "category seeded")
	}

	if errs != nil {
		logg.Error(ctx, "seeding finished with errors", errs)
		os.Exit(1)
	}
	logg.Info(ctx, "seeding complete")
}
