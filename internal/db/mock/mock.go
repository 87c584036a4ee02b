package mock

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "escandallo/internal/log"
	"escandallo/models"
)

// New returns an in-memory sqlite database seeded with a small
// representative restaurant: priced ingredients, a base preparation, a
// costed dish on the carta, and one event menu.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:escandallo-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.Supplier{},
		&models.Ingredient{},
		&models.PriceRecord{},
		&models.BasePreparation{},
		&models.PreparationLine{},
		&models.Dish{},
		&models.CompositionLine{},
		&models.MenuListing{},
		&models.EventMenu{},
		&models.EventMenuCourse{},
		&models.EventMenuOption{},
	); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	butcher := models.Supplier{Name: "Mercado Central", Active: true}
	if err := db.WithContext(ctx).Create(&butcher).Error; err != nil {
		return err
	}

	beef := models.Ingredient{
		Name:         "Beef Tenderloin",
		Category:     models.CategoryMeat,
		Unit:         "kg",
		TaxPct:       dec("21"),
		ShrinkagePct: dec("10"),
		Active:       true,
	}
	butter := models.Ingredient{
		Name:     "Butter",
		Category: models.CategoryDairy,
		Unit:     "kg",
		TaxPct:   dec("10"),
		Active:   true,
	}
	bone := models.Ingredient{
		Name:     "Beef Bone",
		Category: models.CategoryMeat,
		Unit:     "kg",
		Active:   true,
	}
	wine := models.Ingredient{
		Name:     "House Red",
		Category: models.CategoryBeverage,
		Unit:     "bottle",
		TaxPct:   dec("21"),
		Active:   true,
	}
	for _, ing := range []*models.Ingredient{&beef, &butter, &bone, &wine} {
		if err := db.WithContext(ctx).Create(ing).Error; err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	prices := []models.PriceRecord{
		{IngredientID: beef.ID, SupplierID: &butcher.ID, UnitPrice: dec("900"), EffectiveDate: now.AddDate(0, -2, 0), Current: false},
		{IngredientID: beef.ID, SupplierID: &butcher.ID, UnitPrice: dec("1000"), EffectiveDate: now, Current: true},
		{IngredientID: butter.ID, UnitPrice: dec("8"), EffectiveDate: now, Current: true},
		{IngredientID: bone.ID, UnitPrice: dec("3"), EffectiveDate: now, Current: true},
		{IngredientID: wine.ID, UnitPrice: dec("10"), EffectiveDate: now, Current: true},
	}
	for i := range prices {
		if err := db.WithContext(ctx).Create(&prices[i]).Error; err != nil {
			return err
		}
	}

	stock := models.BasePreparation{
		Name:         "Beef Stock",
		PortionYield: 10,
		Active:       true,
		Lines: []models.PreparationLine{
			{IngredientID: bone.ID, Quantity: dec("2"), Position: 0},
			{IngredientID: butter.ID, Quantity: dec("0.1"), Position: 1},
		},
	}
	if err := db.WithContext(ctx).Create(&stock).Error; err != nil {
		return err
	}

	entrecote := models.Dish{
		Name:          "Entrecote with Red Wine Sauce",
		Section:       models.SectionMains,
		PortionYield:  1,
		Preparation:   "Sear the beef, rest, finish with the reduced stock.",
		RecipeVersion: models.DefaultRecipeVersion,
		Active:        true,
		Lines: []models.CompositionLine{
			{IngredientID: &beef.ID, Quantity: dec("0.3"), Position: 0},
			{PreparationID: &stock.ID, Quantity: dec("1"), Position: 1},
		},
	}
	if err := db.WithContext(ctx).Create(&entrecote).Error; err != nil {
		return err
	}

	listing := models.MenuListing{
		DishID:          entrecote.ID,
		MenuPrice:       dec("1500"),
		TargetMarginPct: dec("30"),
		Listed:          true,
	}
	if err := db.WithContext(ctx).Create(&listing).Error; err != nil {
		return err
	}

	banquet := models.EventMenu{
		Name:            "Autumn Banquet",
		Description:     "Set menu for group bookings.",
		GuestCount:      40,
		TargetMarginPct: dec("30"),
		SalePrice:       dec("1800"),
		Courses: []models.EventMenuCourse{
			{Course: models.CourseMains, Quantity: 1},
			{Course: models.CourseBeverages, Quantity: 2},
		},
		Options: []models.EventMenuOption{
			{Course: models.CourseMains, DishID: &entrecote.ID, SnapshotCost: dec("400.28"), SnapshotPrice: dec("1500")},
			{Course: models.CourseBeverages, IngredientID: &wine.ID, SnapshotCost: dec("12.1"), SnapshotPrice: dec("30")},
		},
	}
	if err := db.WithContext(ctx).Create(&banquet).Error; err != nil {
		return err
	}

	return nil
}

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}
