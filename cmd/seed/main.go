package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"budgetbuddy/internal/config"
	"budgetbuddy/internal/db"
	"budgetbuddy/internal/model"
	"budgetbuddy/internal/repository"
)

// defaultCategories is the starter category set seeded on first run.
var defaultCategories = []model.Category{
	{Name: "Salary", Type: model.CategoryTypeIncome},
	{Name: "Freelance", Type: model.CategoryTypeIncome},
	{Name: "Investment", Type: model.CategoryTypeIncome},
	{Name: "Gift", Type: model.CategoryTypeIncome},
	{Name: "Other Income", Type: model.CategoryTypeIncome},
	{Name: "Food", Type: model.CategoryTypeExpense},
	{Name: "Transportation", Type: model.CategoryTypeExpense},
	{Name: "Shopping", Type: model.CategoryTypeExpense},
	{Name: "Bills", Type: model.CategoryTypeExpense},
	{Name: "Entertainment", Type: model.CategoryTypeExpense},
	{Name: "Healthcare", Type: model.CategoryTypeExpense},
	{Name: "Education", Type: model.CategoryTypeExpense},
	{Name: "Other Expense", Type: model.CategoryTypeExpense},
}

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Category{}); err != nil {
		logrus.Fatalf("auto-migrate: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(gormDB)

	ctx := context.Background()
	seeded := 0
	for i := range defaultCategories {
		category := defaultCategories[i]
		if err := categoryRepo.FirstOrCreate(ctx, &category); err != nil {
			logrus.Fatalf("seed category %q: %v", category.Name, err)
		}
		seeded++
	}

	logrus.WithField("count", seeded).Info("categories seeded")
}
