package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/wfxclan/clanbot/internal/models"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Bulk-imports loadouts from a spreadsheet. Expected columns per row:
// weapon_name, weapon_code, weapon_image (optional), added_by.
// Usage: go run ./scripts/import_loadouts loadouts.xlsx
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: import_loadouts <file.xlsx>")
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	f, err := excelize.OpenFile(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	totalImported := 0

	for _, sheetName := range f.GetSheetList() {
		fmt.Printf("Importing sheet: %s\n", sheetName)
		rows, err := f.GetRows(sheetName)
		if err != nil {
			fmt.Printf("Error reading sheet %s: %v\n", sheetName, err)
			continue
		}

		for i, row := range rows {
			if i == 0 || len(row) < 2 { // Skip header or invalid rows
				continue
			}

			// row[0]: weapon name
			// row[1]: weapon code
			// row[2]: image URL (optional)
			// row[3]: added by (optional, defaults to "import")

			loadout := models.Loadout{
				WeaponName: row[0],
				WeaponCode: row[1],
				AddedBy:    "import",
			}
			if len(row) > 2 {
				loadout.WeaponImage = row[2]
			}
			if len(row) > 3 && row[3] != "" {
				loadout.AddedBy = row[3]
			}

			if err := db.Create(&loadout).Error; err != nil {
				fmt.Printf("Error creating loadout in row %d: %v\n", i, err)
			} else {
				totalImported++
			}
		}
	}

	fmt.Printf("Successfully imported %d loadouts.\n", totalImported)
}
