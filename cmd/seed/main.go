package main

import (
	"fmt"
	"log"
	"os"

	"github.com/etimad/showroom-backend/internal/app/model"
	"github.com/etimad/showroom-backend/internal/spreadsheet"
	"github.com/etimad/showroom-backend/internal/store"
)

const usage = `Usage:
  go run cmd/seed/main.go <xlsx_file_path>             check an inventory sheet before import
  go run cmd/seed/main.go -template <xlsx_file_path>   write the demo inventory as a starter sheet`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	if os.Args[1] == "-template" {
		if len(os.Args) < 3 {
			log.Fatal(usage)
		}
		if err := writeTemplate(os.Args[2]); err != nil {
			log.Fatal("Failed to write template:", err)
		}
		return
	}

	filePath := os.Args[1]

	fmt.Printf("Reading XLSX file: %s\n", filePath)
	cars, err := readCarsFromXLSX(filePath)
	if err != nil {
		log.Fatal("Failed to read XLSX:", err)
	}

	fmt.Printf("Total cars to import: %d\n", len(cars))
	for _, car := range cars {
		fmt.Printf("  %-28s %8d km  AED %-10d %-10s %s\n",
			car.Title(), car.Mileage, car.Price, car.Status, car.Condition)
	}

	available := 0
	for _, car := range cars {
		if car.Status == model.CarStatusAvailable {
			available++
		}
	}
	fmt.Printf("Available: %d, other: %d\n", available, len(cars)-available)
	fmt.Println("Set INVENTORY_IMPORT_FILE to this path to load the sheet at server start.")
}

func readCarsFromXLSX(filePath string) ([]model.Car, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	return spreadsheet.ReadCars(f)
}

func writeTemplate(filePath string) error {
	f, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer f.Close()

	cars := store.Seed().Cars
	if err := spreadsheet.ExportCars(f, cars); err != nil {
		return err
	}
	fmt.Printf("Wrote %d cars to %s\n", len(cars), filePath)
	return nil
}
