// Command datagen seeds the customer store with synthetic records for local
// development and matching demos. It skips generation when records already
// exist.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ArvinAIEngineer/mdm/internal/db"
	"github.com/ArvinAIEngineer/mdm/internal/models"
	"github.com/ArvinAIEngineer/mdm/internal/store"
)

const numRecords = 100

var (
	firstNames = []string{
		"Ravi", "Priya", "Amit", "Sunita", "Rahul", "Anita", "Vikram", "Neha",
		"Suresh", "Kavita", "Arjun", "Meera", "Rajesh", "Pooja", "Sanjay", "Divya",
	}
	lastNames = []string{
		"Kumar", "Sharma", "Patel", "Singh", "Gupta", "Reddy", "Iyer", "Nair",
		"Mehta", "Joshi", "Chopra", "Rao",
	}
	streets   = []string{"Main St", "Park Ave", "Oak Rd", "MG Road", "Church St"}
	cities    = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata"}
	companies = []string{
		"Infotech Solutions", "Apex Industries", "Bluestone Traders",
		"Nimbus Logistics", "Crescent Textiles", "Vertex Consulting",
	}
)

func randomCustomer() models.ExtractedRecord {
	name := firstNames[rand.Intn(len(firstNames))] + " " + lastNames[rand.Intn(len(lastNames))]
	phone := fmt.Sprintf("+91%d", 6000000000+rand.Int63n(4000000000))
	dob := fmt.Sprintf("%d-%02d-%02d", 1970+rand.Intn(31), 1+rand.Intn(12), 1+rand.Intn(28))
	address := fmt.Sprintf("%d %s, %s", 100+rand.Intn(900), streets[rand.Intn(len(streets))], cities[rand.Intn(len(cities))])
	email := strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com"
	company := companies[rand.Intn(len(companies))]
	return models.ExtractedRecord{
		Name:    &name,
		Phone:   &phone,
		DOB:     &dob,
		Address: &address,
		Email:   &email,
		Company: &company,
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	db.Init()
	s := store.NewGorm(db.DB)

	existing, err := s.ListAll()
	if err != nil {
		log.Fatal("failed to read customer records: ", err)
	}
	if len(existing) > 0 {
		fmt.Printf("customer store already has %d records, skipping generation\n", len(existing))
		return
	}

	for i := 0; i < numRecords; i++ {
		if _, err := s.Insert(randomCustomer()); err != nil {
			log.Fatal("failed to insert customer: ", err)
		}
	}
	fmt.Printf("seeded %d customer records\n", numRecords)
}
