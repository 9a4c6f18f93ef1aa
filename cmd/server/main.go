package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/ArvinAIEngineer/mdm/internal/db"
	"github.com/ArvinAIEngineer/mdm/internal/handlers"
	"github.com/ArvinAIEngineer/mdm/internal/router"
	"github.com/ArvinAIEngineer/mdm/internal/session"
	"github.com/ArvinAIEngineer/mdm/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	db.Init()
	handlers.Store = store.NewGorm(db.DB)
	handlers.Sessions = session.NewStore(session.NewClient())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	fmt.Println("(SUCCESS): server listening on port", port)
	log.Fatal(http.ListenAndServe(":"+port, router.RegisterRouter()))
}
