package main

import (
	"log"
	"os"

	"listing-service/internal"
)

// Загрузка фида из JSON-файла: путь берется из первого аргумента или FEED_FILE_PATH.
func main() {
	var feedPath string
	if len(os.Args) > 1 {
		feedPath = os.Args[1]
	}

	application, err := internal.NewApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.RunIngest(feedPath); err != nil {
		log.Fatalf("Feed ingestion failed: %v", err)
	}
}
