package constants

// Обменник для событий сервиса объявлений
const (
	ListingExchange     = "listing_exchange"
	ListingExchangeType = "topic"
)

// Ключи маршрутизации
const (
	RoutingKeyIngestReports = "listing.ingest.reports"
)
