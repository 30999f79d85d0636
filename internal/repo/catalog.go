package repo

import "github.com/SergeyBogomolovv/storefront-checkout/internal/entities"

// SandboxCatalog is the product set the sandbox backend starts with.
func SandboxCatalog() []entities.Product {
	return []entities.Product{
		{ID: 1, ProducerID: 10, ProducerName: "Kritsa Groves", Name: "Extra Virgin Olive Oil 1L", Price: 1250, WeightGrams: 1000, Stock: 100},
		{ID: 2, ProducerID: 10, ProducerName: "Kritsa Groves", Name: "Thyme Honey 450g", Price: 900, WeightGrams: 450, Stock: 100},
		{ID: 3, ProducerID: 20, ProducerName: "Epirus Dairy", Name: "Feta PDO 400g", Price: 850, WeightGrams: 400, Stock: 100},
		{ID: 4, ProducerID: 20, ProducerName: "Epirus Dairy", Name: "Graviera 300g", Price: 1100, WeightGrams: 300, Stock: 100},
		{ID: 5, ProducerID: 30, ProducerName: "Naxos Farms", Name: "Kitron Liqueur 500ml", Price: 2400, WeightGrams: 900, Stock: 20},
		{ID: 6, ProducerID: 30, ProducerName: "Naxos Farms", Name: "Santorini Fava 500g", Price: 650, WeightGrams: 500, Stock: 0},
	}
}
