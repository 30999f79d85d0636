package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/entities"
	"github.com/SergeyBogomolovv/storefront-checkout/pkg/money"
	"gopkg.in/yaml.v3"
)

type cartFile struct {
	Items     []cartItem     `yaml:"items"`
	Producers []producerRule `yaml:"producers"`
}

// producerRule is a seller's own free-shipping threshold.
type producerRule struct {
	ProducerID            int64  `yaml:"producer_id"`
	FreeShippingThreshold string `yaml:"free_shipping_threshold"`
}

// cartItem keeps the price as text so "12.50" is read without float rounding.
type cartItem struct {
	ProductID  int64  `yaml:"product_id"`
	ProducerID int64  `yaml:"producer_id"`
	Name       string `yaml:"name"`
	UnitPrice  string `yaml:"unit_price"`
	Quantity   int    `yaml:"quantity"`
}

func loadCart(path string) ([]entities.CartLine, map[int64]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read cart file: %w", err)
	}

	var file cartFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse cart file: %w", err)
	}

	lines, err := file.lines()
	if err != nil {
		return nil, nil, err
	}
	thresholds, err := file.thresholds()
	if err != nil {
		return nil, nil, err
	}
	return lines, thresholds, nil
}

func (file cartFile) thresholds() (map[int64]int64, error) {
	if len(file.Producers) == 0 {
		return nil, nil
	}
	out := make(map[int64]int64, len(file.Producers))
	for i, p := range file.Producers {
		threshold, err := money.Parse(p.FreeShippingThreshold)
		if err != nil {
			return nil, fmt.Errorf("producer %d: %w", i+1, err)
		}
		out[p.ProducerID] = threshold
	}
	return out, nil
}

func (file cartFile) lines() ([]entities.CartLine, error) {

	lines := make([]entities.CartLine, 0, len(file.Items))
	for i, it := range file.Items {
		price, err := money.Parse(it.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		if it.ProductID <= 0 || it.Quantity <= 0 {
			return nil, fmt.Errorf("item %d: product_id and quantity must be positive", i+1)
		}
		lines = append(lines, entities.CartLine{
			ProductID:  it.ProductID,
			ProducerID: it.ProducerID,
			Name:       it.Name,
			UnitPrice:  price,
			Quantity:   it.Quantity,
		})
	}
	return lines, nil
}

// memoryCart is the cart the payment branch clears once an order completes.
type memoryCart struct {
	mu    sync.Mutex
	lines []entities.CartLine
}

func (c *memoryCart) Clear(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
	return nil
}

func (c *memoryCart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}
