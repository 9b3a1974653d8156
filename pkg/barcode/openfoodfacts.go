package barcode

import (
	"Pantry-Backend/domain"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const defaultDirectoryURL = "https://world.openfoodfacts.org"

type (
	// ExternalDirectory resolves a barcode against a public product database.
	// A miss is (nil, nil); implementations must never surface transport
	// errors, since external resolution is best-effort enrichment.
	ExternalDirectory interface {
		LookupProduct(ctx context.Context, barcode string) (*domain.ExternalProduct, error)
	}

	openFoodFactsClient struct {
		baseURL string
		client  *http.Client
	}
)

// NewOpenFoodFactsClient builds a directory client against the Open Food
// Facts API. An empty baseURL selects the public instance.
func NewOpenFoodFactsClient(baseURL string) ExternalDirectory {
	if baseURL == "" {
		baseURL = defaultDirectoryURL
	}
	return &openFoodFactsClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *openFoodFactsClient) LookupProduct(ctx context.Context, barcode string) (*domain.ExternalProduct, error) {
	url := fmt.Sprintf("%s/api/v0/product/%s.json", c.baseURL, barcode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil
	}

	resp, err := c.client.Do(req)
	if err != nil {
		// Network unavailable reads the same as "product does not exist".
		log.Printf("product directory lookup failed for %s: %v", barcode, err)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	var payload struct {
		Status  int `json:"status"`
		Product struct {
			ProductName string `json:"product_name"`
			Brands      string `json:"brands"`
			Categories  string `json:"categories"`
			Quantity    string `json:"quantity"`
			ImageURL    string `json:"image_url"`
			Nutriments  struct {
				EnergyKcal100g    float64 `json:"energy-kcal_100g"`
				Proteins100g      float64 `json:"proteins_100g"`
				Carbohydrates100g float64 `json:"carbohydrates_100g"`
				Fat100g           float64 `json:"fat_100g"`
			} `json:"nutriments"`
		} `json:"product"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("product directory returned malformed payload for %s: %v", barcode, err)
		return nil, nil
	}

	if payload.Status != 1 || payload.Product.ProductName == "" {
		return nil, nil
	}

	return &domain.ExternalProduct{
		Barcode:         barcode,
		Name:            payload.Product.ProductName,
		Brand:           payload.Product.Brands,
		Categories:      payload.Product.Categories,
		Unit:            payload.Product.Quantity,
		ImageURL:        payload.Product.ImageURL,
		CaloriesPer100g: payload.Product.Nutriments.EnergyKcal100g,
		ProteinPer100g:  payload.Product.Nutriments.Proteins100g,
		CarbsPer100g:    payload.Product.Nutriments.Carbohydrates100g,
		FatPer100g:      payload.Product.Nutriments.Fat100g,
	}, nil
}
