//go:build ignore

// Regenerates the sample phone catalogue in CSV and Parquet form.
//
//	go run testdata/generate.go
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

type Phone struct {
	Name   string  `parquet:"name"`
	Brand  string  `parquet:"brand"`
	Price  int64   `parquet:"price"`
	Rating float64 `parquet:"rating"`
}

func main() {
	phones := []Phone{
		{Name: "redmi note 12", Brand: "xiaomi", Price: 199, Rating: 4.6},
		{Name: "poco x5 pro", Brand: "xiaomi", Price: 299, Rating: 4.4},
		{Name: "iphone 15 pro", Brand: "apple", Price: 999, Rating: 4.9},
		{Name: "galaxy s23 ultra", Brand: "samsung", Price: 1199, Rating: 4.8},
	}

	if err := writeCSV("testdata/phones.csv", phones); err != nil {
		log.Fatal(err)
	}
	if err := writeCSV("testdata/nodata.csv", nil); err != nil {
		log.Fatal(err)
	}
	if err := writeParquet("testdata/phones.parquet", phones); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated testdata with %d phones", len(phones))
}

func writeCSV(path string, phones []Phone) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"name", "brand", "price", "rating"}); err != nil {
		return err
	}
	for _, p := range phones {
		record := []string{
			p.Name,
			p.Brand,
			strconv.FormatInt(p.Price, 10),
			strconv.FormatFloat(p.Rating, 'f', -1, 64),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeParquet(path string, phones []Phone) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Phone](file)
	if _, err := writer.Write(phones); err != nil {
		return err
	}
	return writer.Close()
}
