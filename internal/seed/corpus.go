package seed

import (
	"fmt"
	"math"

	"github.com/dbsmedya/goanonym/internal/dataset"
)

// PatientColumns is the column order of the patient table.
var PatientColumns = []string{
	"id", "name", "birth_date", "country", "diagnosis", "age", "income", "medical_expense",
}

// SamplePatients returns the literal ten-record sample corpus.
func SamplePatients() *dataset.Dataset {
	ds := dataset.New(PatientColumns...)

	rows := []struct {
		id      int64
		name    string
		birth   string
		country string
		diag    string
		age     int64
		income  float64
		expense float64
	}{
		{1, "Alice Morgan", "1988-03-14", "Germany", "Diabetes", 37, 52000.00, 337.38},
		{2, "Bruno Keller", "1979-11-02", "Germany", "Hypertension", 46, 61500.00, 270.66},
		{3, "Carla Jensen", "1991-07-23", "Denmark", "Asthma", 34, 48200.00, 408.03},
		{4, "Derek Olsen", "1985-01-09", "Denmark", "Diabetes", 40, 57300.00, 125.50},
		{5, "Elena Brandt", "1993-05-30", "Germany", "Asthma", 32, 43800.00, 512.75},
		{6, "Farid Nazari", "1982-09-17", "France", "Hypertension", 43, 66400.00, 89.20},
		{7, "Greta Lindqvist", "1990-12-05", "Sweden", "Migraine", 35, 50100.00, 233.41},
		{8, "Henrik Dahl", "1976-04-21", "Sweden", "Diabetes", 49, 72800.00, 654.09},
		{9, "Ivana Horvat", "1987-08-11", "France", "Migraine", 38, 55600.00, 301.99},
		{10, "Jonas Weber", "1994-02-27", "Germany", "Hypertension", 31, 41200.00, 178.34},
	}

	for _, r := range rows {
		ds.Append(dataset.Record{
			"id":              r.id,
			"name":            r.name,
			"birth_date":      r.birth,
			"country":         r.country,
			"diagnosis":       r.diag,
			"age":             r.age,
			"income":          r.income,
			"medical_expense": r.expense,
		})
	}

	return ds
}

// SyntheticPatients returns a deterministic corpus of n records with distinct
// (name, birth_date) pairs. Used where more volume than the literal sample is
// needed, such as the pseudonym collision property.
func SyntheticPatients(n int) *dataset.Dataset {
	countries := []string{"Germany", "Denmark", "France", "Sweden", "Norway"}
	diagnoses := []string{"Diabetes", "Hypertension", "Asthma", "Migraine"}

	ds := dataset.New(PatientColumns...)
	for i := 0; i < n; i++ {
		id := int64(i + 1)
		age := int64(25 + i%50)
		income := math.Round((30000+float64(i)*713.77)*100) / 100
		expense := math.Round((50+float64(i)*41.13)*100) / 100
		ds.Append(dataset.Record{
			"id":              id,
			"name":            fmt.Sprintf("patient-%04d", id),
			"birth_date":      fmt.Sprintf("%04d-%02d-%02d", 1950+i%50, 1+i%12, 1+i%28),
			"country":         countries[i%len(countries)],
			"diagnosis":       diagnoses[i%len(diagnoses)],
			"age":             age,
			"income":          income,
			"medical_expense": expense,
		})
	}
	return ds
}

// SampleEdges returns the literal sample link graph as an edge-list dataset.
// Node names reference patient ids.
func SampleEdges() *dataset.Dataset {
	ds := dataset.New("node_a", "node_b")

	edges := [][2]string{
		{"p01", "p02"},
		{"p01", "p03"},
		{"p02", "p04"},
		{"p03", "p05"},
		{"p04", "p06"},
		{"p05", "p07"},
		{"p06", "p08"},
		{"p07", "p09"},
		{"p08", "p10"},
		{"p02", "p05"},
	}

	for _, e := range edges {
		ds.Append(dataset.Record{"node_a": e[0], "node_b": e[1]})
	}

	return ds
}
