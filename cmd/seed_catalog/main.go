// seed_catalog genera el script SQL que puebla el catálogo de categorías de
// servicio a partir de data/categorias.csv (exportado en ISO-8859-1 desde la
// planilla de operaciones).
//
// Uso: go run ./cmd/seed_catalog [ruta/categorias.csv]
// Escribe: migrations/002_seed_categories.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// columnas esperadas del CSV: id;name;description;price_min;price_max;estimated_time;icon
const expectedFields = 7

func main() {
	csvPath := filepath.Join("data", "categorias.csv")
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// La planilla exporta en ISO-8859-1 (tildes y eñes); convertir a UTF-8 al leer.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.Comment = '#'

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "migrations", "002_seed_categories.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de categorías de servicio\n")
	out.WriteString("-- Generado desde data/categorias.csv\n\n")

	count := 0
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "id") {
			continue // header
		}
		if len(rec) != expectedFields {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperaban %d campos, hay %d\n", i+1, expectedFields, len(rec))
			os.Exit(1)
		}
		id, name, description := rec[0], rec[1], rec[2]
		priceMin, priceMax, estimatedTime, icon := rec[3], rec[4], rec[5], rec[6]

		fmt.Fprintf(out, "INSERT INTO service_categories (id, name, description, price_min, price_max, estimated_time, icon, active)\n")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', %s, %s, '%s', '%s', TRUE)\n",
			escapeSQL(id), escapeSQL(name), escapeSQL(description),
			priceMin, priceMax, escapeSQL(estimatedTime), escapeSQL(icon))
		out.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,\n")
		out.WriteString("  price_min = EXCLUDED.price_min, price_max = EXCLUDED.price_max,\n")
		out.WriteString("  estimated_time = EXCLUDED.estimated_time, icon = EXCLUDED.icon;\n\n")
		count++
	}

	fmt.Printf("Generado %s: %d categorías\n", outPath, count)
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
