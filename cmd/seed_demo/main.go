// seed_demo genera el script SQL con los datos de demostración del
// restaurante: ingredientes con su reabastecimiento inicial en el historial,
// carta con recetas, personal y un pedido de ejemplo para probar los hooks.
//
// Uso: go run ./cmd/seed_demo
// Escribe: internal/infrastructure/postgres/migrations/007_seed_demo.sql
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/comandaplus/pos-api/pkg/normalize"
)

type ingredientRow struct {
	id, name, unit        string
	stock, min, max, cost string
	supplier              string
}

type productRow struct {
	id, name, category, price string
}

type recipeRow struct {
	productID, ingredientID, quantity string
}

type userRow struct {
	id, name, email, role string
}

var ingredients = []ingredientRow{
	{"ing-harina", "Harina de trigo", "kg", "25", "5", "50", "2800", "Molinos San Jorge"},
	{"ing-queso", "Queso mozzarella", "kg", "8", "2", "20", "18500", "Lácteos La Pradera"},
	{"ing-tomate", "Tomate chonto", "kg", "12", "3", "30", "3200", "Plaza de Paloquemao"},
	{"ing-cebolla", "Cebolla cabezona", "kg", "7", "2", "15", "2600", "Plaza de Paloquemao"},
	{"ing-carne", "Carne de res molida", "kg", "6", "2", "15", "22000", "Frigorífico San Martín"},
	{"ing-pollo", "Pechuga de pollo", "kg", "10", "3", "25", "14500", "Avícola El Dorado"},
	{"ing-arroz", "Arroz blanco", "kg", "40", "10", "80", "3600", ""},
	{"ing-frijol", "Fríjol cargamanto", "kg", "15", "4", "30", "9800", ""},
	{"ing-aceite", "Aceite vegetal", "l", "18", "5", "40", "7500", ""},
	{"ing-leche", "Leche entera", "l", "20", "6", "40", "3400", "Lácteos La Pradera"},
	{"ing-cafe", "Café molido", "kg", "5", "1", "10", "28000", "Cafetal del Huila"},
	{"ing-azucar", "Azúcar", "kg", "22", "5", "50", "4200", ""},
	{"ing-panela", "Panela", "kg", "9", "2", "20", "5600", ""},
	{"ing-pan", "Pan de hamburguesa", "und", "30", "10", "60", "900", "Panadería El Trigal"},
	{"ing-papa", "Papa criolla", "kg", "16", "4", "35", "4100", "Plaza de Paloquemao"},
	{"ing-mora", "Mora", "kg", "4", "1.5", "10", "6800", ""},
}

var products = []productRow{
	{"prod-bandeja", "Bandeja paisa", "Platos fuertes", "38000"},
	{"prod-pizza", "Pizza margarita", "Pizzas", "32000"},
	{"prod-burger", "Hamburguesa de la casa", "Hamburguesas", "26000"},
	{"prod-arroz-pollo", "Arroz con pollo", "Platos fuertes", "28000"},
	{"prod-jugo-mora", "Jugo de mora en leche", "Bebidas", "9000"},
	{"prod-tinto", "Tinto campesino", "Bebidas", "3500"},
	{"prod-aromatica", "Aromática de panela", "Bebidas", "4000"},
}

var recipes = []recipeRow{
	{"prod-bandeja", "ing-carne", "0.250"},
	{"prod-bandeja", "ing-arroz", "0.200"},
	{"prod-bandeja", "ing-frijol", "0.180"},
	{"prod-bandeja", "ing-aceite", "0.030"},
	{"prod-pizza", "ing-harina", "0.300"},
	{"prod-pizza", "ing-queso", "0.250"},
	{"prod-pizza", "ing-tomate", "0.150"},
	{"prod-pizza", "ing-aceite", "0.020"},
	{"prod-burger", "ing-carne", "0.180"},
	{"prod-burger", "ing-pan", "1"},
	{"prod-burger", "ing-cebolla", "0.040"},
	{"prod-burger", "ing-tomate", "0.060"},
	{"prod-burger", "ing-papa", "0.200"},
	{"prod-burger", "ing-aceite", "0.050"},
	{"prod-arroz-pollo", "ing-pollo", "0.300"},
	{"prod-arroz-pollo", "ing-arroz", "0.250"},
	{"prod-arroz-pollo", "ing-cebolla", "0.050"},
	{"prod-arroz-pollo", "ing-aceite", "0.030"},
	{"prod-jugo-mora", "ing-mora", "0.150"},
	{"prod-jugo-mora", "ing-leche", "0.200"},
	{"prod-jugo-mora", "ing-azucar", "0.040"},
	{"prod-tinto", "ing-cafe", "0.012"},
	{"prod-tinto", "ing-panela", "0.015"},
	{"prod-aromatica", "ing-panela", "0.030"},
}

var users = []userRow{
	{"usr-carolina", "Carolina Restrepo", "carolina@comandaplus.co", "admin"},
	{"usr-julian", "Julián Mora", "julian@comandaplus.co", "manager"},
	{"usr-andres", "Andrés Parra", "andres@comandaplus.co", "mesero"},
	{"usr-luisa", "Luisa Quintero", "luisa@comandaplus.co", "cajero"},
}

func main() {
	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "007_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos de demostración del restaurante. Idempotente.\n")
	out.WriteString("-- Generado por cmd/seed_demo\n\n")

	// 1. Ingredientes. El stock llega también al historial (sección 2) para
	// que la auditoría del ledger cierre desde el primer día.
	out.WriteString("-- 1. Ingredientes\n")
	out.WriteString("INSERT INTO ingredients (id, name, name_normalized, unit, current_stock, minimum_stock, maximum_stock, unit_cost, supplier) VALUES\n")
	for i, ing := range ingredients {
		supplier := "NULL"
		if ing.supplier != "" {
			supplier = "'" + escapeSQL(ing.supplier) + "'"
		}
		sep := ","
		if i == len(ingredients)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s', %s, %s, %s, %s, %s)%s\n",
			ing.id, escapeSQL(ing.name), normalize.Name(ing.name), ing.unit,
			ing.stock, ing.min, ing.max, ing.cost, supplier, sep)
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	// 2. Reabastecimiento inicial en el historial (previous 0 -> stock).
	out.WriteString("-- 2. Historial: reabastecimiento inicial de cada ingrediente\n")
	out.WriteString("INSERT INTO stock_history (id, ingredient_id, type, quantity, previous_stock, new_stock, created_by) VALUES\n")
	for i, ing := range ingredients {
		sep := ","
		if i == len(ingredients)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('sh-seed-%02d', '%s', 'manual_restock', %s, 0, %s, 'seed-demo')%s\n",
			i+1, ing.id, ing.stock, ing.stock, sep)
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	// 3. Carta
	out.WriteString("-- 3. Productos de la carta\n")
	out.WriteString("INSERT INTO products (id, name, category, price) VALUES\n")
	for i, p := range products {
		sep := ","
		if i == len(products)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', %s)%s\n",
			p.id, escapeSQL(p.name), escapeSQL(p.category), p.price, sep)
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	out.WriteString("-- 4. Recetas\n")
	out.WriteString("INSERT INTO product_ingredients (product_id, ingredient_id, quantity_required) VALUES\n")
	for i, r := range recipes {
		sep := ","
		if i == len(recipes)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', %s)%s\n", r.productID, r.ingredientID, r.quantity, sep)
	}
	out.WriteString("ON CONFLICT (product_id, ingredient_id) DO NOTHING;\n\n")

	// 5. Personal y preferencias de alertas. Julián silencia las alertas de
	// 22:00 a 07:00; Carolina no tiene fila: para ella aplican los defaults.
	out.WriteString("-- 5. Personal\n")
	out.WriteString("INSERT INTO users (id, name, email, role) VALUES\n")
	for i, u := range users {
		sep := ","
		if i == len(users)-1 {
			sep = ""
		}
		fmt.Fprintf(out, "  ('%s', '%s', '%s', '%s')%s\n",
			u.id, escapeSQL(u.name), u.email, u.role, sep)
	}
	out.WriteString("ON CONFLICT (id) DO NOTHING;\n\n")

	out.WriteString("-- 6. Preferencias de notificación\n")
	out.WriteString("INSERT INTO notification_preferences (user_id, type, enabled, quiet_hours_start, quiet_hours_end, timezone) VALUES\n")
	out.WriteString("  ('usr-julian', 'low_stock', true, '22:00', '07:00', 'America/Bogota')\n")
	out.WriteString("ON CONFLICT (user_id, type) DO NOTHING;\n\n")

	// 7. Pedido de ejemplo: POST /api/stock/orders/ord-demo-1/deduct
	out.WriteString("-- 7. Pedido de ejemplo para los hooks de stock\n")
	out.WriteString("INSERT INTO order_items (order_id, product_id, quantity)\n")
	out.WriteString("SELECT v.order_id, v.product_id, v.quantity FROM (VALUES\n")
	out.WriteString("  ('ord-demo-1', 'prod-pizza', 2),\n")
	out.WriteString("  ('ord-demo-1', 'prod-jugo-mora', 1)\n")
	out.WriteString(") AS v(order_id, product_id, quantity)\n")
	out.WriteString("WHERE NOT EXISTS (SELECT 1 FROM order_items WHERE order_id = 'ord-demo-1');\n")

	fmt.Printf("Generado %s: %d ingredientes, %d productos, %d recetas, %d usuarios\n",
		outPath, len(ingredients), len(products), len(recipes), len(users))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
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
