package main

import (
	"fmt"
	"log"

	"github.com/evyataryagoni/whoami/internal/config"
	"github.com/evyataryagoni/whoami/internal/store"
)

// This tool creates the kv_entries table used by KV_BACKEND=mysql
// Usage: MYSQL_DSN=... go run ./cmd/migrate
func main() {
	fmt.Println("🔄 Migrating MySQL key-value table...")

	appConfig := config.Load()
	if appConfig.MySQLDSN == "" {
		log.Fatal("MYSQL_DSN is not set")
	}

	mysqlStore, err := store.NewMySQLStore(appConfig.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to MySQL: %v", err)
	}
	defer mysqlStore.Close()

	fmt.Println("✅ Connected to MySQL")

	if err := mysqlStore.Migrate(); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	fmt.Println("✅ kv_entries is up to date")
	fmt.Println("\n💡 You can now start the server with KV_BACKEND=mysql")
}
