// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	userSeed "schoolku_backend/internals/seeds/users"
)

// RunAllSeeds menjalankan seluruh seeder, urut dependensi.
// Setiap seeder idempotent — aman dijalankan berkali-kali.
func RunAllSeeds(db *gorm.DB) {
	log.Println("🌱 Menjalankan seeds...")

	if err := userSeed.Seed(db); err != nil {
		log.Printf("❌ Seed users gagal: %v", err)
		return
	}

	log.Println("✅ Seeds selesai.")
}
