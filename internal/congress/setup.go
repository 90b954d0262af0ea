package congress

import (
	"log"

	"github.com/EmpoweredVote/EV-Legislators/internal/db"
)

func Init() {
	// Ensure the congress schema exists first
	if err := db.EnsureSchema(db.DB, "congress"); err != nil {
		log.Fatal("Failed to create congress schema: ", err)
	}

	if err := db.DB.AutoMigrate(&LegislatorTerm{}); err != nil {
		log.Fatal("Failed to auto-migrate tables", err)
	}
}
