package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/EmpoweredVote/EV-Legislators/internal/congress"
	"github.com/EmpoweredVote/EV-Legislators/internal/db"
	"github.com/EmpoweredVote/EV-Legislators/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
)

func RootHandler(w http.ResponseWriter, r *http.Request) {
	response := "Server is up!"
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintln(w, response)
}

func main() {
	_ = godotenv.Load(".env.local")
	db.Connect(os.Getenv("DATABASE_URL"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "5050"
	}

	congress.Init()
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware)
	r.Get("/", RootHandler)

	r.Mount("/congress", congress.SetupRoutes())

	fmt.Println("Server listening on port :" + port + "...")

	http.ListenAndServe("0.0.0.0:"+port, r)
}
