package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Abdulla-Nurislam/shiny-canteen/internal/account"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/config"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/enum"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/menu"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/router"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/session"
	"github.com/Abdulla-Nurislam/shiny-canteen/internal/ws"
)

func main() {
	cfg := config.Load()

	catalog := menu.NewStore()
	if err := menu.Seed(catalog); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	accounts := account.NewStore(cfg.DefaultBalance)
	// Demo admin so the catalog is manageable out of the box.
	if _, err := accounts.Register("Администратор", "admin@canteen.local", "", "admin", enum.UserRoleAdmin); err != nil {
		log.Fatalf("seed admin account: %v", err)
	}

	sessions := session.NewManager(cfg.TaxRate)

	hub := ws.NewHub()
	go hub.Run()

	r := router.New(cfg, catalog, accounts, sessions, hub)

	log.Printf("Starting server on :%s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatal(err)
	}
}
