package main

import (
	"fmt"
	"log"
	"os"

	"sales_forecast/api"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables directly")
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8081"
	}

	r := gin.Default()
	api.InitRoutes(r)

	if err := r.Run(addr); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
