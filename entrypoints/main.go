package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Laisky/laisky-portfolio-api/cmd"
)

func main() {
	cmd.Execute()
}
