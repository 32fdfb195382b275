package main

import (
	"os"

	_ "heritage_gold/docs"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Heritage Gold API
// @version         1.0
// @description     Jewellery catalogue, price estimates, guided selection and lead capture backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
