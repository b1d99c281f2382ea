package main

import (
	"fmt"
	"log"

	"github.com/UmaisNisar/AES-Encryption-App/internal/api/gateway"
	"github.com/UmaisNisar/AES-Encryption-App/internal/config"
	"github.com/UmaisNisar/AES-Encryption-App/internal/services/cipher"
	"github.com/UmaisNisar/AES-Encryption-App/internal/services/visualizer"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	fmt.Println("Configuration loaded:")
	fmt.Println(cfg)

	// Create services
	cipherService := cipher.New()
	visualizerService := visualizer.New()

	// Create gateway server with services
	gatewayServer := gateway.New(
		fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		cfg.CORS.AllowedOrigin,
		cfg.Metrics.Namespace,
		cipherService,
		visualizerService,
	)

	// Start gateway server
	if err := gatewayServer.Start(); err != nil {
		log.Fatalf("Gateway server failed: %v", err)
	}
}
